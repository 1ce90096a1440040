package store

import (
	"time"

	"github.com/google/uuid"

	"gerenciador-tarefas/models"
)

// TaskStore é o contêiner de estado da variante local: guarda a coleção de
// tarefas em memória e aplica comandos de mutação sobre ela. Cada comando é
// tudo-ou-nada contra a coleção; a persistência é um efeito posterior que, se
// falhar, vira um PersistenceWarning sem desfazer a transição.
//
// O relógio é injetado para que CreatedAt seja determinístico em testes.
type TaskStore struct {
	tasks       []models.Task
	clock       func() time.Time
	persistence Persistence
}

// Option configura um TaskStore na construção
type Option func(*TaskStore)

// WithClock substitui a fonte de "agora"
func WithClock(clock func() time.Time) Option {
	return func(s *TaskStore) { s.clock = clock }
}

// WithPersistence liga o colaborador de persistência local
func WithPersistence(p Persistence) Option {
	return func(s *TaskStore) { s.persistence = p }
}

func NewTaskStore(opts ...Option) *TaskStore {
	s := &TaskStore{clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tasks devolve uma cópia da coleção, na ordem de inserção
func (s *TaskStore) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len devolve o tamanho atual da coleção
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Find localiza uma tarefa pelo id
func (s *TaskStore) Find(id string) (models.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], nil
		}
	}
	return models.Task{}, ErrTaskNotFound
}

// Add valida e normaliza o payload e anexa a nova tarefa ao fim da coleção.
// O id e o CreatedAt são atribuídos aqui, nunca pelo chamador; o status inicial
// é sempre pendente.
func (s *TaskStore) Add(p *models.TaskPayload) (models.Task, error) {
	if violations := models.ValidateTask(p); len(violations) > 0 {
		return models.Task{}, &ValidationError{Violations: violations}
	}

	task := models.NormalizeTask(p)
	task.ID = uuid.NewString()
	task.Status = models.StatusPending
	task.CreatedAt = s.clock()

	s.tasks = append(s.tasks, task)
	return task, s.persist()
}

// Update mescla os campos presentes da atualização sobre a tarefa existente e
// revalida o resultado; se a revalidação falhar a tarefa original permanece
// intacta e as violações são devolvidas
func (s *TaskStore) Update(id string, upd *models.TaskUpdate) (models.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Task{}, ErrTaskNotFound
	}

	merged, payload := models.MergeUpdate(s.tasks[idx], upd)
	if violations := models.ValidateTask(payload); len(violations) > 0 {
		return models.Task{}, &ValidationError{Violations: violations}
	}

	s.tasks[idx] = merged
	return merged, s.persist()
}

// Toggle inverte o estado de conclusão da tarefa, sem tocar em nenhum outro campo
func (s *TaskStore) Toggle(id string) (models.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Task{}, ErrTaskNotFound
	}

	if s.tasks[idx].IsCompleted() {
		s.tasks[idx].Status = models.StatusPending
	} else {
		s.tasks[idx].Status = models.StatusCompleted
	}
	return s.tasks[idx], s.persist()
}

// Delete remove a tarefa da coleção. Remover o mesmo id duas vezes falha com
// ErrTaskNotFound na segunda chamada.
func (s *TaskStore) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return s.persist()
}

// ClearCompleted remove todas as tarefas concluídas e devolve quantas saíram.
// Sempre é bem-sucedida, mesmo sem nada a remover.
func (s *TaskStore) ClearCompleted() (int, error) {
	kept := s.tasks[:0]
	removed := 0
	for _, task := range s.tasks {
		if task.IsCompleted() {
			removed++
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept

	if removed == 0 {
		return 0, nil
	}
	return removed, s.persist()
}

// Restore reinsere uma tarefa vinda da persistência exatamente como foi salva,
// sem gerar novo id nem novo CreatedAt
func (s *TaskStore) Restore(task models.Task) {
	s.tasks = append(s.tasks, task)
}

// Load substitui a coleção pelo conteúdo do colaborador de persistência.
// Entradas malformadas já foram descartadas pelo Load do colaborador.
func (s *TaskStore) Load() error {
	if s.persistence == nil {
		return nil
	}

	tasks, err := s.persistence.Load()
	if err != nil {
		s.tasks = nil
		return err
	}

	s.tasks = tasks
	return nil
}

func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) persist() error {
	if s.persistence == nil {
		return nil
	}
	if err := s.persistence.Save(s.Tasks()); err != nil {
		return &PersistenceWarning{Err: err}
	}
	return nil
}
