package models

import (
	"fmt"
	"strings"
	"time"
)

// Valores possíveis para o status de uma tarefa
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Valores possíveis para a prioridade
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Conjuntos de valores válidos, usados pela validação
var (
	ValidStatuses   = map[string]bool{StatusPending: true, StatusCompleted: true}
	ValidPriorities = map[string]bool{PriorityHigh: true, PriorityMedium: true, PriorityLow: true}
	ValidCategories = map[string]bool{"work": true, "personal": true, "health": true, "shopping": true, "other": true}
)

// Limites de tamanho dos campos de texto
const (
	TitleMaxLen       = 100
	TitleMinLenAPI    = 3
	DescriptionMaxLen = 500
)

// DueDateLayout é o formato de data aceito para o vencimento (dia, sem hora)
const DueDateLayout = "2006-01-02"

type Task struct {
	ID          string     `json:"id" firestore:"id"`
	Title       string     `json:"title" firestore:"title"`
	Description string     `json:"description" firestore:"description"`
	Status      string     `json:"status" firestore:"status"`
	Priority    string     `json:"priority" firestore:"priority"`
	Category    string     `json:"category" firestore:"category"`
	DueDate     *time.Time `json:"dueDate,omitempty" firestore:"due_date"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"created_at"`
	Owner       string     `json:"-" firestore:"owner"`
}

// IsCompleted é o predicado derivado de conclusão; o status em si nunca é
// comparado diretamente fora daqui
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// TaskPayload é o corpo bruto recebido para criação de tarefa, antes da validação
type TaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"dueDate"`
}

// TaskUpdate é o corpo de atualização parcial; ponteiros distinguem
// "campo ausente" de "campo vazio"
type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	DueDate     *string `json:"dueDate"`
}

// ValidateTask aplica as regras da variante local: título obrigatório até 100
// caracteres, descrição até 500, prioridade/categoria/status dentro dos conjuntos
// válidos e data de vencimento parseável. Todas as violações são coletadas, sem
// curto-circuito, para que o chamador possa exibi-las de uma vez.
func ValidateTask(p *TaskPayload) []string {
	return validateTask(p, 0)
}

// ValidateTaskAPI aplica as regras da API, que além das regras locais exige
// título com pelo menos 3 caracteres
func ValidateTaskAPI(p *TaskPayload) []string {
	return validateTask(p, TitleMinLenAPI)
}

func validateTask(p *TaskPayload, titleMinLen int) []string {
	var violations []string

	if p == nil {
		return []string{"Title is required and must be a non-empty string"}
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		violations = append(violations, "Title is required and must be a non-empty string")
	}
	if title != "" && titleMinLen > 0 && len([]rune(title)) < titleMinLen {
		violations = append(violations, fmt.Sprintf("Title must be between %d and %d characters", titleMinLen, TitleMaxLen))
	}
	if len([]rune(title)) > TitleMaxLen {
		violations = append(violations, "Title must be less than 100 characters")
	}

	if len([]rune(strings.TrimSpace(p.Description))) > DescriptionMaxLen {
		violations = append(violations, "Description must be less than 500 characters")
	}

	if p.Status != "" && !ValidStatuses[p.Status] {
		violations = append(violations, "Status must be pending or completed")
	}

	if p.Priority != "" && !ValidPriorities[p.Priority] {
		violations = append(violations, "Priority must be one of: high, medium, low")
	}

	if p.Category != "" && !ValidCategories[p.Category] {
		violations = append(violations, "Category must be one of: work, personal, health, shopping, other")
	}

	if p.DueDate != "" {
		if _, err := time.ParseInLocation(DueDateLayout, p.DueDate, time.Local); err != nil {
			violations = append(violations, "Due date must be a valid date")
		}
	}

	return violations
}

// NormalizeTask converte um payload já validado em uma tarefa com os campos
// aparados e os opcionais preenchidos com seus padrões. ID, CreatedAt e Owner
// são atribuídos pelo chamador (store ou handler), nunca pelo payload.
func NormalizeTask(p *TaskPayload) Task {
	task := Task{
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Status:      p.Status,
		Priority:    p.Priority,
		Category:    p.Category,
	}

	if task.Status == "" {
		task.Status = StatusPending
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}
	if task.Category == "" {
		task.Category = "personal"
	}

	if p.DueDate != "" {
		if due, err := time.ParseInLocation(DueDateLayout, p.DueDate, time.Local); err == nil {
			task.DueDate = &due
		}
	}

	return task
}

// MergeUpdate aplica uma atualização parcial sobre uma cópia da tarefa e devolve
// também o payload equivalente ao resultado, para ser revalidado antes de
// substituir a original
func MergeUpdate(task Task, upd *TaskUpdate) (Task, *TaskPayload) {
	merged := task

	if upd.Title != nil {
		merged.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		merged.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Status != nil {
		merged.Status = *upd.Status
	}
	if upd.Priority != nil {
		merged.Priority = *upd.Priority
	}
	if upd.Category != nil {
		merged.Category = *upd.Category
	}

	payload := &TaskPayload{
		Title:       merged.Title,
		Description: merged.Description,
		Status:      merged.Status,
		Priority:    merged.Priority,
		Category:    merged.Category,
	}

	if upd.DueDate != nil {
		payload.DueDate = *upd.DueDate
		if *upd.DueDate == "" {
			merged.DueDate = nil
		} else if due, err := time.ParseInLocation(DueDateLayout, *upd.DueDate, time.Local); err == nil {
			merged.DueDate = &due
		}
	} else if merged.DueDate != nil {
		payload.DueDate = merged.DueDate.Format(DueDateLayout)
	}

	return merged, payload
}
