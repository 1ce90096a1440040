package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gerenciador-tarefas/models"
)

// Persistence é o colaborador de persistência local da coleção de tarefas.
// Save recebe a lista completa; Load pode devolver dados incompletos (entradas
// malformadas são descartadas, nunca fatais).
type Persistence interface {
	Save(tasks []models.Task) error
	Load() ([]models.Task, error)
}

// FilePersistence grava a coleção como JSON em um arquivo local
type FilePersistence struct {
	Path string
}

func NewFilePersistence(path string) *FilePersistence {
	return &FilePersistence{Path: path}
}

func (f *FilePersistence) Save(tasks []models.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar tarefas: %w", err)
	}

	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar arquivo de tarefas: %w", err)
	}
	return nil
}

// Load lê o arquivo e descarta entradas sem título válido. Arquivo ausente é
// uma coleção vazia; arquivo corrompido devolve erro junto com a coleção vazia,
// para que o chamador recomece com uma lista limpa e avise o usuário.
func (f *FilePersistence) Load() ([]models.Task, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de tarefas: %w", err)
	}

	var raw []models.Task
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("arquivo de tarefas corrompido: %w", err)
	}

	tasks := make([]models.Task, 0, len(raw))
	for _, task := range raw {
		if strings.TrimSpace(task.Title) == "" {
			continue
		}
		if task.Status == "" {
			task.Status = models.StatusPending
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
