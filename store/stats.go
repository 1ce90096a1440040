package store

import (
	"time"

	"gerenciador-tarefas/models"
	"gerenciador-tarefas/utilities"
)

// Stats é o resumo da coleção completa, sem filtros. Pending é sempre
// Total - Completed; Overdue e DueToday contam apenas tarefas não concluídas.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
	DueToday  int `json:"dueToday"`
}

// ComputeStats recalcula o resumo a cada chamada; não há cache
func ComputeStats(tasks []models.Task, today time.Time) Stats {
	stats := Stats{Total: len(tasks)}

	for i := range tasks {
		task := &tasks[i]
		if task.IsCompleted() {
			stats.Completed++
			continue
		}
		if utilities.IsOverdue(task.DueDate, today) {
			stats.Overdue++
		}
		if utilities.IsToday(task.DueDate, today) {
			stats.DueToday++
		}
	}

	stats.Pending = stats.Total - stats.Completed
	return stats
}
