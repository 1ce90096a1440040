package store

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gerenciador-tarefas/models"
	"gerenciador-tarefas/utilities"
)

// Valores de filtro que não impõem restrição
const FilterAll = "all"

// Intervalos de data aceitos pelo filtro
const (
	DateRangeToday   = "today"
	DateRangeWeek    = "week"
	DateRangeOverdue = "overdue"
)

// Campos e direções de ordenação
const (
	SortByDueDate   = "dueDate"
	SortByPriority  = "priority"
	SortByCreatedAt = "createdAt"
	SortByTitle     = "title"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Filters é a especificação conjuntiva de filtragem: uma tarefa só passa se
// satisfizer todos os critérios ativos. Campos vazios ou "all" não restringem.
type Filters struct {
	Status     string
	Priority   string
	Category   string
	DateRange  string
	SearchTerm string
}

// Sort é o par (campo, direção) que determina a ordem de exibição
type Sort struct {
	By    string
	Order string
}

var priorityRank = map[string]int{
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

// Comparador de títulos sensível ao locale, equivalente ao localeCompare
// da interface original
var titleCollator = collate.New(language.English, collate.Loose)

func active(value string) bool {
	return value != "" && value != FilterAll
}

// matches avalia todos os critérios ativos contra uma tarefa
func (f Filters) matches(task *models.Task, today time.Time) bool {
	if active(f.Status) && task.Status != f.Status {
		return false
	}

	if active(f.Priority) && task.Priority != f.Priority {
		return false
	}

	if active(f.Category) && task.Category != f.Category {
		return false
	}

	if active(f.DateRange) {
		switch f.DateRange {
		case DateRangeToday:
			if !utilities.IsToday(task.DueDate, today) {
				return false
			}
		case DateRangeWeek:
			if !utilities.IsThisWeek(task.DueDate, today) {
				return false
			}
		case DateRangeOverdue:
			if !utilities.IsOverdue(task.DueDate, today) || task.IsCompleted() {
				return false
			}
		}
	}

	if term := strings.TrimSpace(f.SearchTerm); term != "" {
		needle := strings.ToLower(term)
		title := strings.ToLower(task.Title)
		description := strings.ToLower(task.Description)
		if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
			return false
		}
	}

	return true
}

// ApplyFilters devolve a subsequência de tarefas que satisfaz a especificação,
// preservando a ordem de entrada. A coleção recebida nunca é modificada.
func ApplyFilters(tasks []models.Task, filters Filters, today time.Time) []models.Task {
	filtered := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if filters.matches(&tasks[i], today) {
			filtered = append(filtered, tasks[i])
		}
	}
	return filtered
}

// SortTasks devolve uma cópia ordenada da lista. A ordenação é estável: tarefas
// com chaves iguais mantêm a ordem relativa de entrada.
//
// Duas particularidades herdadas do comportamento original são mantidas de
// propósito: na ordenação por prioridade o rótulo "asc" devolve a prioridade
// mais alta primeiro, e na ordenação por vencimento as tarefas sem data ficam
// sempre depois das datadas, em ambas as direções.
func SortTasks(tasks []models.Task, spec Sort) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)

	desc := spec.Order == OrderDesc

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]

		var cmp int
		switch spec.By {
		case SortByTitle:
			cmp = titleCollator.CompareString(a.Title, b.Title)
		case SortByPriority:
			cmp = priorityRank[b.Priority] - priorityRank[a.Priority]
		case SortByCreatedAt:
			cmp = compareTimes(a.CreatedAt, b.CreatedAt)
		default: // dueDate
			// Tarefas sem vencimento vão para o fim, independente da direção
			if a.DueDate == nil || b.DueDate == nil {
				return a.DueDate != nil && b.DueDate == nil
			}
			cmp = compareTimes(*a.DueDate, *b.DueDate)
		}

		if desc {
			cmp = -cmp
		}
		return cmp < 0
	})

	return sorted
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
