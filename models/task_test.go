package models

import (
	"strings"
	"testing"
	"time"
)

func hasViolation(violations []string, fragment string) bool {
	for _, v := range violations {
		if strings.Contains(v, fragment) {
			return true
		}
	}
	return false
}

func TestValidateTaskAcceptsMinimalPayload(t *testing.T) {
	if violations := ValidateTask(&TaskPayload{Title: "Lavar o carro"}); len(violations) != 0 {
		t.Errorf("payload mínimo rejeitado: %v", violations)
	}
}

func TestValidateTaskTitleRules(t *testing.T) {
	cases := []struct {
		name    string
		payload *TaskPayload
	}{
		{"payload nulo", nil},
		{"título vazio", &TaskPayload{Title: ""}},
		{"título só com espaços", &TaskPayload{Title: "   "}},
		{"título longo demais", &TaskPayload{Title: strings.Repeat("A", 150)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			violations := ValidateTask(tc.payload)
			if len(violations) == 0 {
				t.Fatal("esperava violação de título")
			}
			if !hasViolation(violations, "Title") {
				t.Errorf("violações não mencionam o título: %v", violations)
			}
		})
	}
}

func TestValidateTaskCollectsAllViolations(t *testing.T) {
	violations := ValidateTask(&TaskPayload{
		Title:    "   ",
		Priority: "urgent",
		Category: "school",
		DueDate:  "not-a-date",
	})

	if len(violations) != 4 {
		t.Fatalf("esperava 4 violações independentes, obtive %d: %v", len(violations), violations)
	}
	for _, fragment := range []string{"Title", "Priority", "Category", "Due date"} {
		if !hasViolation(violations, fragment) {
			t.Errorf("faltou violação de %q em %v", fragment, violations)
		}
	}
}

func TestValidateTaskInvalidPriorityWithValidTitle(t *testing.T) {
	// As regras são independentes: o título válido não é reportado
	violations := ValidateTask(&TaskPayload{Title: "ok", Priority: "urgent"})
	if len(violations) != 1 {
		t.Fatalf("esperava só a violação de prioridade, obtive %v", violations)
	}
	if !hasViolation(violations, "Priority") {
		t.Errorf("violação inesperada: %v", violations)
	}
}

func TestValidateTaskDescriptionLimit(t *testing.T) {
	long := strings.Repeat("x", DescriptionMaxLen+1)
	violations := ValidateTask(&TaskPayload{Title: "ok", Description: long})
	if !hasViolation(violations, "Description") {
		t.Errorf("descrição longa aceita: %v", violations)
	}

	exact := strings.Repeat("x", DescriptionMaxLen)
	if violations := ValidateTask(&TaskPayload{Title: "ok", Description: exact}); len(violations) != 0 {
		t.Errorf("descrição no limite rejeitada: %v", violations)
	}
}

func TestValidateTaskStatusEnum(t *testing.T) {
	if violations := ValidateTask(&TaskPayload{Title: "ok", Status: "in_progress"}); !hasViolation(violations, "Status") {
		t.Errorf("status fora do enum aceito: %v", violations)
	}
	if violations := ValidateTask(&TaskPayload{Title: "ok", Status: StatusCompleted}); len(violations) != 0 {
		t.Errorf("status válido rejeitado: %v", violations)
	}
}

func TestValidateTaskAPIRequiresMinTitleLength(t *testing.T) {
	if violations := ValidateTaskAPI(&TaskPayload{Title: "ab"}); !hasViolation(violations, "between") {
		t.Errorf("título curto aceito pela API: %v", violations)
	}
	if violations := ValidateTaskAPI(&TaskPayload{Title: "abc"}); len(violations) != 0 {
		t.Errorf("título de 3 caracteres rejeitado: %v", violations)
	}
	// A regra de mínimo não existe na variante local
	if violations := ValidateTask(&TaskPayload{Title: "ab"}); len(violations) != 0 {
		t.Errorf("variante local rejeitou título curto: %v", violations)
	}
}

func TestNormalizeTaskDefaults(t *testing.T) {
	task := NormalizeTask(&TaskPayload{Title: "  aparar  ", Description: " também "})

	if task.Title != "aparar" || task.Description != "também" {
		t.Errorf("campos não aparados: %q / %q", task.Title, task.Description)
	}
	if task.Status != StatusPending {
		t.Errorf("status padrão = %q", task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("prioridade padrão = %q", task.Priority)
	}
	if task.Category != "personal" {
		t.Errorf("categoria padrão = %q", task.Category)
	}
	if task.DueDate != nil {
		t.Errorf("DueDate deveria ser nulo: %v", task.DueDate)
	}
}

func TestMergeUpdateOnlyTouchesProvidedFields(t *testing.T) {
	due := time.Date(2025, 9, 15, 0, 0, 0, 0, time.Local)
	original := Task{
		ID:          "abc",
		Title:       "Original",
		Description: "descrição",
		Status:      StatusPending,
		Priority:    PriorityHigh,
		Category:    "work",
		DueDate:     &due,
		CreatedAt:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local),
		Owner:       "uid-1",
	}

	newStatus := StatusCompleted
	merged, payload := MergeUpdate(original, &TaskUpdate{Status: &newStatus})

	if merged.Status != StatusCompleted {
		t.Errorf("status não aplicado: %q", merged.Status)
	}
	if merged.Title != original.Title || merged.Priority != original.Priority ||
		merged.Category != original.Category || merged.Owner != original.Owner {
		t.Error("campos não informados foram alterados")
	}
	if merged.DueDate == nil || !merged.DueDate.Equal(due) {
		t.Errorf("DueDate alterado: %v", merged.DueDate)
	}
	if payload.DueDate != "2025-09-15" {
		t.Errorf("payload de revalidação sem a data original: %q", payload.DueDate)
	}
}

func TestMergeUpdateTrimsText(t *testing.T) {
	title := "  Novo título  "
	merged, _ := MergeUpdate(Task{Title: "velho"}, &TaskUpdate{Title: &title})
	if merged.Title != "Novo título" {
		t.Errorf("título não aparado na mescla: %q", merged.Title)
	}
}
