package store

import (
	"os"
	"path/filepath"
	"testing"

	"gerenciador-tarefas/models"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tarefas.json")
}

func TestFilePersistenceRoundTrip(t *testing.T) {
	path := tempStorePath(t)

	s := NewTaskStore(WithPersistence(NewFilePersistence(path)))
	added := mustAdd(t, s, &models.TaskPayload{Title: "Persistida", DueDate: "2025-09-10"})
	s.Toggle(added.ID)

	restored := NewTaskStore(WithPersistence(NewFilePersistence(path)))
	if err := restored.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if restored.Len() != 1 {
		t.Fatalf("restauradas = %d, esperava 1", restored.Len())
	}

	got, err := restored.Find(added.ID)
	if err != nil {
		t.Fatalf("Find após restauração: %v", err)
	}
	if got.Title != "Persistida" || !got.IsCompleted() {
		t.Errorf("tarefa restaurada divergente: %+v", got)
	}
	if got.DueDate == nil || got.DueDate.Format(models.DueDateLayout) != "2025-09-10" {
		t.Errorf("DueDate restaurado: %v", got.DueDate)
	}
}

func TestFilePersistenceMissingFileIsEmptyCollection(t *testing.T) {
	s := NewTaskStore(WithPersistence(NewFilePersistence(tempStorePath(t))))
	if err := s.Load(); err != nil {
		t.Fatalf("arquivo ausente não deveria ser erro: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("coleção deveria começar vazia, tem %d", s.Len())
	}
}

func TestFilePersistenceDropsMalformedEntries(t *testing.T) {
	path := tempStorePath(t)
	content := `[
		{"id": "1", "title": "Válida", "status": "pending"},
		{"id": "2", "title": "   ", "status": "pending"},
		{"id": "3", "status": "completed"},
		{"id": "4", "title": "Sem status"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewTaskStore(WithPersistence(NewFilePersistence(path)))
	if err := s.Load(); err != nil {
		t.Fatalf("entradas malformadas não deveriam ser fatais: %v", err)
	}

	if s.Len() != 2 {
		t.Fatalf("restantes = %d, esperava 2 (sem título são descartadas)", s.Len())
	}

	// Status ausente volta ao padrão pendente
	got, err := s.Find("4")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.Status != models.StatusPending {
		t.Errorf("status normalizado = %q", got.Status)
	}
}

func TestFilePersistenceCorruptFileYieldsEmptyCollectionWithError(t *testing.T) {
	path := tempStorePath(t)
	if err := os.WriteFile(path, []byte("isto não é json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewTaskStore(WithPersistence(NewFilePersistence(path)))
	err := s.Load()
	if err == nil {
		t.Fatal("arquivo corrompido deveria devolver erro para o chamador avisar o usuário")
	}
	if s.Len() != 0 {
		t.Errorf("coleção deveria recomeçar vazia, tem %d", s.Len())
	}

	// A coleção continua utilizável depois do aviso
	if _, addErr := s.Add(&models.TaskPayload{Title: "Recomeço"}); addErr != nil {
		t.Errorf("Add após corrupção: %v", addErr)
	}
}
