package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTaskNotFound indica que o id referenciado não existe na coleção
var ErrTaskNotFound = errors.New("tarefa não encontrada")

// ValidationError carrega a lista completa de violações de um payload rejeitado
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payload inválido: %s", strings.Join(e.Violations, "; "))
}

// PersistenceWarning indica que a transição em memória foi aplicada com sucesso,
// mas a escrita durável falhou. A operação não é desfeita; o chamador decide se
// exibe o aviso.
type PersistenceWarning struct {
	Err error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("tarefas atualizadas em memória, mas a persistência falhou: %v", w.Err)
}

func (w *PersistenceWarning) Unwrap() error {
	return w.Err
}
