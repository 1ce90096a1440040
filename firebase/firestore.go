package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gerenciador-tarefas/models"
	"gerenciador-tarefas/utilities"
)

// TasksCollection é a coleção do Firestore onde cada tarefa vive como um
// documento cujo ID é o próprio id da tarefa
const TasksCollection = "tasks"

// SaveTaskDocument grava (ou sobrescreve) o documento de uma tarefa.
// Escritas concorrentes sobre o mesmo documento seguem last-write-wins.
func SaveTaskDocument(ctx context.Context, client *firestore.Client, task models.Task) error {
	_, err := client.Collection(TasksCollection).Doc(task.ID).Set(ctx, task)
	if err != nil {
		return fmt.Errorf("erro ao gravar documento da tarefa %s: %w", task.ID, err)
	}
	return nil
}

// GetTaskDocument busca o documento de uma tarefa pelo id. Documento
// inexistente é sinalizado com ok=false, sem erro, para que o handler
// distinga 404 de falha de infraestrutura.
func GetTaskDocument(ctx context.Context, client *firestore.Client, taskID string) (models.Task, bool, error) {
	snap, err := client.Collection(TasksCollection).Doc(taskID).Get(ctx)
	if snap != nil && !snap.Exists() {
		return models.Task{}, false, nil
	}
	if err != nil {
		return models.Task{}, false, fmt.Errorf("erro ao buscar documento da tarefa %s: %w", taskID, err)
	}

	var task models.Task
	if err := snap.DataTo(&task); err != nil {
		return models.Task{}, false, fmt.Errorf("documento da tarefa %s malformado: %w", taskID, err)
	}
	task.ID = snap.Ref.ID
	return task, true, nil
}

// ListTaskDocuments devolve todas as tarefas de um dono. Documentos que não
// decodificam para o modelo são descartados com log, nunca derrubam a listagem.
func ListTaskDocuments(ctx context.Context, client *firestore.Client, owner string) ([]models.Task, error) {
	iter := client.Collection(TasksCollection).Where("owner", "==", owner).Documents(ctx)
	defer iter.Stop()

	var tasks []models.Task
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao iterar tarefas do dono %s: %w", owner, err)
		}

		var task models.Task
		if err := snap.DataTo(&task); err != nil {
			utilities.LogWarning("Descartando documento malformado %s: %v", snap.Ref.ID, err)
			continue
		}
		task.ID = snap.Ref.ID
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// DeleteTaskDocument remove o documento de uma tarefa
func DeleteTaskDocument(ctx context.Context, client *firestore.Client, taskID string) error {
	if _, err := client.Collection(TasksCollection).Doc(taskID).Delete(ctx); err != nil {
		return fmt.Errorf("erro ao deletar documento da tarefa %s: %w", taskID, err)
	}
	return nil
}

// DeleteCompletedTaskDocuments remove em lote todas as tarefas concluídas de um
// dono e devolve quantos documentos saíram. O Firestore recomenda batches de até
// 500 operações, então a deleção é feita em rodadas.
func DeleteCompletedTaskDocuments(ctx context.Context, client *firestore.Client, owner string) (int, error) {
	query := client.Collection(TasksCollection).
		Where("owner", "==", owner).
		Where("status", "==", models.StatusCompleted)

	batchSize := 500
	totalDeleted := 0

	for {
		iter := query.Limit(batchSize).Documents(ctx)
		numDeleted := 0

		batch := client.Batch()
		for {
			snap, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				return totalDeleted, fmt.Errorf("erro ao iterar tarefas concluídas do dono %s: %w", owner, err)
			}
			batch.Delete(snap.Ref)
			numDeleted++
		}
		iter.Stop()

		if numDeleted == 0 {
			break
		}

		if _, err := batch.Commit(ctx); err != nil {
			return totalDeleted, fmt.Errorf("erro ao deletar batch de tarefas concluídas do dono %s: %w", owner, err)
		}
		totalDeleted += numDeleted
	}

	return totalDeleted, nil
}
