package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gerenciador-tarefas/firebase"
	"gerenciador-tarefas/models"
	"gerenciador-tarefas/store"
	"gerenciador-tarefas/utilities"
)

// CreateTaskHandler cria uma nova tarefa para o usuário autenticado
func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de nova tarefa")

	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	var payload models.TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON da tarefa")
		http.Error(w, "Corpo da requisição inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if violations := models.ValidateTaskAPI(&payload); len(violations) > 0 {
		utilities.LogDebug("Validação falhou na criação de tarefa: %v", violations)
		writeValidationErrors(w, violations)
		return
	}

	task := models.NormalizeTask(&payload)
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now()
	task.Owner = uid

	client, err := firebase.GetFirestoreClient()
	if err != nil {
		utilities.LogError(err, "Erro ao obter cliente do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer client.Close()

	if err := firebase.SaveTaskDocument(r.Context(), client, task); err != nil {
		utilities.LogError(err, "Erro ao gravar tarefa no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tarefa criada com sucesso: %s (ID: %s)", task.Title, task.ID)
	writeJSON(w, http.StatusCreated, task)
}

// ListTasksHandler lista as tarefas do usuário autenticado, com filtragem e
// ordenação opcionais via query string
func ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de tarefas")

	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	client, err := firebase.GetFirestoreClient()
	if err != nil {
		utilities.LogError(err, "Erro ao obter cliente do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer client.Close()

	tasks, err := firebase.ListTaskDocuments(r.Context(), client, uid)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefas no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	queryParams := r.URL.Query()
	filters := store.Filters{
		Status:     queryParams.Get("status"),
		Priority:   queryParams.Get("priority"),
		Category:   queryParams.Get("category"),
		DateRange:  queryParams.Get("dateRange"),
		SearchTerm: queryParams.Get("search"),
	}

	utilities.LogDebug("Filtrando tarefas - status: %s, prioridade: %s, busca: %s",
		filters.Status, filters.Priority, filters.SearchTerm)

	now := time.Now()
	filtered := store.ApplyFilters(tasks, filters, now)

	sortSpec := store.Sort{
		By:    queryParams.Get("sortBy"),
		Order: queryParams.Get("sortOrder"),
	}
	if sortSpec.By == "" {
		sortSpec.By = store.SortByDueDate
	}
	if sortSpec.Order == "" {
		sortSpec.Order = store.OrderAsc
	}
	sorted := store.SortTasks(filtered, sortSpec)

	utilities.LogInfo("Tarefas listadas com sucesso - total: %d", len(sorted))
	if sorted == nil {
		sorted = []models.Task{}
	}
	writeJSON(w, http.StatusOK, sorted)
}

// TaskStatsHandler devolve o resumo da coleção completa do usuário
func TaskStatsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	client, err := firebase.GetFirestoreClient()
	if err != nil {
		utilities.LogError(err, "Erro ao obter cliente do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer client.Close()

	tasks, err := firebase.ListTaskDocuments(r.Context(), client, uid)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefas para estatísticas")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, store.ComputeStats(tasks, time.Now()))
}

// GetTaskHandler busca uma tarefa pelo id, verificando a posse
func GetTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	taskID := mux.Vars(r)["task_id"]

	client, err := firebase.GetFirestoreClient()
	if err != nil {
		utilities.LogError(err, "Erro ao obter cliente do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer client.Close()

	task, found, err := firebase.GetTaskDocument(r.Context(), client, taskID)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefa no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	if task.Owner != uid {
		utilities.LogDebug("Usuário %s tentou acessar tarefa de outro dono: %s", uid, taskID)
		http.Error(w, "Sem permissão para acessar esta tarefa", http.StatusForbidden)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// UpdateTaskHandler aplica uma atualização parcial sobre uma tarefa existente.
// O resultado da mescla é revalidado antes de substituir o documento; em caso
// de violação a tarefa original permanece intacta. Escritas concorrentes seguem
// last-write-wins, sem token de concorrência.
func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando atualização de tarefa")

	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	taskID := mux.Vars(r)["task_id"]

	var updates models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON de atualização")
		http.Error(w, "Corpo da requisição inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	client, err := firebase.GetFirestoreClient()
	if err != nil {
		utilities.LogError(err, "Erro ao obter cliente do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer client.Close()

	task, found, err := firebase.GetTaskDocument(r.Context(), client, taskID)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefa para atualização")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	if task.Owner != uid {
		http.Error(w, "Sem permissão para editar esta tarefa", http.StatusForbidden)
		return
	}

	merged, payload := models.MergeUpdate(task, &updates)
	if violations := models.ValidateTaskAPI(payload); len(violations) > 0 {
		utilities.LogDebug("Validação falhou na atualização da tarefa %s: %v", taskID, violations)
		writeValidationErrors(w, violations)
		return
	}

	if err := firebase.SaveTaskDocument(r.Context(), client, merged); err != nil {
		utilities.LogError(err, "Erro ao atualizar tarefa no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tarefa atualizada com sucesso: %s", taskID)
	writeJSON(w, http.StatusOK, merged)
}

// ToggleTaskHandler inverte o estado de conclusão de uma tarefa, sem alterar
// nenhum outro campo
func ToggleTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	taskID := mux.Vars(r)["task_id"]

	client, err := firebase.GetFirestoreClient()
	if err != nil {
		utilities.LogError(err, "Erro ao obter cliente do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer client.Close()

	task, found, err := firebase.GetTaskDocument(r.Context(), client, taskID)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefa para alternar status")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	if task.Owner != uid {
		http.Error(w, "Sem permissão para editar esta tarefa", http.StatusForbidden)
		return
	}

	if task.IsCompleted() {
		task.Status = models.StatusPending
	} else {
		task.Status = models.StatusCompleted
	}

	if err := firebase.SaveTaskDocument(r.Context(), client, task); err != nil {
		utilities.LogError(err, "Erro ao gravar status da tarefa no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Status da tarefa alternado: %s -> %s", taskID, task.Status)
	writeJSON(w, http.StatusOK, task)
}

// DeleteTaskHandler remove uma tarefa. Deletar o mesmo id novamente responde
// 404, não sucesso silencioso.
func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando exclusão de tarefa")

	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	taskID := mux.Vars(r)["task_id"]

	client, err := firebase.GetFirestoreClient()
	if err != nil {
		utilities.LogError(err, "Erro ao obter cliente do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer client.Close()

	task, found, err := firebase.GetTaskDocument(r.Context(), client, taskID)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefa para exclusão")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	if task.Owner != uid {
		http.Error(w, "Sem permissão para deletar esta tarefa", http.StatusForbidden)
		return
	}

	if err := firebase.DeleteTaskDocument(r.Context(), client, taskID); err != nil {
		utilities.LogError(err, "Erro ao excluir tarefa do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tarefa excluída com sucesso: %s", taskID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Tarefa removida"})
}

// ClearCompletedTasksHandler remove todas as tarefas concluídas do usuário.
// Sempre responde sucesso, mesmo quando não há nada a remover.
func ClearCompletedTasksHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	client, err := firebase.GetFirestoreClient()
	if err != nil {
		utilities.LogError(err, "Erro ao obter cliente do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer client.Close()

	removed, err := firebase.DeleteCompletedTaskDocuments(r.Context(), client, uid)
	if err != nil {
		utilities.LogError(err, "Erro ao limpar tarefas concluídas")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tarefas concluídas removidas para %s - total: %d", uid, removed)
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}
