package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"

	"gerenciador-tarefas/database"
	"gerenciador-tarefas/firebase"
	"gerenciador-tarefas/models"
	"gerenciador-tarefas/utilities"
)

type SocialLoginInput struct {
	IDToken string `json:"idToken"`
}

// SocialLoginResponse define a estrutura da resposta de sucesso
type SocialLoginResponse struct {
	Message     string `json:"message"`
	FirebaseUID string `json:"firebaseUid"`
}

// RegisterHandler cria a conta no Firebase e o registro espelho no PostgreSQL
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando registro de novo usuário")

	var user models.Usuario
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do corpo da requisição")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if user.Email == "" {
		utilities.LogError(fmt.Errorf("email não fornecido"), "Validação falhou")
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}
	if user.Password == "" {
		utilities.LogError(fmt.Errorf("senha não fornecida"), "Validação falhou")
		http.Error(w, "Password is required", http.StatusBadRequest)
		return
	}
	if user.DisplayName == "" {
		utilities.LogError(fmt.Errorf("nome de exibição não fornecido"), "Validação falhou")
		http.Error(w, "Display name is required", http.StatusBadRequest)
		return
	}

	authClient, err := firebase.GetAuthClient()
	if err != nil {
		utilities.LogError(err, "Erro ao obter cliente de autenticação")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	_, err = authClient.GetUserByEmail(ctx, user.Email)
	if err == nil {
		utilities.LogInfo("Tentativa de registro com email já existente: %s", user.Email)
		http.Error(w, "User already exists", http.StatusConflict)
		return
	}
	if !auth.IsUserNotFound(err) {
		utilities.LogError(err, "Erro ao consultar usuário no Firebase")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogDebug("Criando novo usuário no Firebase: %s", user.Email)
	params := (&auth.UserToCreate{}).
		Email(user.Email).
		Password(user.Password).
		DisplayName(user.DisplayName).
		Disabled(false)

	firebaseUser, err := authClient.CreateUser(ctx, params)
	if err != nil {
		utilities.LogError(err, "Erro ao criar usuário no Firebase")
		http.Error(w, "Failed to create user in Firebase", http.StatusInternalServerError)
		return
	}

	db, err := database.ConnectPostgres()
	if err != nil {
		utilities.LogError(err, "Erro ao conectar ao banco de dados")
		http.Error(w, "Failed to connect to database", http.StatusInternalServerError)
		return
	}
	defer db.Close()

	_, err = db.Exec(
		"INSERT INTO users (firebase_uid, email, display_name) VALUES ($1, $2, $3)",
		firebaseUser.UID, user.Email, user.DisplayName,
	)
	if err != nil {
		utilities.LogError(err, "Erro ao salvar usuário no banco de dados")
		http.Error(w, "Failed to save user in database", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Usuário registrado com sucesso: %s (UID: %s)", user.Email, firebaseUser.UID)
	writeJSON(w, http.StatusCreated, map[string]string{
		"message":     "Usuário criado com sucesso",
		"firebaseUid": firebaseUser.UID,
	})
}

// FinalizeFirebaseLoginHandler processa um ID Token do Firebase para verificar
// o usuário e sincronizá-lo com o banco de dados local
func FinalizeFirebaseLoginHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogInfo("Recebida requisição para finalizar login com ID Token do Firebase.")

	var input SocialLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar corpo da requisição para finalizar login Firebase")
		http.Error(w, "Corpo da requisição inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(input.IDToken) == "" {
		utilities.LogError(nil, "ID Token não fornecido no corpo da requisição")
		http.Error(w, "ID Token é obrigatório", http.StatusBadRequest)
		return
	}

	verifiedToken, err := firebase.VerifyUserToken(input.IDToken)
	if err != nil {
		utilities.LogError(err, "Falha ao verificar ID Token do Firebase")
		http.Error(w, "Token inválido ou falha na verificação", http.StatusUnauthorized)
		return
	}
	utilities.LogInfo("ID Token verificado com sucesso para Firebase UID: %s", verifiedToken.UID)

	dbConn, err := database.ConnectPostgres()
	if err != nil {
		utilities.LogError(err, "Erro ao conectar ao banco de dados para finalizar login Firebase")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer dbConn.Close()

	localUserUID, err := firebase.CheckOrCreateUserInPostgres(dbConn, verifiedToken)
	if err != nil {
		utilities.LogError(err, "Erro ao sincronizar usuário com banco de dados local")
		http.Error(w, "Erro interno do servidor ao processar usuário", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, SocialLoginResponse{
		Message:     "Login finalizado e usuário sincronizado com sucesso.",
		FirebaseUID: localUserUID,
	})
}

// LogoutHandler revoga os refresh tokens do usuário autenticado
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := firebase.RevokeUserTokens(uid); err != nil {
		utilities.LogError(err, "Erro ao revogar tokens")
		http.Error(w, "Erro ao fazer logout", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tokens revogados para UID: %s", uid)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Logout efetuado com sucesso",
	})
}

// UserHandler retorna informações do usuário atual
func UserHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(r)
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	db, err := database.ConnectPostgres()
	if err != nil {
		utilities.LogError(err, "Erro ao conectar ao banco de dados")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer db.Close()

	var user models.Usuario
	err = db.QueryRow("SELECT firebase_uid, email, display_name FROM users WHERE firebase_uid = $1", uid).
		Scan(&user.Firebase_uid, &user.Email, &user.DisplayName)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar usuário")
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
