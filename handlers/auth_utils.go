package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"gerenciador-tarefas/firebase"
	"gerenciador-tarefas/utilities"
)

type contextKey string

// userUIDKey é a chave de contexto onde o middleware guarda o UID autenticado
const userUIDKey contextKey = "userUID"

// AuthMiddleware verifica o ID Token do Firebase no header Authorization e
// injeta o UID do usuário no contexto da requisição
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utilities.LogError(fmt.Errorf("header de autorização ausente"), "Autenticação falhou")
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		verifiedToken, err := firebase.VerifyUserToken(tokenString)
		if err != nil {
			utilities.LogError(err, "Token inválido")
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userUIDKey, verifiedToken.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// uidFromRequest recupera o UID injetado pelo AuthMiddleware
func uidFromRequest(r *http.Request) (string, bool) {
	uid, ok := r.Context().Value(userUIDKey).(string)
	return uid, ok && uid != ""
}
