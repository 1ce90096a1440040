package firebase

import (
	"context"
	"database/sql"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// VerifyUserToken valida um ID Token do Firebase e devolve o token decodificado
func VerifyUserToken(token string) (*auth.Token, error) {
	client, err := GetAuthClient()
	if err != nil {
		return nil, err
	}

	verifiedToken, err := client.VerifyIDToken(context.Background(), token)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar token: %w", err)
	}

	return verifiedToken, nil
}

// RevokeUserTokens revoga os refresh tokens do usuário, invalidando as sessões
// ativas a partir do próximo refresh
func RevokeUserTokens(uid string) error {
	client, err := GetAuthClient()
	if err != nil {
		return err
	}

	if err := client.RevokeRefreshTokens(context.Background(), uid); err != nil {
		return fmt.Errorf("erro ao revogar tokens: %w", err)
	}
	return nil
}

// GetUserByUID busca o registro do usuário no Firebase
func GetUserByUID(uid string) (*auth.UserRecord, error) {
	client, err := GetAuthClient()
	if err != nil {
		return nil, err
	}

	user, err := client.GetUser(context.Background(), uid)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return user, nil
}

// CheckOrCreateUserInPostgres garante que o usuário autenticado exista na
// tabela espelho do PostgreSQL, criando o registro no primeiro acesso
func CheckOrCreateUserInPostgres(db *sql.DB, token *auth.Token) (string, error) {
	uid := token.UID
	email, _ := token.Claims["email"].(string)
	displayName, _ := token.Claims["name"].(string)

	var dbUID string
	err := db.QueryRow("SELECT firebase_uid FROM users WHERE firebase_uid = $1", uid).Scan(&dbUID)

	switch {
	case err == sql.ErrNoRows:
		// Primeiro acesso: cria o registro espelho
		_, insertErr := db.Exec(
			"INSERT INTO users (firebase_uid, email, display_name) VALUES ($1, $2, $3)",
			uid, email, displayName,
		)
		if insertErr != nil {
			return "", fmt.Errorf("erro ao inserir usuário no DB: %w", insertErr)
		}
		return uid, nil

	case err != nil:
		return "", fmt.Errorf("erro ao buscar usuário no DB: %w", err)

	default:
		return dbUID, nil
	}
}
