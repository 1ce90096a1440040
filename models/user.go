package models

// Usuario é o registro espelhado no PostgreSQL para cada conta do Firebase
type Usuario struct {
	Firebase_uid string `json:"firebase_uid"`
	DisplayName  string `json:"display_name"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
}
