package main

import (
	"log"

	"github.com/joho/godotenv"

	"gerenciador-tarefas/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Erro ao carregar o arquivo .env")
	}

	// Valida a conexão com o espelho de usuários antes de aceitar requisições
	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	LoadRoutes()
}
