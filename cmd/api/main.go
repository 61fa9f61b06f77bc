package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/quintadosovos/erp-avicola/internal/config"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	// Criar aplicação
	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Erro ao iniciar a aplicação: %v", err)
	}

	app.SetupRoutes("/api/v1")

	// Iniciar o servidor
	if err := app.Start(); err != nil {
		log.Fatalf("Erro no servidor HTTP: %v", err)
	}
}
