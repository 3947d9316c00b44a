package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config lê uma variável do .env ou do ambiente do sistema
func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("⚠️ Arquivo .env não encontrado, usando variáveis do sistema...")
		}
	})
	return os.Getenv(key)
}

// ConfigOr retorna o valor da variável ou o fallback informado
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
