package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	ServerPort string

	// grade de horários
	OpenHour    int
	CloseHour   int
	StepMinutes int

	// popular catálogo + grade determinística no boot
	Seed bool

	// latência simulada do provedor de mensagens
	MessageDelayMs int
}

func Load() *Config {
	// .env é opcional — em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	return &Config{
		DBUrl:          getEnv("DATABASE_URL", ":memory:"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		OpenHour:       getEnvInt("OPEN_HOUR", 9),
		CloseHour:      getEnvInt("CLOSE_HOUR", 18),
		StepMinutes:    getEnvInt("SLOT_STEP_MINUTES", 30),
		Seed:           getEnv("SEED", "true") == "true",
		MessageDelayMs: getEnvInt("MESSAGE_DELAY_MS", 0),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
