// Package config provides configuration for the chat server.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabasePath string

	// Generation API
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration
	UseMockLLM bool

	// Tenant resources
	KnowledgeDir  string
	DefaultTenant string

	// Conversation window sent to the generation API
	HistoryWindow int
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnvInt("HTTP_PORT", 8080),
		DatabasePath:  getEnv("DATABASE_PATH", "app.db"),
		LLMBaseURL:    getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMAPIKey:     getEnv("LLM_API_KEY", ""),
		LLMModel:      getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:    time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		UseMockLLM:    getEnvBool("USE_MOCK_LLM", false),
		KnowledgeDir:  getEnv("KNOWLEDGE_DIR", "knowledge"),
		DefaultTenant: getEnv("DEFAULT_TENANT", "default"),
		HistoryWindow: getEnvInt("HISTORY_WINDOW", 12),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val == "1" || val == "true" || val == "TRUE"
}
