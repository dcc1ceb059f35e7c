package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит все настройки приложения
type Config struct {
	// Server
	Port string
	Host string

	// Database
	DBPath string

	// Cloud
	CloudSecret   string
	CloudEndpoint string
	FolderName    string

	// Daily limits
	AIDailyLimit          int
	EmpowermentDailyLimit int
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует
	_ = godotenv.Load()

	config := &Config{
		Port:          getEnv("PORT", "8080"),
		Host:          getEnv("HOST", "0.0.0.0"),
		DBPath:        getEnv("DB_PATH", "data/studyport.db"),
		CloudSecret:   getEnv("CLOUD_SECRET", "studyport_shared_secret"),
		CloudEndpoint: getEnv("CLOUD_ENDPOINT", ""),
		FolderName:    getEnv("FOLDER_NAME", ""),
	}

	config.AIDailyLimit = getEnvInt("AI_DAILY_LIMIT", 15)
	config.EmpowermentDailyLimit = getEnvInt("EMPOWERMENT_DAILY_LIMIT", 15)

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает числовую переменную окружения
func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
