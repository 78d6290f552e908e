package app

import "time"

// Config описывает настройки запуска приложения. Поля Kafka, Postgres
// и Gemini опциональны: пустое значение отключает соответствующую
// интеграцию, сервис продолжает работать на in-memory хранилищах.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	// KafkaBrokers — список брокеров через запятую.
	KafkaBrokers string
	// PostgresDSN — строка подключения для хранилища заметок.
	PostgresDSN string
	// GeminiAPIKey — ключ API для AI-ассистента онбординга.
	GeminiAPIKey string

	// AutosaveInterval — период фонового сохранения черновиков заметок.
	AutosaveInterval time.Duration
}

// DefaultConfig возвращает базовые адреса и интервалы.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:         ":50051",
		MetricsAddr:      ":9090",
		AutosaveInterval: 3 * time.Second,
	}
}
