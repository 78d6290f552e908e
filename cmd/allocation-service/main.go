package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/anovainvest/allocations/internal/app"
)

const (
	envGRPCAddr         = "ALLOC_GRPC_ADDR"
	envMetricsAddr      = "ALLOC_METRICS_ADDR"
	envKafkaBrokers     = "KAFKA_BROKERS"
	envPostgresDSN      = "ALLOC_POSTGRES_DSN"
	envGeminiAPIKey     = "GEMINI_API_KEY"
	envAutosaveInterval = "ALLOC_AUTOSAVE_INTERVAL"
)

type envLookup func(key string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// readConfigFromEnv формирует конфигурацию приложения из переменных
// окружения. Некорректные значения не валят процесс: остаётся значение
// по умолчанию, а замечание возвращается вызывающей стороне.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	if v, ok := lookup(envGRPCAddr); ok && strings.TrimSpace(v) != "" {
		cfg.GRPCAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envMetricsAddr); ok && strings.TrimSpace(v) != "" {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envKafkaBrokers); ok {
		cfg.KafkaBrokers = strings.TrimSpace(v)
	}
	if v, ok := lookup(envPostgresDSN); ok {
		cfg.PostgresDSN = strings.TrimSpace(v)
	}
	if v, ok := lookup(envGeminiAPIKey); ok {
		cfg.GeminiAPIKey = strings.TrimSpace(v)
	}
	if v, ok := lookup(envAutosaveInterval); ok && strings.TrimSpace(v) != "" {
		interval, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil || interval <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s: must be a positive duration, keeping %s", envAutosaveInterval, cfg.AutosaveInterval))
		} else {
			cfg.AutosaveInterval = interval
		}
	}

	return cfg, warnings
}

func main() {
	setupLogger()

	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"grpc_addr":    cfg.GRPCAddr,
		"metrics_addr": cfg.MetricsAddr,
	}).Info("запускаем AllocationService")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("AllocationService остановлен")
}
