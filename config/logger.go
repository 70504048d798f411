package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NuevoLogger inicializa el logger zap según LOG_FORMATO y LOG_NIVEL.
// En desarrollo conviene LOG_FORMATO=console para salida legible.
func NuevoLogger() (*zap.Logger, error) {
	var cfg zap.Config

	switch GetEnv("LOG_FORMATO", "json") {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
	}

	nivel, err := zapcore.ParseLevel(GetEnv("LOG_NIVEL", "info"))
	if err != nil {
		nivel = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(nivel)

	return cfg.Build()
}
