package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New: JSON formatında structured log üreten production zap logger'ı
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Must: Logger oluşturulamazsa panic'ler
func Must(logger *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return logger
}
