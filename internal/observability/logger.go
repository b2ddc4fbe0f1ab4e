package observability

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gravitas-015/hexgrid/internal/config"
)

// NewLogger builds a zap logger from the logging section of the config.
// Console output goes to stdout; when cfg.File is set a JSON core with
// rotation is teed in. An unknown level falls back to info.
func NewLogger(cfg config.LoggingConfig) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(newEncoder(cfg.Format), zapcore.Lock(os.Stdout), level),
	}

	if cfg.File != "" {
		// lumberjack handles file rotation and thread-safe writes; the
		// file sink is always JSON for downstream parsing.
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(newEncoder("json"), fileWriter, level))
	}

	return zap.New(
		zapcore.NewTee(cores...),
		zap.AddStacktrace(zap.ErrorLevel),
	).Named("hexview")
}

// newEncoder selects the encoder for a format name: "console" for
// human-readable colorized output, anything else JSON.
func newEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}
