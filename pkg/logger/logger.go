package logger

import (
	"fmt"

	"github.com/inkwell-market/inkwell/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timestampLayout = "02-01-2006 15:04:05.000"

func parseLevel(lvl string) (zapcore.Level, error) {
	switch lvl {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InvalidLevel, fmt.Errorf("unsupported log lvl: %s", lvl)
}

// InitLogger builds the process-wide zap logger and installs it via
// zap.ReplaceGlobals, so every package logs through zap.L().
func InitLogger(conf *config.Config) error {
	lvl, err := parseLevel(conf.LogLvl)
	if err != nil {
		return err
	}

	c := zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.TimeEncoderOfLayout(timestampLayout),
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	zap.ReplaceGlobals(logger)

	return nil
}
