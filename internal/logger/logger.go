package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Lg is a no-op until InitLogger runs, so packages can log from tests.
var Lg = zap.NewNop()

// InitLogger builds the production JSON logger. An empty file logs to stderr,
// stdout is left to the prompt.
func InitLogger(level, file string) error {
	lvl := zapcore.ErrorLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return err
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	if file != "" {
		cfg.OutputPaths = []string{file}
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Lg = logger
	return nil
}
