// Package logging configures the process-wide zap logger for the wsge
// commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console SugaredLogger writing to stderr at the given
// level. Empty or unknown level names fall back to warn, which keeps
// the one-shot commands quiet unless WSGE_LOG says otherwise.
func New(level string) *zap.SugaredLogger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zap.Must(cfg.Build()).Sugar()
}
