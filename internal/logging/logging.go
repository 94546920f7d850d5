package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// New builds a file logger for the client. Pages log caught errors here and
// show the user a generic message; the log file keeps the detail.
func New(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if strings.TrimSpace(os.Getenv("CAREOPS_DEBUG")) != "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
