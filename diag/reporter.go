// Package diag reports soft failures of keyed containers.
//
// A missing key is never an error in this module: the container finishes the
// operation as a no-op and tells a Reporter about it.
package diag

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Op names the container operation that looked a key up.
type Op string

const (
	OpReassign Op = "reassign"
	OpRemove   Op = "remove"
	OpLookup   Op = "lookup"
)

type Reporter interface {
	KeyNotFound(op Op, key string)
}

// LogReporter writes each miss as a warning.
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter returns a Reporter backed by logger. A nil logger discards.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) KeyNotFound(op Op, key string) {
	r.logger.Warn("key not found",
		zap.String("op", string(op)),
		zap.String("key", key),
	)
}

// NewDefaultLogger builds the console logger used when a container is created
// without a reporter.
func NewDefaultLogger() *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
