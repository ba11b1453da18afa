package logutil

import (
	"io"
	"os"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultLogLevel is the default level of the log. Compilation stages log at debug.
	DefaultLogLevel = "warn"
	// DefaultLogFormat is the default format of the log.
	DefaultLogFormat = "text"
)

// LogConfig serializes log related config in toml/json.
type LogConfig struct {
	log.Config
}

// NewLogConfig creates a LogConfig. An empty file name sends the log to the terminal.
func NewLogConfig(level, format, file string, disableTimestamp bool) *LogConfig {
	return &LogConfig{
		Config: log.Config{
			Level:            level,
			Format:           format,
			DisableTimestamp: disableTimestamp,
			File:             log.FileLogConfig{Filename: file},
		},
	}
}

// InitLogger initializes the global logger with cfg. Without a log file the records go to stderr,
// which keeps stdout free for command output.
func InitLogger(cfg *LogConfig, opts ...zap.Option) (*zap.Logger, error) {
	return initLogger(cfg, os.Stderr, opts...)
}

func initLogger(cfg *LogConfig, stderr io.Writer, opts ...zap.Option) (*zap.Logger, error) {
	opts = append(opts, zap.AddStacktrace(zapcore.FatalLevel))
	var (
		gl    *zap.Logger
		props *log.ZapProperties
		err   error
	)
	if len(cfg.File.Filename) == 0 {
		ws := zapcore.AddSync(stderr)
		gl, props, err = log.InitLoggerWithWriteSyncer(&cfg.Config, ws, ws, opts...)
	} else {
		gl, props, err = log.InitLogger(&cfg.Config, opts...)
	}
	if err != nil {
		return nil, errors.Trace(err)
	}
	log.ReplaceGlobals(gl, props)
	return gl, nil
}
