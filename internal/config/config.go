package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/geange/regexdfa/internal/logutil"
	"github.com/pingcap/errors"
	"go.uber.org/zap/zapcore"
)

// Config contains configuration options.
type Config struct {
	Log     Log     `toml:"log" json:"log"`
	Compile Compile `toml:"compile" json:"compile"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format. one of json, text, or console.
	Format string `toml:"format" json:"format"`
	// Log file, stderr when empty.
	File string `toml:"file" json:"file"`
	// Disable automatic timestamps in output.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
}

// Compile is the compile section of config.
type Compile struct {
	// Upper bound on the DFA states subset construction may create, 0 for none.
	DeterminizeWorkLimit int `toml:"determinize-work-limit" json:"determinize-work-limit"`
}

var defaultConf = Config{
	Log: Log{
		Level:  logutil.DefaultLogLevel,
		Format: logutil.DefaultLogFormat,
	},
	Compile: Compile{
		DeterminizeWorkLimit: 10000,
	},
}

// NewConfig creates a new config instance with default value.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// Load loads config options from a toml file. Keys the config does not know are an error.
func (c *Config) Load(confFile string) error {
	meta, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return errors.Errorf("unknown keys in config file %s: %s", confFile, strings.Join(keys, ", "))
	}
	return nil
}

// Valid checks if this config is valid.
func (c *Config) Valid() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json", "console":
	default:
		return errors.Errorf("invalid log format %q, expected one of text, json or console", c.Log.Format)
	}
	if c.Compile.DeterminizeWorkLimit < 0 {
		return errors.Errorf("determinize-work-limit must not be negative, got %d", c.Compile.DeterminizeWorkLimit)
	}
	return nil
}

// ToLogConfig converts *Log to *logutil.LogConfig.
func (l *Log) ToLogConfig() *logutil.LogConfig {
	return logutil.NewLogConfig(l.Level, l.Format, l.File, l.DisableTimestamp)
}
