// Package config holds runtime settings for the dijkstar command and service.
//
// Values are layered by viper, lowest precedence first: built-in defaults,
// an optional YAML file, DIJKSTAR_* environment variables (dots become
// underscores, e.g. DIJKSTAR_SERVER_ADDR), then bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DIJKSTAR"

// ErrInvalid indicates a setting outside its accepted range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of runtime settings.
type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Trace  TraceConfig  `mapstructure:"trace" yaml:"trace"`
	Graph  GraphConfig  `mapstructure:"graph" yaml:"graph"`
}

// ServerConfig controls the HTTP service.
type ServerConfig struct {
	// Addr is the listen address, host:port.
	Addr string `mapstructure:"addr" yaml:"addr"`
	// ReadTimeout bounds reading a request, body included.
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	// MaxBodyBytes caps uploaded graph documents.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
	// Format is text or json.
	Format string `mapstructure:"format" yaml:"format"`
}

// TraceConfig selects the span exporter.
type TraceConfig struct {
	// Exporter is stdout or none.
	Exporter    string `mapstructure:"exporter" yaml:"exporter"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
}

// GraphConfig describes the graph served at startup and default query options.
type GraphConfig struct {
	// File is loaded at startup when set, and re-read by reload requests.
	File string `mapstructure:"file" yaml:"file"`
	// TurnPenalty is added to each edge whose weight differs from the previous one.
	// Zero disables it.
	TurnPenalty float64 `mapstructure:"turn_penalty" yaml:"turn_penalty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            "localhost:8000",
			ReadTimeout:     30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    64 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Trace: TraceConfig{
			Exporter:    "none",
			ServiceName: "dijkstar",
		},
	}
}

// SetDefaults registers every key of Default on v so that environment
// variables and Unmarshal see the complete key set.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("trace.exporter", d.Trace.Exporter)
	v.SetDefault("trace.service_name", d.Trace.ServiceName)
	v.SetDefault("graph.file", d.Graph.File)
	v.SetDefault("graph.turn_penalty", d.Graph.TurnPenalty)
}

// Load resolves settings from v. When file is non-empty it must exist and is
// read as YAML. The result is validated.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first setting outside its accepted range.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be positive", ErrInvalid)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}
	switch c.Trace.Exporter {
	case "stdout", "none":
	default:
		return fmt.Errorf("%w: trace.exporter %q (want stdout or none)", ErrInvalid, c.Trace.Exporter)
	}
	if c.Graph.TurnPenalty < 0 {
		return fmt.Errorf("%w: graph.turn_penalty must not be negative", ErrInvalid)
	}

	return nil
}
