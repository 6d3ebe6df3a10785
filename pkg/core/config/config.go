package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	blerror "github.com/msto63/bologna/foundation/core/error"
)

// Environment variables read by LoadFromEnv
const (
	EnvConfigPath = "BOLOGNA_CONFIG"
	EnvLogLevel   = "BOLOGNA_LOG_LEVEL"
	EnvPrompt     = "BOLOGNA_PROMPT"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// REPLConfig holds settings of the interactive loop
type REPLConfig struct {
	Prompt         string `toml:"prompt" yaml:"prompt"`
	Banner         string `toml:"banner" yaml:"banner"`
	EmitWhitespace bool   `toml:"emit_whitespace" yaml:"emit_whitespace"`
}

// ParserConfig holds the operator table and the name of the function that
// wraps top-level expressions
type ParserConfig struct {
	Precedence    map[string]int `toml:"precedence" yaml:"precedence"`
	AnonymousName string         `toml:"anonymous_name" yaml:"anonymous_name"`
}

// ServerConfig holds websocket service settings
type ServerConfig struct {
	Host            string   `toml:"host" yaml:"host"`
	Port            int      `toml:"port" yaml:"port"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	MaxMessageBytes int64    `toml:"max_message_bytes" yaml:"max_message_bytes"`

	// Parse results are cached per source text; 0 entries uses the default
	CacheEntries int      `toml:"cache_entries" yaml:"cache_entries"`
	CacheTTL     Duration `toml:"cache_ttl" yaml:"cache_ttl"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file; the format follows
// the file extension (.yaml/.yml, anything else is TOML)
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, blerror.Newf("config file not found: %s", path).
				WithCode(blerror.CodeNotFound).
				WithDetail("path", path)
		}
		return nil, blerror.Wrap(err, "failed to read config").
			WithCode(blerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, parseFailure(err, path)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, parseFailure(err, path)
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads a .env file if present, then the file named by
// BOLOGNA_CONFIG or the first default location that exists. Without any
// file the defaults are used. BOLOGNA_LOG_LEVEL and BOLOGNA_PROMPT
// override the loaded values.
func LoadFromEnv() (*Config, error) {
	// a missing .env is not an error
	_ = godotenv.Load()

	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = findDefaultPath()
	}

	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// DefaultPaths lists the locations searched when BOLOGNA_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{
		"./configs/bologna.toml",
		"./bologna.toml",
		"./bologna.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config/bologna/config.toml"))
	}
	return paths
}

func findDefaultPath() string {
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func parseFailure(err error, path string) error {
	return blerror.Wrap(err, "failed to parse config").
		WithCode(blerror.CodeConfigError).
		WithDetail("path", path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "bologna"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "> "
	}

	// Parser
	if len(c.Parser.Precedence) == 0 {
		c.Parser.Precedence = map[string]int{"<": 10, "+": 20, "-": 20, "*": 40}
	}
	if c.Parser.AnonymousName == "" {
		c.Parser.AnonymousName = blparser.DefaultAnonymousName
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8090
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 60 * time.Second
	}
	if c.Server.MaxMessageBytes == 0 {
		c.Server.MaxMessageBytes = 64 * 1024
	}
	if c.Server.CacheEntries == 0 {
		c.Server.CacheEntries = 256
	}
	if c.Server.CacheTTL.Duration == 0 {
		c.Server.CacheTTL.Duration = 5 * time.Minute
	}
}

// applyEnvOverrides applies environment variable overrides
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.General.LogLevel = level
	}
	if prompt := os.Getenv(EnvPrompt); prompt != "" {
		c.REPL.Prompt = prompt
	}
}

// Validate checks values that have no usable default
func (c *Config) Validate() error {
	if _, err := c.PrecedenceTable(); err != nil {
		return err
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return blerror.Newf("invalid server port: %d", c.Server.Port).
			WithCode(blerror.CodeInvalidConfig).
			WithDetail("port", c.Server.Port)
	}
	if c.Server.MaxMessageBytes < 0 {
		return blerror.Newf("invalid max_message_bytes: %d", c.Server.MaxMessageBytes).
			WithCode(blerror.CodeInvalidConfig)
	}
	return nil
}

// PrecedenceTable builds the operator table from the parser section
func (c *Config) PrecedenceTable() (*blparser.PrecedenceTable, error) {
	return blparser.ParsePrecedenceTable(c.Parser.Precedence)
}

// ParserOptions returns parser options for a new session. The logger is
// left for the caller to set.
func (c *Config) ParserOptions() (blparser.Options, error) {
	table, err := c.PrecedenceTable()
	if err != nil {
		return blparser.Options{}, err
	}
	return blparser.Options{
		Precedence:    table,
		AnonymousName: c.Parser.AnonymousName,
	}, nil
}

// ServerAddress returns the listen address of the websocket service
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
