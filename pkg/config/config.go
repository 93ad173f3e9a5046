/*
Package config manages the TOML configuration of wordladder.

The file lives at [UserConfigDir]/wordladder/config.toml unless a path is
given with -config. A missing file is created with the defaults below. A file
that fails to decode is recovered section by section, so one mistyped value
does not throw away the rest:

	[search]
	max_steps = 250000
	bidirectional = true
	trace = 0

	[dict]
	path = "wordlist.txt"

	[server]
	max_word_len = 64

	[cli]
	suggestions = 3

Command line flags override whatever the file says.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/wordladder/internal/utils"
	"github.com/charmbracelet/log"
)

// Defaults
const (
	DefaultMaxSteps    = 250000
	DefaultDictPath    = "wordlist.txt"
	DefaultMaxWordLen  = 64
	DefaultSuggestions = 3
	maxTraceLevel      = 2
)

// Config holds the entire config structure
type Config struct {
	Search SearchConfig `toml:"search"`
	Dict   DictConfig   `toml:"dict"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// SearchConfig tunes the ladder search.
type SearchConfig struct {
	MaxSteps      int  `toml:"max_steps"`
	Bidirectional bool `toml:"bidirectional"`
	Trace         int  `toml:"trace"`
}

// DictConfig locates the dictionary.
type DictConfig struct {
	Path string `toml:"path"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxWordLen int `toml:"max_word_len"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Suggestions int `toml:"suggestions"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxSteps:      DefaultMaxSteps,
			Bidirectional: true,
		},
		Dict: DictConfig{
			Path: DefaultDictPath,
		},
		Server: ServerConfig{
			MaxWordLen: DefaultMaxWordLen,
		},
		CLI: CliConfig{
			Suggestions: DefaultSuggestions,
		},
	}
}

// Sanitize replaces out of range values with their defaults.
func (c *Config) Sanitize() {
	if c.Search.MaxSteps <= 0 {
		log.Warnf("search.max_steps must be positive, got %d. Using %d", c.Search.MaxSteps, DefaultMaxSteps)
		c.Search.MaxSteps = DefaultMaxSteps
	}
	if c.Search.Trace < 0 || c.Search.Trace > maxTraceLevel {
		log.Warnf("search.trace must be 0-%d, got %d. Disabling trace", maxTraceLevel, c.Search.Trace)
		c.Search.Trace = 0
	}
	if c.Dict.Path == "" {
		c.Dict.Path = DefaultDictPath
	}
	if c.Server.MaxWordLen < 0 {
		c.Server.MaxWordLen = DefaultMaxWordLen
	}
	if c.CLI.Suggestions < 0 {
		c.CLI.Suggestions = 0
	}
}

// ConfigDir returns the config directory with fallback priority:
// 1. the platform user config dir, when writable
// 2. the executable's dir
func ConfigDir() (string, error) {
	dir, err := utils.UserConfigDir()
	if err == nil {
		if status := utils.CheckDir(dir); status.Writable {
			return dir, nil
		}
	} else {
		log.Errorf("Failed to get user config directory: %v", err)
	}
	return utils.ExecutableDir()
}

// DefaultConfigPath returns the default path for config.toml
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/wordladder/config.toml
// 3. Builtin defaults
//
// The returned path is empty when builtin defaults are used.
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			config, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(path string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using builtin defaults...", path, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(path) {
		config := DefaultConfig()
		if err := SaveConfig(config, path); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using builtin defaults...", path, err)
			return config, nil
		}
		log.Debugf("Created default config file at: %s", path)
		return config, nil
	}
	return LoadConfig(path)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(path, config); err != nil {
		return tryPartialParse(path)
	}
	config.Sanitize()
	return config, nil
}

// tryPartialParse keeps every key of the file that has the right type.
func tryPartialParse(path string) (*Config, error) {
	config := DefaultConfig()

	generic, err := utils.ParseTOMLGeneric(path)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", path, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(generic, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(generic, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(generic, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(generic, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.Sanitize()
	return config, nil
}

func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt(data, "max_steps"); ok {
		search.MaxSteps = val
	}
	if val, ok := utils.ExtractBool(data, "bidirectional"); ok {
		search.Bidirectional = val
	}
	if val, ok := utils.ExtractInt(data, "trace"); ok {
		search.Trace = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "suggestions"); ok {
		cli.Suggestions = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, path string) error {
	return utils.SaveTOMLFile(config, path)
}

// RebuildConfigFile overwrites path with the defaults.
func RebuildConfigFile(path string) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), path)
}

// Update changes the search values that are not nil and saves to path.
func (c *Config) Update(path string, maxSteps *int, bidirectional *bool, trace *int) error {
	search := &c.Search
	if maxSteps != nil {
		search.MaxSteps = *maxSteps
	}
	if bidirectional != nil {
		search.Bidirectional = *bidirectional
	}
	if trace != nil {
		search.Trace = *trace
	}
	c.Sanitize()
	return SaveConfig(c, path)
}
