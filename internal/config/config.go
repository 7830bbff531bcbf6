package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"prcoach/internal/coach"
)

// Config represents the prcoach configuration.
type Config struct {
	Provider   string       `json:"provider"`
	Model      string       `json:"model"`
	Format     string       `json:"format"`
	NoSnippet  bool         `json:"noSnippet"`
	FeedbackDB string       `json:"feedbackDb,omitempty"`
	Cache      CacheConfig  `json:"cache"`
	Policy     coach.Policy `json:"policy"`
}

// CacheConfig controls narrative response caching.
type CacheConfig struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider: "groq",
		Model:    "",
		Format:   "text",
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 86400,
		},
		Policy: coach.DefaultPolicy(),
	}
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Policy.MaxInlineComments < 0 {
		return fmt.Errorf("policy.maxInlineComments must be >= 0, got %d", c.Policy.MaxInlineComments)
	}
	switch c.Format {
	case "", "text", "json", "markdown":
	default:
		return fmt.Errorf("unknown format: %s", c.Format)
	}
	return nil
}

// ConfigDir returns the platform-appropriate config directory for prcoach.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "prcoach"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "prcoach"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "prcoach"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "prcoach"), nil
	default:
		return filepath.Join(home, ".config", "prcoach"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads the persisted config for editing: the defaults with the
// config file, if present, decoded over them. Saving the result back never
// downgrades fields the file did not mention.
func LoadFile() (Config, error) {
	cfg := Default()
	if err := mergeFile(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	if err := mergeFile(&cfg); err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile decodes the config file directly over cfg. Fields absent from
// the file keep their defaults; fields present apply verbatim, so explicit
// false values (policy.allowSnippets, cache.enabled) are honored.
func mergeFile(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("PRCOACH_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("PRCOACH_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PRCOACH_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("PRCOACH_FEEDBACK_DB"); v != "" {
		cfg.FeedbackDB = v
	}
	if v := os.Getenv("PRCOACH_NO_SNIPPET"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoSnippet = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["feedbackDb"]; ok && v != "" {
		cfg.FeedbackDB = v
	}
	if v, ok := overrides["noSnippet"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoSnippet = b
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is
// unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "feedbackDb":
		cfg.FeedbackDB = value
	case "noSnippet":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("noSnippet must be a boolean: %w", err)
		}
		cfg.NoSnippet = b
	case "policy.requireDocstringsPublicOnly":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("policy.requireDocstringsPublicOnly must be a boolean: %w", err)
		}
		cfg.Policy.RequireDocstringsPublicOnly = b
	case "policy.allowSnippets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("policy.allowSnippets must be a boolean: %w", err)
		}
		cfg.Policy.AllowSnippets = b
	case "policy.maxInlineComments":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("policy.maxInlineComments must be an integer: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("policy.maxInlineComments must be >= 0")
		}
		cfg.Policy.MaxInlineComments = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
