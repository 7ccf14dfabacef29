package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the redflag configuration.
type Config struct {
	Mode        string `json:"mode"`
	MinSeverity string `json:"minSeverity"`
	Format      string `json:"format"`
	RulesFile   string `json:"rulesFile,omitempty"`
	Provider    string `json:"provider"`
	Model       string `json:"model"`
	Redact      bool   `json:"redact"`
	ChunkChars  int    `json:"chunkChars"`
	DelaySecs   int    `json:"delaySeconds"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Mode:        "hybrid",
		MinSeverity: "low",
		Format:      "text",
		Provider:    "anthropic",
		Model:       "claude-sonnet-4-5-20250929",
		Redact:      true,
		ChunkChars:  80000,
		DelaySecs:   65,
	}
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "redflag"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "redflag"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "redflag"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "redflag"), nil
	default:
		return filepath.Join(home, ".config", "redflag"), nil
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

// LoadFile loads config from the config file. The second return is
// false when no config file exists.
func LoadFile() (Config, bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, true, nil
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

// Load builds the effective config by merging: defaults <- file <- env
// <- overrides. The overrides map comes from CLI flags; only non-zero
// values should be set.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, found, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	if found {
		mergeFile(&cfg, fileCfg)
	}
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if src.MinSeverity != "" {
		dst.MinSeverity = src.MinSeverity
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.RulesFile != "" {
		dst.RulesFile = src.RulesFile
	}
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.ChunkChars > 0 {
		dst.ChunkChars = src.ChunkChars
	}
	if src.DelaySecs > 0 {
		dst.DelaySecs = src.DelaySecs
	}
	// The JSON zero value for a bool is indistinguishable from unset, so
	// a present file is authoritative for Redact.
	dst.Redact = src.Redact
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("REDFLAG_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("REDFLAG_SEVERITY"); v != "" {
		cfg.MinSeverity = v
	}
	if v := os.Getenv("REDFLAG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("REDFLAG_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("REDFLAG_RULES"); v != "" {
		cfg.RulesFile = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["mode"]; ok && v != "" {
		cfg.Mode = v
	}
	if v, ok := overrides["severity"]; ok && v != "" {
		cfg.MinSeverity = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["rulesFile"]; ok && v != "" {
		cfg.RulesFile = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
}

// SetField sets a single config field by key name. Returns an error if
// the key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "mode":
		cfg.Mode = value
	case "minSeverity":
		cfg.MinSeverity = value
	case "format":
		cfg.Format = value
	case "rulesFile":
		cfg.RulesFile = value
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "redact":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redact must be a boolean: %w", err)
		}
		cfg.Redact = b
	case "chunkChars":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("chunkChars must be an integer: %w", err)
		}
		cfg.ChunkChars = n
	case "delaySeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("delaySeconds must be an integer: %w", err)
		}
		cfg.DelaySecs = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// APIKey resolves the Anthropic API key: explicit value first, then the
// environment.
func APIKey(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv("ANTHROPIC_API_KEY")
}
