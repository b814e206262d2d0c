package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Printer describes the IPP spooler and queue that receive rendered labels.
type Printer struct {
	QueueName string `toml:"queue_name"`
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
}

// Homebox contains configuration for the remote inventory service used by
// asset-tag lookups. Every field honours an environment fallback so
// credentials never have to live in the config file.
type Homebox struct {
	URL            string `toml:"url"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	Owner          string `toml:"owner"`
	LabelURLPrefix string `toml:"label_url_prefix"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for labelpress.
type Config struct {
	Printer Printer `toml:"printer"`
	Homebox Homebox `toml:"homebox"`
	Logging Logging `toml:"logging"`
}

// Environment fallbacks honoured for the [homebox] section.
const (
	EnvHomeboxURL            = "HOMEBOX_API_URL"
	EnvHomeboxUsername       = "HOMEBOX_USERNAME"
	EnvHomeboxPassword       = "HOMEBOX_PASSWORD"
	EnvHomeboxOwner          = "HOMEBOX_OWNER"
	EnvHomeboxLabelURLPrefix = "HOMEBOX_LABEL_URL_PREFIX"
)

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/labelpress/config.toml")
}

// Load locates, parses, and validates a configuration file. Missing files are
// not an error; defaults plus environment fallbacks apply instead.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Printer.QueueName = strings.TrimSpace(c.Printer.QueueName)
	c.Printer.Host = strings.TrimSpace(c.Printer.Host)
	if c.Printer.Port == 0 {
		c.Printer.Port = defaultPrinterPort
	}

	c.Homebox.URL = firstNonEmpty(c.Homebox.URL, os.Getenv(EnvHomeboxURL))
	c.Homebox.Username = firstNonEmpty(c.Homebox.Username, os.Getenv(EnvHomeboxUsername))
	c.Homebox.Password = firstNonEmpty(c.Homebox.Password, os.Getenv(EnvHomeboxPassword))
	c.Homebox.Owner = firstNonEmpty(c.Homebox.Owner, os.Getenv(EnvHomeboxOwner))
	c.Homebox.LabelURLPrefix = firstNonEmpty(c.Homebox.LabelURLPrefix, os.Getenv(EnvHomeboxLabelURLPrefix))
	c.Homebox.URL = strings.TrimRight(c.Homebox.URL, "/")
	if c.Homebox.TimeoutSeconds <= 0 {
		c.Homebox.TimeoutSeconds = defaultHomeboxTimeoutSeconds
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func expandPath(pathValue string) (string, error) {
	trimmed := strings.TrimSpace(pathValue)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Abs(trimmed)
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
