package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable for any invocation mode.
// Homebox settings are only required for asset lookups; see ValidateHomebox.
func (c *Config) Validate() error {
	if err := c.validatePrinter(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePrinter() error {
	if c.Printer.QueueName == "" {
		return errors.New("printer.queue_name must be set")
	}
	if c.Printer.Host == "" {
		return errors.New("printer.host must be set")
	}
	if c.Printer.Port < 1 || c.Printer.Port > 65535 {
		return fmt.Errorf("printer.port must be between 1 and 65535, got %d", c.Printer.Port)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// ValidateHomebox is the pre-flight check for remote-fetch invocations. It
// reports every missing requirement in one pass so an operator can fix the
// environment in a single edit.
func (c *Config) ValidateHomebox() error {
	missing := make([]string, 0, 5)
	if c.Homebox.URL == "" {
		missing = append(missing, EnvHomeboxURL)
	}
	if c.Homebox.Username == "" {
		missing = append(missing, EnvHomeboxUsername)
	}
	if c.Homebox.Password == "" {
		missing = append(missing, EnvHomeboxPassword)
	}
	if c.Homebox.Owner == "" {
		missing = append(missing, EnvHomeboxOwner)
	}
	if c.Homebox.LabelURLPrefix == "" {
		missing = append(missing, EnvHomeboxLabelURLPrefix)
	}
	if len(missing) > 0 {
		return fmt.Errorf("homebox configuration incomplete; set %s (env vars or the [homebox] section)", strings.Join(missing, ", "))
	}
	return nil
}
