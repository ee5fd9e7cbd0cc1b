package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/agendanav/internal/core/agenda"
	"github.com/colonyops/agendanav/internal/core/nav"
	"github.com/colonyops/agendanav/internal/core/styles"
)

// ValidateDeep performs Validate and then checks file accessibility of the
// config file and the agenda document. An empty configPath skips the config
// file check.
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("traversal", string(c.Traversal), validTraversal),
		criterio.Run("theme", c.Theme, validTheme),
		criterio.Run("agenda", c.Agenda, agendaReadable),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func validTraversal(mode string) error {
	if !nav.Mode(mode).IsValid() {
		return fmt.Errorf("unknown traversal mode %q", mode)
	}
	return nil
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

// agendaReadable checks that the agenda document exists and decodes. Stdin
// ("-") is only read by the commands that need it.
func agendaReadable(path string) error {
	if path == "" || path == "-" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if _, err := agenda.LoadFile(path); err != nil {
		return err
	}
	return nil
}
