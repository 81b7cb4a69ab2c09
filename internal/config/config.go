package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ExportDir string       `yaml:"export_dir" mapstructure:"export_dir"`
	Theme     string       `yaml:"theme" mapstructure:"theme"`
	Form      FormConfig   `yaml:"form" mapstructure:"form"`
	Export    ExportConfig `yaml:"export" mapstructure:"export"`
}

type FormConfig struct {
	DefaultAge int `yaml:"default_age" mapstructure:"default_age"`
}

type ExportConfig struct {
	SheetName      string  `yaml:"sheet_name" mapstructure:"sheet_name"`
	MaxColumnWidth float64 `yaml:"max_column_width" mapstructure:"max_column_width"`
}

func DefaultConfig() *Config {
	return &Config{
		ExportDir: ".",
		Theme:     "green",
		Form: FormConfig{
			DefaultAge: 25,
		},
		Export: ExportConfig{
			SheetName:      "People Data",
			MaxColumnWidth: 50,
		},
	}
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Register every key up front; without this, env overrides only apply
	// to keys viper has already seen in a config file.
	viper.SetDefault("export_dir", cfg.ExportDir)
	viper.SetDefault("theme", cfg.Theme)
	viper.SetDefault("form.default_age", cfg.Form.DefaultAge)
	viper.SetDefault("export.sheet_name", cfg.Export.SheetName)
	viper.SetDefault("export.max_column_width", cfg.Export.MaxColumnWidth)

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "roster"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "roster"))

	// Environment variables
	viper.SetEnvPrefix("ROSTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and normalizes out-of-range values.
func (c *Config) Validate() error {
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	if info, err := os.Stat(c.ExportDir); err == nil && !info.IsDir() {
		return fmt.Errorf("config: export_dir %q is not a directory", c.ExportDir)
	}
	if c.Form.DefaultAge < 1 || c.Form.DefaultAge > 120 {
		c.Form.DefaultAge = 25
	}
	if c.Export.SheetName == "" {
		c.Export.SheetName = "People Data"
	}
	if c.Export.MaxColumnWidth < 10 {
		c.Export.MaxColumnWidth = 50
	}
	return nil
}
