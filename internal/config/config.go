// Package config loads application settings from a YAML file and
// environment variables, with working defaults when neither exists.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/smartinez/hipolito/internal/knowledge"
)

type Config struct {
	Chat Chat `mapstructure:"chat"`
	Web  Web  `mapstructure:"web"`
	DB   DB   `mapstructure:"db"`
}

type Chat struct {
	// Level is the comprehension level answers are phrased at:
	// basico, intermedio or avanzado.
	Level string `mapstructure:"level"`

	// Generative enables the LLM fallback for turns the rules can't
	// answer. Off by default so the app works fully offline.
	Generative bool `mapstructure:"generative"`
}

type Web struct {
	// Addr is the listen address for the storybook site server.
	Addr string `mapstructure:"addr"`

	// SiteDir is the directory of static files to serve. Empty means
	// the embedded site.
	SiteDir string `mapstructure:"site_dir"`
}

type DB struct {
	// Path overrides the default database location.
	Path string `mapstructure:"path"`
}

// Load reads configuration from configFile, or from the standard
// locations when empty.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hipolito")
	}

	v.SetDefault("chat.level", string(knowledge.LevelBasic))
	v.SetDefault("chat.generative", false)
	v.SetDefault("web.addr", ":3000")
	v.SetDefault("web.site_dir", "")
	v.SetDefault("db.path", "")

	if err := v.BindEnv("chat.level", "HIPOLITO_LEVEL"); err != nil {
		return nil, fmt.Errorf("bind HIPOLITO_LEVEL: %w", err)
	}
	if err := v.BindEnv("chat.generative", "HIPOLITO_GENERATIVE"); err != nil {
		return nil, fmt.Errorf("bind HIPOLITO_GENERATIVE: %w", err)
	}
	if err := v.BindEnv("web.addr", "HIPOLITO_WEB_ADDR"); err != nil {
		return nil, fmt.Errorf("bind HIPOLITO_WEB_ADDR: %w", err)
	}
	if err := v.BindEnv("db.path", "HIPOLITO_DB"); err != nil {
		return nil, fmt.Errorf("bind HIPOLITO_DB: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch knowledge.Level(c.Chat.Level) {
	case knowledge.LevelBasic, knowledge.LevelIntermediate, knowledge.LevelAdvanced:
	default:
		return fmt.Errorf("unknown comprehension level %q (want basico, intermedio or avanzado)", c.Chat.Level)
	}
	return nil
}

// Level returns the configured comprehension level.
func (c *Config) Level() knowledge.Level {
	return knowledge.Level(c.Chat.Level)
}
