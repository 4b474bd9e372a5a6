package bootstrap

import (
	"fmt"
	"os"

	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/env"
	"github.com/galaplate/creational/logger"
	"github.com/galaplate/creational/merch"
)

// AppConfig controls how the application is wired at startup.
type AppConfig struct {
	EnvFile    string
	ConfigPath string
	// LogToFile routes logs to rotated files under app.log.dir; otherwise they are discarded.
	LogToFile bool
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		EnvFile:    ".env",
		ConfigPath: "./config",
		LogToFile:  true,
	}
}

// Init loads env and config, configures the logger and installs the global merch registry.
func Init(opts ...func(*AppConfig)) error {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.EnvFile != "" {
		if _, err := os.Stat(cfg.EnvFile); err == nil {
			if err := env.Load(cfg.EnvFile); err != nil {
				return fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
			}
		}
	}

	data, err := config.NewLoader(cfg.ConfigPath).Load()
	if err != nil {
		return err
	}
	config.InitializeGlobal(data)

	if cfg.LogToFile {
		if err := logger.Setup(config.ConfigStringOr("app.log.dir", "storage/logs")); err != nil {
			return err
		}
	}

	level, err := logger.ParseLogLevel(config.ConfigStringOr("app.log.level", "info"))
	if err != nil {
		logger.Warn("Falling back to info log level", map[string]any{"error": err.Error()})
	}
	logger.SetLevel(level)

	brand, err := merch.ParseBrand(config.ConfigStringOr("merch.default_brand", string(merch.Endava)))
	if err != nil {
		return fmt.Errorf("merch.default_brand: %w", err)
	}
	if err := merch.Initialize(brand); err != nil {
		return err
	}

	logger.Info("Application bootstrapped", map[string]any{
		"app":           config.ConfigString("app.name"),
		"default_brand": string(brand),
	})
	return nil
}
