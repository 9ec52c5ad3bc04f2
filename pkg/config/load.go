package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first env file found among envFilePath (searching parent
// directories), falls back to ./.env, and then processes the environment.
// A missing env file is not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		if err := godotenv.Load(foundPath); err != nil {
			logger.Warn("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Debug("Loaded environment from file", "path", foundPath)
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Terminal == nil {
		cfg.Terminal = &Terminal{}
	}
	return &cfg, nil
}
