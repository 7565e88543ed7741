package main

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/quizflow/internal/config"
	"github.com/at-ishikawa/quizflow/internal/opentdb"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newCategoryReader(cfg *config.Config) *opentdb.CategoryReader {
	return opentdb.NewCategoryReader(
		cfg.OpenTDB.BaseURL,
		time.Duration(cfg.OpenTDB.TimeoutSeconds)*time.Second,
		cfg.Categories.CacheDirectory,
	)
}
