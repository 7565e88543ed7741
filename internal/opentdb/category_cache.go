package opentdb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const categoryCacheFileName = "categories.yml"

type categoryCacheFile struct {
	FetchedAt  time.Time  `yaml:"fetched_at"`
	Categories []Category `yaml:"categories"`
}

// CategoryCache stores the category list in a YAML file.
type CategoryCache struct {
	rootDir string
}

func NewCategoryCache(cacheDirectory string) *CategoryCache {
	return &CategoryCache{
		rootDir: cacheDirectory,
	}
}

func (cache *CategoryCache) filePath() string {
	return filepath.Join(cache.rootDir, categoryCacheFileName)
}

// read returns ok=false when nothing has been cached yet.
func (cache *CategoryCache) read() ([]Category, bool, error) {
	contents, err := os.ReadFile(cache.filePath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("os.ReadFile > %w", err)
	}

	var file categoryCacheFile
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return nil, false, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	return file.Categories, true, nil
}

func (cache *CategoryCache) write(categories []Category, fetchedAt time.Time) error {
	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", cache.rootDir, err)
	}

	contents, err := yaml.Marshal(categoryCacheFile{
		FetchedAt:  fetchedAt,
		Categories: categories,
	})
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	if err := os.WriteFile(cache.filePath(), contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}
