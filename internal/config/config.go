package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Quiz       QuizConfig       `mapstructure:"quiz"`
	OpenTDB    OpenTDBConfig    `mapstructure:"opentdb"`
	Categories CategoriesConfig `mapstructure:"categories"`
	Reports    ReportsConfig    `mapstructure:"reports"`
}

type QuizConfig struct {
	Category   int    `mapstructure:"category" validate:"gte=0"`
	Amount     int    `mapstructure:"amount"`
	Difficulty string `mapstructure:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Type       string `mapstructure:"type" validate:"omitempty,oneof=multiple boolean"`
}

type OpenTDBConfig struct {
	BaseURL          string `mapstructure:"base_url" validate:"required,httpurl"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts" validate:"lte=10"`
}

type CategoriesConfig struct {
	CacheDirectory string `mapstructure:"cache_directory" validate:"required"`
}

type ReportsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
	Template  string `mapstructure:"template" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	dotEnvPath string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/quizflow")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		dotEnvPath: ".env",
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// Variables already set in the environment win over the .env file
	if err := godotenv.Load(loader.dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Default().Warn("failed to load a .env file",
			slog.String("path", loader.dotEnvPath),
			slog.Any("error", err),
		)
	}

	v.SetDefault("quiz.category", DefaultCategory)
	v.SetDefault("quiz.amount", DefaultAmount)
	v.SetDefault("quiz.difficulty", "")
	v.SetDefault("quiz.type", "")
	v.SetDefault("opentdb.base_url", "https://opentdb.com")
	v.SetDefault("opentdb.timeout_seconds", 10)
	v.SetDefault("opentdb.max_retry_attempts", 3)
	v.SetDefault("categories.cache_directory", filepath.Join("cache", "opentdb"))
	v.SetDefault("reports.directory", filepath.Join("outputs", "reports"))
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("reports.template", "")

	bindings := map[string]string{
		"opentdb.base_url": "OPENTDB_BASE_URL",
		"quiz.category":    "QUIZFLOW_CATEGORY",
		"quiz.amount":      "QUIZFLOW_AMOUNT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.Quiz.Amount = ClampAmount(cfg.Quiz.Amount)

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
