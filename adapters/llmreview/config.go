package llmreview

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the review pass settings, read from a YAML file or from the
// environment.
type Config struct {
	APIKey    string `yaml:"api_key"    env:"DARIJASET_LLM_API_KEY"`
	Model     string `yaml:"model"      env:"DARIJASET_LLM_MODEL"      env-default:"claude-sonnet-4-0"`
	MaxTokens int64  `yaml:"max_tokens" env:"DARIJASET_LLM_MAX_TOKENS" env-default:"1024"`
	// PauseMillis throttles consecutive API calls.
	PauseMillis int `yaml:"pause_millis" env:"DARIJASET_LLM_PAUSE_MILLIS" env-default:"700"`
}

// LoadConfig reads the config from path, or from the environment when path
// is empty.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("review config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("review config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("review config: read env: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, errors.New("review config: api key is not set")
	}

	return &cfg, nil
}
