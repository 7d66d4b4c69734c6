package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/index-predictor/src/models"
)

var validate = validator.New()

// LoadPipelineConfig reads the yaml file at configPath. An empty path yields the default pipeline.
// Environment overrides are applied before defaults and validation.
func LoadPipelineConfig(configPath string) (*models.PipelineConfigYAML, error) {
	var cfg models.PipelineConfigYAML

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("LoadPipelineConfig: failed to read config: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("LoadPipelineConfig: failed to unmarshal config: %w", err)
		}
	}

	if v := os.Getenv(INPUT_ENV_KEY); v != "" {
		cfg.Input.Path = v
	}

	if v := os.Getenv(LOG_LEVEL_ENV_KEY); v != "" {
		cfg.LogLevel = v
	}

	if err := FinalizePipelineConfig(&cfg); err != nil {
		return nil, fmt.Errorf("LoadPipelineConfig: %w", err)
	}

	return &cfg, nil
}

// FinalizePipelineConfig fills unset fields with their defaults and validates the result.
func FinalizePipelineConfig(cfg *models.PipelineConfigYAML) error {
	if err := defaults.Set(cfg); err != nil {
		return fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			msgs := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
			}

			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}

		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
