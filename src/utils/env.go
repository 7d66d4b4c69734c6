package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

const CONFIG_ENV_KEY = "PREDICTOR_CONFIG"
const INPUT_ENV_KEY = "PREDICTOR_INPUT"
const LOG_LEVEL_ENV_KEY = "PREDICTOR_LOG_LEVEL"

// InitEnvironmentVariables loads the .env file matching goEnv from envDir. A missing file is not an
// error since every setting has a default.
func InitEnvironmentVariables(envDir, goEnv string) error {
	if goEnv == "production" && os.Getenv("ENV") == "production" {
		log.Info("Running in production environment")
		return nil
	}

	envFile := filepath.Join(envDir, DEV_ENV_FILENAME)
	if goEnv == "production" {
		envFile = filepath.Join(envDir, PROD_ENV_FILENAME)
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		log.Debugf("No %s file found, using process environment", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s file: %v", envFile, err)
	}

	log.Debugf("Loaded environment from %s", envFile)

	return nil
}
