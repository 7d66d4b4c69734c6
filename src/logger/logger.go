package logger

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger. Logs go to stderr so stdout only carries results.
func Setup(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Setup: %w", err)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return nil
}

// NewRunEntry tags every line of a pipeline run with the same id.
func NewRunEntry() (*logrus.Entry, string) {
	runID := uuid.New().String()
	return logrus.WithField("run_id", runID), runID
}
