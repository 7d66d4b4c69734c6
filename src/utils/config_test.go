package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/index-predictor/src/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pipeline-config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestLoadPipelineConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadPipelineConfig("")
		require.NoError(t, err)

		assert.Equal(t, "sphist.csv", cfg.Input.Path)
		assert.Equal(t, ",", cfg.Input.Delimiter)
		assert.Equal(t, 5, cfg.Features.ShortWindow)
		assert.Equal(t, 365, cfg.Features.LongWindow)
		assert.Equal(t, 365, cfg.GetLongStdWindow())
		assert.Equal(t, 365, cfg.GetMaxWindow())
		assert.Equal(t, models.UniformWeighting, cfg.Features.Weighting)
		assert.Equal(t, models.EvaluationPartition, cfg.Report.R2Partition)
		assert.Equal(t, "2013-01-01", cfg.Dataset.SplitDate)

		columns, err := cfg.GetFeatureColumns()
		require.NoError(t, err)
		assert.Equal(t, models.AllFeatureColumns, columns)

		minHistory, err := cfg.GetMinHistoryDate()
		require.NoError(t, err)
		assert.Nil(t, minHistory)
	})

	t.Run("file values", func(t *testing.T) {
		p := writeConfig(t, `
input:
  path: data/spx.csv
features:
  short_window: 10
  long_window: 200
  long_std_window: 5
  weighting: triangular
  columns: [short_mean, long_mean]
dataset:
  min_history_date: "1951-01-02"
  split_date: "2010-01-01"
report:
  r2_partition: training
  table: true
`)

		cfg, err := LoadPipelineConfig(p)
		require.NoError(t, err)

		assert.Equal(t, "data/spx.csv", cfg.Input.Path)
		assert.Equal(t, 10, cfg.Features.ShortWindow)
		assert.Equal(t, 5, cfg.GetLongStdWindow())
		assert.Equal(t, 200, cfg.GetMaxWindow())
		assert.Equal(t, models.TriangularWeighting, cfg.Features.Weighting)
		assert.Equal(t, models.TrainingPartition, cfg.Report.R2Partition)
		assert.True(t, cfg.Report.Table)

		columns, err := cfg.GetFeatureColumns()
		require.NoError(t, err)
		assert.Equal(t, []models.FeatureColumn{models.ShortMeanColumn, models.LongMeanColumn}, columns)

		minHistory, err := cfg.GetMinHistoryDate()
		require.NoError(t, err)
		require.NotNil(t, minHistory)
		assert.Equal(t, "1951-01-02", minHistory.Format(models.DateLayout))
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv(INPUT_ENV_KEY, "from-env.csv")
		t.Setenv(LOG_LEVEL_ENV_KEY, "debug")

		cfg, err := LoadPipelineConfig("")
		require.NoError(t, err)
		assert.Equal(t, "from-env.csv", cfg.Input.Path)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("invalid values", func(t *testing.T) {
		for name, body := range map[string]string{
			"window too small":  "features:\n  short_window: 1\n",
			"long below short":  "features:\n  short_window: 10\n  long_window: 5\n",
			"unknown weighting": "features:\n  weighting: exponential\n",
			"unknown column":    "features:\n  columns: [volume]\n",
			"bad split date":    "dataset:\n  split_date: 2013/01/01\n",
			"bad partition":     "report:\n  r2_partition: both\n",
			"multi char delim":  "input:\n  delimiter: \";;\"\n",
			"unknown log level": "log_level: loud\n",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := LoadPipelineConfig(writeConfig(t, body))
				assert.Error(t, err)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPipelineConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestInitEnvironmentVariables(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		assert.NoError(t, InitEnvironmentVariables(t.TempDir(), "development"))
	})

	t.Run("loads the development file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DEV_ENV_FILENAME), []byte("PREDICTOR_TEST_VALUE=42\n"), 0644))
		t.Setenv("PREDICTOR_TEST_VALUE", "")
		os.Unsetenv("PREDICTOR_TEST_VALUE")

		require.NoError(t, InitEnvironmentVariables(dir, "development"))
		assert.Equal(t, "42", os.Getenv("PREDICTOR_TEST_VALUE"))
	})
}
