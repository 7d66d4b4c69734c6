package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/index-predictor/src/models"
)

const header = "Date,Open,High,Low,Close,Volume,Adj Close\n"

func TestReadPriceRecordsCsv(t *testing.T) {
	t.Run("sorts by date", func(t *testing.T) {
		data := header +
			"2015-12-07,2090.419922,2090.419922,2066.780029,2077.070068,4043820000.0,2077.070068\n" +
			"2015-12-04,2051.23999,2093.840088,2051.23999,2091.689941,4214910000.0,2091.689941\n" +
			"2015-12-03,2080.709961,2085.0,2042.349976,2049.620117,4306490000.0,2049.620117\n"

		records, err := ReadPriceRecordsCsv(strings.NewReader(data), CsvLoadOptions{})
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, time.Date(2015, time.December, 3, 0, 0, 0, 0, time.UTC), records[0].Date)
		assert.Equal(t, time.Date(2015, time.December, 7, 0, 0, 0, 0, time.UTC), records[2].Date)
		assert.Equal(t, 2091.689941, records[1].Close)
		assert.Equal(t, 4214910000.0, records[1].Volume)
		assert.Equal(t, 2049.620117, records[0].AdjClose)
		assert.NoError(t, records.Validate())
	})

	t.Run("custom delimiter and layout", func(t *testing.T) {
		data := "Date;Open;High;Low;Close;Volume;Adj Close\n" +
			"01/02/2006;1;2;0.5;1.5;100;1.5\n"

		records, err := ReadPriceRecordsCsv(strings.NewReader(data), CsvLoadOptions{
			DateLayout: "01/02/2006",
			Delimiter:  ";",
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC), records[0].Date)
		assert.Equal(t, 1.5, records[0].Close)
	})

	t.Run("malformed date names the row", func(t *testing.T) {
		data := header +
			"2015-12-03,1,1,1,1,1,1\n" +
			"2015-13-40,1,1,1,1,1,1\n"

		_, err := ReadPriceRecordsCsv(strings.NewReader(data), CsvLoadOptions{})
		require.Error(t, err)

		var parseErr *models.ParseErr
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 2, parseErr.Row)
		assert.Equal(t, "Date", parseErr.Field)
		assert.Contains(t, err.Error(), "row 2")
	})

	t.Run("malformed number names the row and field", func(t *testing.T) {
		data := header +
			"2015-12-03,1,1,1,1,1,1\n" +
			"2015-12-04,1,1,1,1,1,1\n" +
			"2015-12-07,1,1,1,abc,1,1\n"

		_, err := ReadPriceRecordsCsv(strings.NewReader(data), CsvLoadOptions{})

		var parseErr *models.ParseErr
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 3, parseErr.Row)
		assert.Equal(t, "Close", parseErr.Field)
	})

	t.Run("non finite values are rejected", func(t *testing.T) {
		data := header + "2015-12-03,1,1,1,NaN,1,1\n"

		_, err := ReadPriceRecordsCsv(strings.NewReader(data), CsvLoadOptions{})

		var parseErr *models.ParseErr
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "Close", parseErr.Field)
	})

	t.Run("duplicate dates", func(t *testing.T) {
		data := header +
			"2015-12-03,1,1,1,1,1,1\n" +
			"2015-12-03,2,2,2,2,2,2\n"

		_, err := ReadPriceRecordsCsv(strings.NewReader(data), CsvLoadOptions{})
		assert.ErrorIs(t, err, models.DuplicateDateErr)
		assert.Contains(t, err.Error(), "rows 1 and 2")
	})

	t.Run("header only", func(t *testing.T) {
		_, err := ReadPriceRecordsCsv(strings.NewReader(header), CsvLoadOptions{})
		assert.ErrorIs(t, err, models.EmptyInputErr)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := ReadPriceRecordsCsv(strings.NewReader(""), CsvLoadOptions{})
		assert.ErrorIs(t, err, models.EmptyInputErr)
	})

	t.Run("multi character delimiter", func(t *testing.T) {
		_, err := ReadPriceRecordsCsv(strings.NewReader(header), CsvLoadOptions{Delimiter: ";;"})
		assert.Error(t, err)
	})
}

func TestLoadPriceRecordsCsv(t *testing.T) {
	_, err := LoadPriceRecordsCsv(filepath.Join(t.TempDir(), "missing.csv"), CsvLoadOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExportPredictionsToCsv(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "results")
	predictions := []models.Prediction{
		{Date: time.Date(2013, time.January, 2, 0, 0, 0, 0, time.UTC), Actual: 1462.42, Predicted: 1450.0},
		{Date: time.Date(2013, time.January, 3, 0, 0, 0, 0, time.UTC), Actual: 1459.37, Predicted: 1461.0},
	}

	outFile, err := ExportPredictionsToCsv(outDir, predictions, "predictions")
	require.NoError(t, err)

	f, err := os.Open(outFile)
	require.NoError(t, err)
	defer f.Close()

	var rows []*models.PredictionDTO
	require.NoError(t, gocsv.UnmarshalFile(f, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "2013-01-02", rows[0].Date)
	assert.InDelta(t, 12.42, rows[0].Residual, 1e-9)
	assert.InDelta(t, -1.63, rows[1].Residual, 1e-9)
}
