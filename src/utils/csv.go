package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/index-predictor/src/models"
)

type CsvLoadOptions struct {
	DateLayout string
	Delimiter  string
}

func LoadPriceRecordsCsv(inFile string, opts CsvLoadOptions) (models.PriceRecords, error) {
	f, err := os.Open(inFile)
	if err != nil {
		return nil, fmt.Errorf("LoadPriceRecordsCsv: failed to open file: %w", err)
	}

	defer f.Close()

	records, err := ReadPriceRecordsCsv(f, opts)
	if err != nil {
		return nil, fmt.Errorf("LoadPriceRecordsCsv: %s: %w", inFile, err)
	}

	return records, nil
}

// ReadPriceRecordsCsv decodes daily price rows and returns them sorted by ascending date.
func ReadPriceRecordsCsv(in io.Reader, opts CsvLoadOptions) (models.PriceRecords, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true
	if opts.Delimiter != "" {
		comma, size := utf8.DecodeRuneInString(opts.Delimiter)
		if size != len(opts.Delimiter) {
			return nil, fmt.Errorf("ReadPriceRecordsCsv: delimiter must be a single character, got %q", opts.Delimiter)
		}
		r.Comma = comma
	}

	var rows []*models.CsvPriceRecordDTO
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, models.EmptyInputErr
		}

		return nil, fmt.Errorf("ReadPriceRecordsCsv: failed to decode csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, models.EmptyInputErr
	}

	records := make(models.PriceRecords, 0, len(rows))
	seen := make(map[time.Time]int, len(rows))
	for i, dto := range rows {
		rowNum := i + 1
		rec, err := dto.ToModel(rowNum, opts.DateLayout)
		if err != nil {
			return nil, fmt.Errorf("ReadPriceRecordsCsv: %w", err)
		}

		if prev, found := seen[rec.Date]; found {
			return nil, fmt.Errorf("ReadPriceRecordsCsv: rows %d and %d share date %s: %w", prev, rowNum, rec.Date.Format(models.DateLayout), models.DuplicateDateErr)
		}

		seen[rec.Date] = rowNum
		records = append(records, rec)
	}

	sorted := records.SortByDate()
	if err := sorted.Validate(); err != nil {
		return nil, fmt.Errorf("ReadPriceRecordsCsv: %w", err)
	}

	first, last := sorted.DateRange()
	log.WithFields(log.Fields{
		"rows": len(sorted),
		"from": first.Format(models.DateLayout),
		"to":   last.Format(models.DateLayout),
	}).Info("Loaded price records")

	return sorted, nil
}

func ExportPredictionsToCsv(outDir string, predictions []models.Prediction, outFilePrefix string) (string, error) {
	now := time.Now()
	outFilePath := path.Join(outDir, fmt.Sprintf("%s_%s.csv", outFilePrefix, now.Format("2006-01-02_15-04-05")))

	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return "", fmt.Errorf("ExportPredictionsToCsv: failed to create directory: %w", err)
		}
	}

	file, err := os.Create(outFilePath)
	if err != nil {
		return "", fmt.Errorf("ExportPredictionsToCsv: failed to create file: %w", err)
	}
	defer file.Close()

	rows := make([]*models.PredictionDTO, 0, len(predictions))
	for _, p := range predictions {
		rows = append(rows, p.ToDTO())
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("ExportPredictionsToCsv: failed to write to file: %w", err)
	}

	log.Infof("Exported %d predictions to %s", len(rows), outFilePath)

	return outFilePath, nil
}
