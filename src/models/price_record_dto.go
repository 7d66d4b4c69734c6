package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type CsvPriceRecordDTO struct {
	Date     string `csv:"Date"`
	Open     string `csv:"Open"`
	High     string `csv:"High"`
	Low      string `csv:"Low"`
	Close    string `csv:"Close"`
	Volume   string `csv:"Volume"`
	AdjClose string `csv:"Adj Close"`
}

func parseDate(value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err == nil {
		return t, nil
	}

	if rfc, rfcErr := time.Parse(time.RFC3339, value); rfcErr == nil {
		return rfc, nil
	}

	return time.Time{}, err
}

// ToModel parses the raw csv fields. row is the 1-based data row used in error messages.
func (dto *CsvPriceRecordDTO) ToModel(row int, dateLayout string) (*PriceRecord, error) {
	if dateLayout == "" {
		dateLayout = DateLayout
	}

	dateStr := strings.TrimSpace(dto.Date)
	date, err := parseDate(dateStr, dateLayout)
	if err != nil {
		return nil, &ParseErr{Row: row, Field: "Date", Value: dto.Date, Err: err}
	}

	fields := []struct {
		name  string
		value string
		dst   *float64
	}{
		{"Open", dto.Open, new(float64)},
		{"High", dto.High, new(float64)},
		{"Low", dto.Low, new(float64)},
		{"Close", dto.Close, new(float64)},
		{"Volume", dto.Volume, new(float64)},
		{"Adj Close", dto.AdjClose, new(float64)},
	}

	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.value), 64)
		if err != nil {
			return nil, &ParseErr{Row: row, Field: f.name, Value: f.value, Err: err}
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseErr{Row: row, Field: f.name, Value: f.value, Err: fmt.Errorf("value is not finite")}
		}

		*f.dst = v
	}

	return &PriceRecord{
		Date:     date,
		Open:     *fields[0].dst,
		High:     *fields[1].dst,
		Low:      *fields[2].dst,
		Close:    *fields[3].dst,
		Volume:   *fields[4].dst,
		AdjClose: *fields[5].dst,
	}, nil
}
