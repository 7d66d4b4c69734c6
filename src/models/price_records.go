package models

import (
	"fmt"
	"sort"
	"time"
)

type PriceRecords []*PriceRecord

// SortByDate returns a copy of the records ordered by ascending date.
func (records PriceRecords) SortByDate() PriceRecords {
	sorted := make(PriceRecords, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return sorted
}

// Validate checks that dates are unique and strictly ascending.
func (records PriceRecords) Validate() error {
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1].Date, records[i].Date
		if cur.Equal(prev) {
			return fmt.Errorf("PriceRecords.Validate: %s: %w", cur.Format(DateLayout), DuplicateDateErr)
		}

		if cur.Before(prev) {
			return fmt.Errorf("PriceRecords.Validate: %s follows %s: %w", cur.Format(DateLayout), prev.Format(DateLayout), RecordsNotSortedErr)
		}
	}

	return nil
}

func (records PriceRecords) Closes() []float64 {
	closes := make([]float64, len(records))
	for i, r := range records {
		closes[i] = r.Close
	}

	return closes
}

// DateRange returns the first and last dates. Both are zero for an empty slice.
func (records PriceRecords) DateRange() (time.Time, time.Time) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}
	}

	return records[0].Date, records[len(records)-1].Date
}

// Matrix returns the requested feature columns as rows of x and the close prices as y.
func (records PriceRecords) Matrix(columns []FeatureColumn) ([][]float64, []float64, error) {
	x := make([][]float64, 0, len(records))
	y := make([]float64, 0, len(records))

	for _, r := range records {
		row, err := r.Features.Vector(columns)
		if err != nil {
			return nil, nil, fmt.Errorf("PriceRecords.Matrix: %s: %w", r.Date.Format(DateLayout), err)
		}

		x = append(x, row)
		y = append(y, r.Close)
	}

	return x, y, nil
}
