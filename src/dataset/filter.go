package dataset

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/index-predictor/src/models"
)

// MinHistoryThreshold returns the date of the last record that cannot have a full window of maxWindow
// prior records. ok is false when there are no records at all.
func MinHistoryThreshold(records models.PriceRecords, maxWindow int) (time.Time, bool) {
	if len(records) == 0 {
		return time.Time{}, false
	}

	idx := maxWindow - 1
	if idx < 0 {
		idx = 0
	}

	if idx >= len(records) {
		idx = len(records) - 1
	}

	return records[idx].Date, true
}

// FilterSamples drops records dated on or before threshold, then any record with a missing derived
// field. Order is preserved and the input is left untouched.
func FilterSamples(records models.PriceRecords, threshold time.Time) models.PriceRecords {
	out := make(models.PriceRecords, 0, len(records))
	var droppedHistory, droppedMissing int

	for _, r := range records {
		if !r.Date.After(threshold) {
			droppedHistory++
			continue
		}

		if r.Features.HasMissing() {
			droppedMissing++
			continue
		}

		out = append(out, r)
	}

	log.WithFields(log.Fields{
		"threshold":       threshold.Format(models.DateLayout),
		"kept":            len(out),
		"dropped_history": droppedHistory,
		"dropped_missing": droppedMissing,
	}).Info("Filtered samples")

	return out
}
