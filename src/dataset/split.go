package dataset

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/index-predictor/src/models"
)

// SplitByDate sends records dated strictly before cutoff to training and the rest to evaluation.
func SplitByDate(records models.PriceRecords, cutoff time.Time) (models.PriceRecords, models.PriceRecords) {
	var training, evaluation models.PriceRecords
	for _, r := range records {
		if r.Date.Before(cutoff) {
			training = append(training, r)
		} else {
			evaluation = append(evaluation, r)
		}
	}

	log.WithFields(log.Fields{
		"cutoff":     cutoff.Format(models.DateLayout),
		"training":   len(training),
		"evaluation": len(evaluation),
	}).Info("Split samples")

	return training, evaluation
}
