package features

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/index-predictor/src/indicators"
	"github.com/jiaming2012/index-predictor/src/models"
)

type DeriverArgs struct {
	ShortWindow   int
	LongWindow    int
	LongStdWindow int
	Weighting     models.WindowWeighting
}

func (a DeriverArgs) Validate() error {
	for name, w := range map[string]int{"short": a.ShortWindow, "long": a.LongWindow, "long std": a.LongStdWindow} {
		if w < 2 {
			return fmt.Errorf("DeriverArgs.Validate: %s window must be at least 2, got %d", name, w)
		}
	}

	return nil
}

// Ratio divides two indicators. A missing operand or a zero denominator yields a missing value.
func Ratio(numerator, denominator float64) float64 {
	if models.IsMissing(numerator) || models.IsMissing(denominator) || denominator == 0 {
		return math.NaN()
	}

	return numerator / denominator
}

func lagged(window *indicators.RollingWindow) (indicators.RollingStats, error) {
	ok, s, err := window.Stats()
	if err != nil {
		return indicators.RollingStats{}, err
	}

	if !ok {
		return indicators.RollingStats{Mean: math.NaN(), StandardDeviation: math.NaN()}, nil
	}

	return s, nil
}

// Derive attaches the rolling indicators to each record in place. Records must be sorted by date.
// Every statistic for record i is computed from records [i-W, i-1] only.
func Derive(records models.PriceRecords, args DeriverArgs) error {
	if err := args.Validate(); err != nil {
		return err
	}

	if err := records.Validate(); err != nil {
		return fmt.Errorf("features.Derive: %w", err)
	}

	short := indicators.NewRollingWindow(args.ShortWindow, args.Weighting)
	long := indicators.NewRollingWindow(args.LongWindow, args.Weighting)
	longStd := indicators.NewRollingWindow(args.LongStdWindow, args.Weighting)

	populated := 0
	for _, r := range records {
		shortStats, err := lagged(short)
		if err != nil {
			return fmt.Errorf("features.Derive: short window at %s: %w", r.Date.Format(models.DateLayout), err)
		}

		longStats, err := lagged(long)
		if err != nil {
			return fmt.Errorf("features.Derive: long window at %s: %w", r.Date.Format(models.DateLayout), err)
		}

		longStdStats, err := lagged(longStd)
		if err != nil {
			return fmt.Errorf("features.Derive: long std window at %s: %w", r.Date.Format(models.DateLayout), err)
		}

		r.Features = models.FeatureSet{
			ShortMean: shortStats.Mean,
			LongMean:  longStats.Mean,
			MeanRatio: Ratio(shortStats.Mean, longStats.Mean),
			ShortStd:  shortStats.StandardDeviation,
			LongStd:   longStdStats.StandardDeviation,
			StdRatio:  Ratio(shortStats.StandardDeviation, longStdStats.StandardDeviation),
		}

		if !r.Features.HasMissing() {
			populated++
		}

		// today's close only becomes visible to the next record
		short.Push(r.Close)
		long.Push(r.Close)
		longStd.Push(r.Close)
	}

	log.WithFields(log.Fields{
		"records":      len(records),
		"populated":    populated,
		"short_window": args.ShortWindow,
		"long_window":  args.LongWindow,
		"std_window":   args.LongStdWindow,
		"weighting":    args.Weighting,
	}).Info("Derived rolling features")

	return nil
}
