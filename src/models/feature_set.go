package models

import (
	"fmt"
	"math"
)

// FeatureSet holds the lagged rolling indicators attached to a record. NaN marks a missing value.
type FeatureSet struct {
	ShortMean float64
	LongMean  float64
	MeanRatio float64
	ShortStd  float64
	LongStd   float64
	StdRatio  float64
}

func NewMissingFeatureSet() FeatureSet {
	nan := math.NaN()
	return FeatureSet{
		ShortMean: nan,
		LongMean:  nan,
		MeanRatio: nan,
		ShortStd:  nan,
		LongStd:   nan,
		StdRatio:  nan,
	}
}

func (f FeatureSet) Get(column FeatureColumn) (float64, error) {
	switch column {
	case ShortMeanColumn:
		return f.ShortMean, nil
	case LongMeanColumn:
		return f.LongMean, nil
	case MeanRatioColumn:
		return f.MeanRatio, nil
	case ShortStdColumn:
		return f.ShortStd, nil
	case LongStdColumn:
		return f.LongStd, nil
	case StdRatioColumn:
		return f.StdRatio, nil
	default:
		return 0, fmt.Errorf("FeatureSet.Get: %q: %w", column, UnknownFeatureColumnErr)
	}
}

func (f FeatureSet) Vector(columns []FeatureColumn) ([]float64, error) {
	out := make([]float64, len(columns))
	for i, col := range columns {
		v, err := f.Get(col)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// HasMissing reports whether any derived field is missing.
func (f FeatureSet) HasMissing() bool {
	for _, v := range []float64{f.ShortMean, f.LongMean, f.MeanRatio, f.ShortStd, f.LongStd, f.StdRatio} {
		if IsMissing(v) {
			return true
		}
	}

	return false
}

func IsMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
