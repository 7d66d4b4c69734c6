package indicators

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/index-predictor/src/models"
)

type RollingStats struct {
	Mean              float64
	StandardDeviation float64
}

// RollingWindow keeps the last Period observations pushed into it. Stats only ever sees values that
// were pushed before the call, so reading before pushing the current close yields a lagged statistic.
type RollingWindow struct {
	Period    int
	Weighting models.WindowWeighting
	values    []float64
	weights   []float64
}

func (w *RollingWindow) Push(value float64) {
	if len(w.values) < w.Period {
		w.values = append(w.values, value)
		return
	}

	w.values = append(w.values[1:], value)
}

func (w *RollingWindow) Len() int {
	return len(w.values)
}

func (w *RollingWindow) IsFull() bool {
	return w.Period > 0 && len(w.values) == w.Period
}

// Stats returns false until the window holds Period observations.
func (w *RollingWindow) Stats() (bool, RollingStats, error) {
	if !w.IsFull() {
		return false, RollingStats{}, nil
	}

	if w.Weighting == models.TriangularWeighting {
		mean, sd := weightedMeanStd(w.values, w.weights)
		return true, RollingStats{Mean: mean, StandardDeviation: sd}, nil
	}

	mean, err := stats.Mean(w.values)
	if err != nil {
		return false, RollingStats{}, fmt.Errorf("failed to calculate mean: %v", err)
	}

	sd := math.NaN()
	if len(w.values) > 1 {
		sd, err = stats.StandardDeviationSample(w.values)
		if err != nil {
			return false, RollingStats{}, fmt.Errorf("failed to calculate the standard deviation: %v", err)
		}
	}

	return true, RollingStats{
		Mean:              mean,
		StandardDeviation: sd,
	}, nil
}

// weightedMeanStd uses the same unbiased weighted variance as pandas: Σw(x-μ)² · n / ((n-1) · Σw).
func weightedMeanStd(values, weights []float64) (float64, float64) {
	var sumW, sumWX float64
	for i, v := range values {
		sumW += weights[i]
		sumWX += weights[i] * v
	}

	mean := sumWX / sumW

	n := float64(len(values))
	if n < 2 {
		return mean, math.NaN()
	}

	var t float64
	for i, v := range values {
		d := v - mean
		t += weights[i] * d * d
	}

	variance := t * n / ((n - 1) * sumW)
	if variance < 0 {
		variance = 0
	}

	return mean, math.Sqrt(variance)
}

func NewRollingWindow(period int, weighting models.WindowWeighting) *RollingWindow {
	weights := UniformWeights(period)
	if weighting == models.TriangularWeighting {
		weights = TriangularWeights(period)
	}

	return &RollingWindow{
		Period:    period,
		Weighting: weighting,
		values:    make([]float64, 0, period),
		weights:   weights,
	}
}
