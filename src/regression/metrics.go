package regression

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

var EmptyInputErr = fmt.Errorf("input must not be empty")

func checkLengths(actual, predicted []float64) error {
	if len(actual) == 0 {
		return EmptyInputErr
	}

	if len(actual) != len(predicted) {
		return fmt.Errorf("got %d actual values and %d predictions", len(actual), len(predicted))
	}

	return nil
}

func MeanAbsoluteError(actual, predicted []float64) (float64, error) {
	if err := checkLengths(actual, predicted); err != nil {
		return 0, fmt.Errorf("MeanAbsoluteError: %w", err)
	}

	residuals := make([]float64, len(actual))
	for i := range actual {
		residuals[i] = math.Abs(actual[i] - predicted[i])
	}

	mae, err := stats.Mean(residuals)
	if err != nil {
		return 0, fmt.Errorf("MeanAbsoluteError: %w", err)
	}

	return mae, nil
}

// R2Score is 1 - SSres/SStot. A constant target scores 1 when predicted exactly and 0 otherwise.
func R2Score(actual, predicted []float64) (float64, error) {
	if err := checkLengths(actual, predicted); err != nil {
		return 0, fmt.Errorf("R2Score: %w", err)
	}

	mean, err := stats.Mean(actual)
	if err != nil {
		return 0, fmt.Errorf("R2Score: %w", err)
	}

	var ssRes, ssTot float64
	for i, y := range actual {
		r := y - predicted[i]
		ssRes += r * r
		d := y - mean
		ssTot += d * d
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1, nil
		}

		return 0, nil
	}

	return 1 - ssRes/ssTot, nil
}
