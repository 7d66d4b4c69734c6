package regression

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/jiaming2012/index-predictor/src/models"
)

// LinearRegression is an ordinary least squares model with an intercept.
type LinearRegression struct {
	Coefficients []float64
	Intercept    float64
	Rank         int
	fitted       bool
}

func columnMeans(x [][]float64, width int) []float64 {
	means := make([]float64, width)
	for _, row := range x {
		for j, v := range row {
			means[j] += v
		}
	}

	for j := range means {
		means[j] /= float64(len(x))
	}

	return means
}

func checkWidth(x [][]float64, width int) error {
	for i, row := range x {
		if len(row) != width {
			return fmt.Errorf("row %d has %d features, expected %d: %w", i, len(row), width, models.FeatureWidthErr)
		}
	}

	return nil
}

// Fit solves the least squares problem on centered data with a thin SVD. Singular values below
// eps*max(n,p)*σmax are discarded, which yields the minimum-norm solution on rank deficient designs.
func (lr *LinearRegression) Fit(x [][]float64, y []float64) error {
	n := len(x)
	if n == 0 {
		return fmt.Errorf("LinearRegression.Fit: no training samples: %w", models.InsufficientHistoryErr)
	}

	if len(y) != n {
		return fmt.Errorf("LinearRegression.Fit: %d feature rows but %d targets", n, len(y))
	}

	p := len(x[0])
	if p == 0 {
		return fmt.Errorf("LinearRegression.Fit: no feature columns: %w", models.FeatureWidthErr)
	}

	if err := checkWidth(x, p); err != nil {
		return fmt.Errorf("LinearRegression.Fit: %w", err)
	}

	xMeans := columnMeans(x, p)
	yMean := 0.0
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	xc := mat.NewDense(n, p, nil)
	yc := mat.NewVecDense(n, nil)
	for i, row := range x {
		for j, v := range row {
			xc.Set(i, j, v-xMeans[j])
		}
		yc.SetVec(i, y[i]-yMean)
	}

	var svd mat.SVD
	if ok := svd.Factorize(xc, mat.SVDThin); !ok {
		return fmt.Errorf("LinearRegression.Fit: singular value decomposition failed")
	}

	rcond := (math.Nextafter(1, 2) - 1) * float64(max(n, p))
	rank := svd.Rank(rcond)

	coefficients := make([]float64, p)
	if rank > 0 {
		var beta mat.VecDense
		svd.SolveVecTo(&beta, yc, rank)
		for j := range coefficients {
			coefficients[j] = beta.AtVec(j)
		}
	}

	if rank < p {
		log.WithFields(log.Fields{
			"rank":     rank,
			"features": p,
			"samples":  n,
		}).Warn("Design matrix is rank deficient, using minimum norm solution")
	}

	intercept := yMean
	for j, c := range coefficients {
		intercept -= c * xMeans[j]
	}

	lr.Coefficients = coefficients
	lr.Intercept = intercept
	lr.Rank = rank
	lr.fitted = true

	return nil
}

func (lr *LinearRegression) PredictOne(features []float64) (float64, error) {
	if !lr.fitted {
		return 0, models.ModelNotFittedErr
	}

	if len(features) != len(lr.Coefficients) {
		return 0, fmt.Errorf("LinearRegression.PredictOne: got %d features, expected %d: %w", len(features), len(lr.Coefficients), models.FeatureWidthErr)
	}

	out := lr.Intercept
	for j, v := range features {
		out += lr.Coefficients[j] * v
	}

	return out, nil
}

func (lr *LinearRegression) Predict(x [][]float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i, row := range x {
		v, err := lr.PredictOne(row)
		if err != nil {
			return nil, fmt.Errorf("LinearRegression.Predict: row %d: %w", i, err)
		}

		out[i] = v
	}

	return out, nil
}

// Score returns the coefficient of determination of the predictions for x against y.
func (lr *LinearRegression) Score(x [][]float64, y []float64) (float64, error) {
	predicted, err := lr.Predict(x)
	if err != nil {
		return 0, err
	}

	return R2Score(y, predicted)
}

func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}
