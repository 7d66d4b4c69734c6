package models

import "time"

type Prediction struct {
	Date      time.Time
	Actual    float64
	Predicted float64
}

func (p Prediction) Residual() float64 {
	return p.Actual - p.Predicted
}

func (p Prediction) ToDTO() *PredictionDTO {
	return &PredictionDTO{
		Date:      p.Date.Format(DateLayout),
		Actual:    p.Actual,
		Predicted: p.Predicted,
		Residual:  p.Residual(),
	}
}
