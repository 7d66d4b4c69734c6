package models

type PredictionDTO struct {
	Date      string  `csv:"Date"`
	Actual    float64 `csv:"Close"`
	Predicted float64 `csv:"Predicted"`
	Residual  float64 `csv:"Residual"`
}
