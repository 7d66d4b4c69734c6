package models

import (
	"fmt"
	"time"
)

// PriceRecord is one trading day of index prices together with the indicators derived for it.
type PriceRecord struct {
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   float64
	AdjClose float64
	Features FeatureSet
}

func (r PriceRecord) String() string {
	return fmt.Sprintf("PriceRecord{Date=%s, Open=%f, High=%f, Low=%f, Close=%f, Volume=%.0f, AdjClose=%f}", r.Date.Format(DateLayout), r.Open, r.High, r.Low, r.Close, r.Volume, r.AdjClose)
}
