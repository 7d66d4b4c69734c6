package models

import "fmt"

var EmptyInputErr = fmt.Errorf("no price records found in input")
var DuplicateDateErr = fmt.Errorf("duplicate record date")
var RecordsNotSortedErr = fmt.Errorf("price records are not sorted by date")
var InsufficientHistoryErr = fmt.Errorf("insufficient price history to fit the model")
var EmptyEvaluationErr = fmt.Errorf("evaluation partition is empty")
var ModelNotFittedErr = fmt.Errorf("model has not been fitted")
var FeatureWidthErr = fmt.Errorf("feature vector width does not match the model")
var UnknownFeatureColumnErr = fmt.Errorf("unknown feature column")

type ParseErr struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("row %d: invalid %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}
