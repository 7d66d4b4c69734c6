package models

type PipelineStage string

const (
	LoadedStage    PipelineStage = "loaded"
	DerivedStage   PipelineStage = "derived"
	FilteredStage  PipelineStage = "filtered"
	SplitStage     PipelineStage = "split"
	FittedStage    PipelineStage = "fitted"
	EvaluatedStage PipelineStage = "evaluated"
)

// StageEvent is published once a pipeline stage completes. Records is the number of records the stage
// produced.
type StageEvent struct {
	Stage   PipelineStage
	Records int
}
