package models

import (
	"fmt"
	"time"
)

type WindowWeighting string

const (
	UniformWeighting    WindowWeighting = "uniform"
	TriangularWeighting WindowWeighting = "triangular"
)

type ScorePartition string

const (
	EvaluationPartition ScorePartition = "evaluation"
	TrainingPartition   ScorePartition = "training"
)

type InputConfigYAML struct {
	Path       string `yaml:"path" default:"sphist.csv" validate:"required"`
	DateLayout string `yaml:"date_layout" default:"2006-01-02" validate:"required"`
	Delimiter  string `yaml:"delimiter" default:"," validate:"len=1"`
}

type FeaturesConfigYAML struct {
	ShortWindow int `yaml:"short_window" default:"5" validate:"min=2"`
	LongWindow  int `yaml:"long_window" default:"365" validate:"min=2,gtefield=ShortWindow"`
	// LongStdWindow defaults to LongWindow. Set it to 5 to reproduce the historical notebook results.
	LongStdWindow int             `yaml:"long_std_window" validate:"omitempty,min=2"`
	Weighting     WindowWeighting `yaml:"weighting" default:"uniform" validate:"oneof=uniform triangular"`
	Columns       []string        `yaml:"columns" validate:"omitempty,dive,oneof=short_mean long_mean mean_ratio short_std long_std std_ratio"`
}

type DatasetConfigYAML struct {
	MinHistoryDate string `yaml:"min_history_date" validate:"omitempty,datetime=2006-01-02"`
	SplitDate      string `yaml:"split_date" default:"2013-01-01" validate:"required,datetime=2006-01-02"`
}

type ReportConfigYAML struct {
	R2Partition ScorePartition `yaml:"r2_partition" default:"evaluation" validate:"oneof=evaluation training"`
	Table       bool           `yaml:"table"`
	OutDir      string         `yaml:"out_dir"`
}

type PipelineConfigYAML struct {
	LogLevel string             `yaml:"log_level" default:"info" validate:"oneof=trace debug info warn warning error"`
	Input    InputConfigYAML    `yaml:"input"`
	Features FeaturesConfigYAML `yaml:"features"`
	Dataset  DatasetConfigYAML  `yaml:"dataset"`
	Report   ReportConfigYAML   `yaml:"report"`
}

func (c *PipelineConfigYAML) GetLongStdWindow() int {
	if c.Features.LongStdWindow > 0 {
		return c.Features.LongStdWindow
	}

	return c.Features.LongWindow
}

// GetMaxWindow returns the largest configured window, which bounds the history a record needs.
func (c *PipelineConfigYAML) GetMaxWindow() int {
	max := c.Features.ShortWindow
	for _, w := range []int{c.Features.LongWindow, c.GetLongStdWindow()} {
		if w > max {
			max = w
		}
	}

	return max
}

func (c *PipelineConfigYAML) GetSplitDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, c.Dataset.SplitDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("PipelineConfigYAML: invalid split_date: %w", err)
	}

	return t, nil
}

// GetMinHistoryDate returns the configured threshold, or nil when it should be derived from the data.
func (c *PipelineConfigYAML) GetMinHistoryDate() (*time.Time, error) {
	if c.Dataset.MinHistoryDate == "" {
		return nil, nil
	}

	t, err := time.Parse(DateLayout, c.Dataset.MinHistoryDate)
	if err != nil {
		return nil, fmt.Errorf("PipelineConfigYAML: invalid min_history_date: %w", err)
	}

	return &t, nil
}

func (c *PipelineConfigYAML) GetFeatureColumns() ([]FeatureColumn, error) {
	return ParseFeatureColumns(c.Features.Columns)
}
