package models

import "fmt"

type FeatureColumn string

const (
	ShortMeanColumn FeatureColumn = "short_mean"
	LongMeanColumn  FeatureColumn = "long_mean"
	MeanRatioColumn FeatureColumn = "mean_ratio"
	ShortStdColumn  FeatureColumn = "short_std"
	LongStdColumn   FeatureColumn = "long_std"
	StdRatioColumn  FeatureColumn = "std_ratio"
)

// AllFeatureColumns is the default model input order.
var AllFeatureColumns = []FeatureColumn{
	ShortMeanColumn,
	LongMeanColumn,
	MeanRatioColumn,
	ShortStdColumn,
	LongStdColumn,
	StdRatioColumn,
}

func ParseFeatureColumns(names []string) ([]FeatureColumn, error) {
	if len(names) == 0 {
		return AllFeatureColumns, nil
	}

	seen := make(map[FeatureColumn]bool)
	columns := make([]FeatureColumn, 0, len(names))
	for _, name := range names {
		col := FeatureColumn(name)
		if !col.IsValid() {
			return nil, fmt.Errorf("ParseFeatureColumns: %q: %w", name, UnknownFeatureColumnErr)
		}

		if seen[col] {
			return nil, fmt.Errorf("ParseFeatureColumns: column %q listed twice", name)
		}

		seen[col] = true
		columns = append(columns, col)
	}

	return columns, nil
}

func (c FeatureColumn) IsValid() bool {
	for _, col := range AllFeatureColumns {
		if c == col {
			return true
		}
	}

	return false
}
