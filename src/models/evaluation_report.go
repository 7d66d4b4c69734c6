package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PartitionMetrics struct {
	Partition ScorePartition
	Rows      int
	FirstDate time.Time
	LastDate  time.Time
	MAE       float64
	R2        float64
}

type EvaluationReport struct {
	Training    PartitionMetrics
	Evaluation  PartitionMetrics
	R2Partition ScorePartition
}

// MeanAbsoluteError is always reported on the evaluation partition.
func (r EvaluationReport) MeanAbsoluteError() float64 {
	return r.Evaluation.MAE
}

func (r EvaluationReport) CoefficientOfDetermination() float64 {
	if r.R2Partition == TrainingPartition {
		return r.Training.R2
	}

	return r.Evaluation.R2
}

func (r EvaluationReport) Summary() string {
	return fmt.Sprintf("Mean Absolute Error: %v\nCoefficient of determination (r^2): %v\n", r.MeanAbsoluteError(), r.CoefficientOfDetermination())
}

func (r EvaluationReport) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Partition", "Rows", "From", "To", "MAE", "R^2"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	display.WriteString("Evaluation Report:\n")

	for _, m := range []PartitionMetrics{r.Training, r.Evaluation} {
		table.Append([]string{
			string(m.Partition),
			p.Sprintf("%d", m.Rows),
			m.FirstDate.Format(DateLayout),
			m.LastDate.Format(DateLayout),
			p.Sprintf("%.4f", m.MAE),
			p.Sprintf("%.6f", m.R2),
		})
	}

	table.Render()
	return display.String()
}
