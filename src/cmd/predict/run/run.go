package run

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/index-predictor/src/dataset"
	"github.com/jiaming2012/index-predictor/src/eventpubsub"
	"github.com/jiaming2012/index-predictor/src/features"
	"github.com/jiaming2012/index-predictor/src/models"
	"github.com/jiaming2012/index-predictor/src/regression"
	"github.com/jiaming2012/index-predictor/src/utils"
)

type RunArgs struct {
	Config *models.PipelineConfigYAML
	Out    io.Writer
	Logger *log.Entry
	Bus    *eventpubsub.StageBus
}

type RunResults struct {
	Report      models.EvaluationReport
	Model       *regression.LinearRegression
	Columns     []models.FeatureColumn
	Predictions []models.Prediction
	OutFile     string
}

func Run(args RunArgs) (RunResults, error) {
	records, err := utils.LoadPriceRecordsCsv(args.Config.Input.Path, utils.CsvLoadOptions{
		DateLayout: args.Config.Input.DateLayout,
		Delimiter:  args.Config.Input.Delimiter,
	})
	if err != nil {
		return RunResults{}, fmt.Errorf("Run: %w", err)
	}

	args.Bus.Publish(models.StageEvent{Stage: models.LoadedStage, Records: len(records)})

	return Exec(records, args)
}

func partitionMetrics(partition models.ScorePartition, records models.PriceRecords, actual, predicted []float64) (models.PartitionMetrics, error) {
	mae, err := regression.MeanAbsoluteError(actual, predicted)
	if err != nil {
		return models.PartitionMetrics{}, fmt.Errorf("%s MAE: %w", partition, err)
	}

	r2, err := regression.R2Score(actual, predicted)
	if err != nil {
		return models.PartitionMetrics{}, fmt.Errorf("%s R^2: %w", partition, err)
	}

	first, last := records.DateRange()

	return models.PartitionMetrics{
		Partition: partition,
		Rows:      len(records),
		FirstDate: first,
		LastDate:  last,
		MAE:       mae,
		R2:        r2,
	}, nil
}

// Exec runs the pipeline on already loaded records, which must be sorted by date. The derived
// features are written onto the records.
func Exec(records models.PriceRecords, args RunArgs) (RunResults, error) {
	cfg := args.Config
	logger := args.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	columns, err := cfg.GetFeatureColumns()
	if err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	splitDate, err := cfg.GetSplitDate()
	if err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	minHistoryDate, err := cfg.GetMinHistoryDate()
	if err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	if err := features.Derive(records, features.DeriverArgs{
		ShortWindow:   cfg.Features.ShortWindow,
		LongWindow:    cfg.Features.LongWindow,
		LongStdWindow: cfg.GetLongStdWindow(),
		Weighting:     cfg.Features.Weighting,
	}); err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	args.Bus.Publish(models.StageEvent{Stage: models.DerivedStage, Records: len(records)})

	maxWindow := cfg.GetMaxWindow()
	threshold, ok := dataset.MinHistoryThreshold(records, maxWindow)
	if !ok {
		return RunResults{}, fmt.Errorf("Exec: %w", models.EmptyInputErr)
	}

	if minHistoryDate != nil {
		threshold = *minHistoryDate
	}

	samples := dataset.FilterSamples(records, threshold)
	args.Bus.Publish(models.StageEvent{Stage: models.FilteredStage, Records: len(samples)})

	training, evaluation := dataset.SplitByDate(samples, splitDate)
	args.Bus.Publish(models.StageEvent{Stage: models.SplitStage, Records: len(training)})

	xTrain, yTrain, err := training.Matrix(columns)
	if err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	model := regression.NewLinearRegression()
	if err := model.Fit(xTrain, yTrain); err != nil {
		return RunResults{}, fmt.Errorf("Exec: %d records loaded, %d usable after filtering (longest window %d), %d before %s: %w",
			len(records), len(samples), maxWindow, len(training), splitDate.Format(models.DateLayout), err)
	}

	logger.WithFields(log.Fields{
		"columns":      columns,
		"coefficients": model.Coefficients,
		"intercept":    model.Intercept,
		"rank":         model.Rank,
	}).Info("Fitted linear regression")

	args.Bus.Publish(models.StageEvent{Stage: models.FittedStage, Records: len(training)})

	if len(evaluation) == 0 {
		return RunResults{}, fmt.Errorf("Exec: no samples on or after %s: %w", splitDate.Format(models.DateLayout), models.EmptyEvaluationErr)
	}

	xEval, yEval, err := evaluation.Matrix(columns)
	if err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	trainPredicted, err := model.Predict(xTrain)
	if err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	evalPredicted, err := model.Predict(xEval)
	if err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	trainMetrics, err := partitionMetrics(models.TrainingPartition, training, yTrain, trainPredicted)
	if err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	evalMetrics, err := partitionMetrics(models.EvaluationPartition, evaluation, yEval, evalPredicted)
	if err != nil {
		return RunResults{}, fmt.Errorf("Exec: %w", err)
	}

	report := models.EvaluationReport{
		Training:    trainMetrics,
		Evaluation:  evalMetrics,
		R2Partition: cfg.Report.R2Partition,
	}

	predictions := make([]models.Prediction, len(evaluation))
	for i, r := range evaluation {
		predictions[i] = models.Prediction{
			Date:      r.Date,
			Actual:    r.Close,
			Predicted: evalPredicted[i],
		}
	}

	results := RunResults{
		Report:      report,
		Model:       model,
		Columns:     columns,
		Predictions: predictions,
	}

	args.Bus.Publish(models.StageEvent{Stage: models.EvaluatedStage, Records: len(evaluation)})

	if args.Out != nil {
		if _, err := io.WriteString(args.Out, report.Summary()); err != nil {
			return RunResults{}, fmt.Errorf("Exec: failed to write summary: %w", err)
		}

		if cfg.Report.Table {
			if _, err := io.WriteString(args.Out, report.String()); err != nil {
				return RunResults{}, fmt.Errorf("Exec: failed to write report table: %w", err)
			}
		}
	}

	if cfg.Report.OutDir != "" {
		outFile, err := utils.ExportPredictionsToCsv(cfg.Report.OutDir, predictions, "predictions")
		if err != nil {
			return RunResults{}, fmt.Errorf("Exec: %w", err)
		}

		results.OutFile = outFile
	}

	logger.WithFields(log.Fields{
		"mae":          report.MeanAbsoluteError(),
		"r2":           report.CoefficientOfDetermination(),
		"r2_partition": report.R2Partition,
	}).Info("Evaluated model")

	return results, nil
}
