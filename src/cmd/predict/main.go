package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/index-predictor/src/cmd/predict/run"
	"github.com/jiaming2012/index-predictor/src/eventpubsub"
	"github.com/jiaming2012/index-predictor/src/logger"
	"github.com/jiaming2012/index-predictor/src/models"
	"github.com/jiaming2012/index-predictor/src/utils"
)

var rootCmd = &cobra.Command{
	Use:   "predict",
	Short: "Fits a linear regression on rolling index indicators and reports the prediction error",
	Long: `This program predicts the daily closing price of an index from its own price history:
1.) Daily prices are loaded from a csv file with columns Date, Open, High, Low, Close, Volume, Adj Close
2.) Rolling means and standard deviations over a short and a long window are derived from prior days only
3.) Rows without enough history are dropped and the rest is split by date into training and evaluation sets
4.) An ordinary least squares model is fitted on the training set and scored on the evaluation set
	`,
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if err := utils.InitEnvironmentVariables(".", goEnv); err != nil {
			log.Fatalf("error initializing environment variables: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config flag: %v", err)
		}

		if configPath == "" {
			configPath = os.Getenv(utils.CONFIG_ENV_KEY)
		}

		cfg, err := utils.LoadPipelineConfig(configPath)
		if err != nil {
			log.Fatalf("error loading config: %v", err)
		}

		flags := cmd.Flags()
		if flags.Changed("input") {
			cfg.Input.Path, _ = flags.GetString("input")
		}

		if flags.Changed("split-date") {
			cfg.Dataset.SplitDate, _ = flags.GetString("split-date")
		}

		if flags.Changed("min-history-date") {
			cfg.Dataset.MinHistoryDate, _ = flags.GetString("min-history-date")
		}

		if flags.Changed("log-level") {
			cfg.LogLevel, _ = flags.GetString("log-level")
		}

		if flags.Changed("table") {
			cfg.Report.Table, _ = flags.GetBool("table")
		}

		if flags.Changed("out") {
			cfg.Report.OutDir, _ = flags.GetString("out")
		}

		if err := utils.FinalizePipelineConfig(cfg); err != nil {
			log.Fatalf("error validating config: %v", err)
		}

		if err := logger.Setup(cfg.LogLevel); err != nil {
			log.Fatalf("error setting up logger: %v", err)
		}

		entry, runID := logger.NewRunEntry()
		entry.WithField("input", cfg.Input.Path).Debugf("Starting run %s", runID)

		bus := eventpubsub.NewStageBus()
		if err := bus.Subscribe(func(ev models.StageEvent) {
			entry.WithField("records", ev.Records).Debugf("Stage %s completed", ev.Stage)
		}); err != nil {
			entry.Fatalf("error subscribing to stage events: %v", err)
		}

		if _, err := run.Run(run.RunArgs{
			Config: cfg,
			Out:    os.Stdout,
			Logger: entry,
			Bus:    bus,
		}); err != nil {
			entry.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the pipeline yaml config. Falls back to $PREDICTOR_CONFIG, then to built-in defaults.")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Csv file with daily prices, e.g. 'sphist.csv'.")
	rootCmd.PersistentFlags().String("split-date", "", "First date of the evaluation set, in the format 'YYYY-MM-DD'.")
	rootCmd.PersistentFlags().String("min-history-date", "", "Rows dated on or before this date are dropped, in the format 'YYYY-MM-DD'. Derived from the longest window when unset.")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn or error.")
	rootCmd.PersistentFlags().Bool("table", false, "Also print a per-partition metrics table.")
	rootCmd.PersistentFlags().String("out", "", "Directory to export evaluation predictions to as csv.")
	rootCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")

	cobra.CheckErr(rootCmd.Execute())
}
