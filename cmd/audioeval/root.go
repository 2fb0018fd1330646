package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/voicelab/audioeval/clients"
	"github.com/voicelab/audioeval/config"
	"github.com/voicelab/audioeval/job"
	"github.com/voicelab/audioeval/orchestrator"
)

func newRootCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:           "audioeval",
		Short:         "Upload audio to the behavioral analysis service and evaluate the results",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to the API config file")
	cmd.AddCommand(newProcessCmd(&cfgPath))
	cmd.AddCommand(newEvaluateCmd(&cfgPath))
	return cmd
}

// setup loads configuration and wires the API client, runner and batch
// orchestrator shared by all subcommands.
func setup(cfgPath string) (*orchestrator.Batch, *logrus.Logger, error) {
	conf, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, nil, err
	}

	log := newLogger(conf.LogLevel)
	api := clients.New(conf.BaseURL, conf.ProjectID, conf.APIToken)
	runner := job.NewRunner(api, log, job.NewConsoleObserver(), conf.PollInterval, conf.JobTimeout)
	return orchestrator.NewBatch(runner, log), log, nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
