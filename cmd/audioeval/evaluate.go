package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/voicelab/audioeval/metrics"
	"github.com/voicelab/audioeval/orchestrator"
)

func newEvaluateCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <folder>",
		Short: "Evaluate deepfake detection on a folder with bonafide/ and deepfake/ subfolders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, log, err := setup(*cfgPath)
			if err != nil {
				return err
			}
			eval, err := batch.EvaluateFolder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(eval.Outcomes) == 0 {
				log.Warn("no results to evaluate")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderOutcomes(eval))

			truths, predictions := eval.Labels()
			report, err := metrics.Evaluate(truths, predictions)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, renderConfusionMatrix(report.Matrix))
			fmt.Fprintln(out, renderMetrics(report))
			return nil
		},
	}
}

func renderOutcomes(eval *orchestrator.Evaluation) string {
	rows := make([]table.Row, 0, len(eval.Outcomes))
	for _, o := range eval.Outcomes {
		rows = append(rows, table.Row{
			o.File,
			metrics.LabelName(o.Truth),
			metrics.LabelName(o.Predicted),
			fmt.Sprintf("%.4f", o.Confidence),
		})
	}
	return renderTable("Detailed results",
		table.Row{"Filename", "Ground truth", "Prediction", "Confidence"}, rows, 4)
}

func renderConfusionMatrix(m metrics.ConfusionMatrix) string {
	rows := []table.Row{
		{"Actual bonafide", fmt.Sprintf("%d", m[0][0]), fmt.Sprintf("%d", m[0][1])},
		{"Actual spoofed", fmt.Sprintf("%d", m[1][0]), fmt.Sprintf("%d", m[1][1])},
	}
	return renderTable("Confusion matrix",
		table.Row{"", "Predicted bonafide", "Predicted spoofed"}, rows, 2, 3)
}

func renderMetrics(report *metrics.Report) string {
	rows := []table.Row{
		{"overall", fmt.Sprintf("%.4f", report.Precision), fmt.Sprintf("%.4f", report.Recall),
			fmt.Sprintf("%.4f", report.F1), fmt.Sprintf("%d", report.Matrix.Total())},
	}
	for _, c := range report.PerClass() {
		rows = append(rows, table.Row{c.Label, fmt.Sprintf("%.4f", c.Precision),
			fmt.Sprintf("%.4f", c.Recall), fmt.Sprintf("%.4f", c.F1), fmt.Sprintf("%d", c.Support)})
	}
	title := fmt.Sprintf("Metrics (accuracy %.4f)", report.Accuracy)
	return renderTable(title,
		table.Row{"Class", "Precision", "Recall", "F1", "Support"}, rows, 2, 3, 4, 5)
}
