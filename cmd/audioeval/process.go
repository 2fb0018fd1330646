package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/voicelab/audioeval/config"
	"github.com/voicelab/audioeval/features"
	"github.com/voicelab/audioeval/orchestrator"
)

func newProcessCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "process <audio-file-or-directory>",
		Short: "Analyze a .wav file, or every .wav file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, _, err := setup(*cfgPath)
			if err != nil {
				return err
			}
			input := args[0]
			info, err := os.Stat(input)
			if err != nil {
				return &config.ConfigurationError{Reason: fmt.Sprintf("invalid input path %s: %v", input, err)}
			}
			if info.IsDir() {
				return runProcessDir(cmd, batch, input)
			}
			return runProcessFile(cmd, batch, input)
		},
	}
}

func runProcessFile(cmd *cobra.Command, batch *orchestrator.Batch, path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".wav") {
		return &config.ConfigurationError{Reason: "input file must be a .wav file"}
	}
	rep, err := batch.ProcessFile(cmd.Context(), path)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), features.Format(rep.Segments))
	return nil
}

func runProcessDir(cmd *cobra.Command, batch *orchestrator.Batch, dir string) error {
	stats, _, err := batch.ProcessDir(cmd.Context(), dir)
	if err != nil {
		return err
	}
	if stats.Files == 0 {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderBatchSummary(stats))
	return nil
}

func renderBatchSummary(stats *orchestrator.BatchStats) string {
	rows := []table.Row{
		{"Files processed", fmt.Sprintf("%d", stats.Files)},
		{"Total audio duration", fmt.Sprintf("%.1f s", stats.AudioDuration)},
		{"Processing time (excluding upload)", fmt.Sprintf("%.1f s", stats.ProcessingTime)},
		{"Processing time (including upload)", fmt.Sprintf("%.1f s", stats.WallClock)},
	}
	if ratio, ok := stats.RealtimeRatioExcludingUpload(); ok {
		rows = append(rows, table.Row{"Real-time ratio (excluding upload)", fmt.Sprintf("%.1f", ratio)})
	}
	if ratio, ok := stats.RealtimeRatioIncludingUpload(); ok {
		rows = append(rows, table.Row{"Real-time ratio (including upload)", fmt.Sprintf("%.1f", ratio)})
	}
	return renderTable("Batch summary", nil, rows, 2)
}
