// Package orchestrator walks collections of audio files through the job
// runner, persists per-file outputs and accumulates batch statistics.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voicelab/audioeval/config"
	"github.com/voicelab/audioeval/features"
	"github.com/voicelab/audioeval/job"
)

// Batch processes audio files sequentially, one job at a time.
type Batch struct {
	runner *job.Runner
	log    *logrus.Logger
}

func NewBatch(runner *job.Runner, log *logrus.Logger) *Batch {
	return &Batch{runner: runner, log: log}
}

// ProcessFile runs one audio file through the service and writes the raw
// payload and the extracted feature records next to the input.
func (b *Batch) ProcessFile(ctx context.Context, path string) (*FileReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	res, err := b.runner.SubmitAndAwait(ctx, f, filepath.Base(path))
	f.Close()
	if err != nil {
		return nil, err
	}

	segments, err := features.ExtractSegments(res.Payload)
	if err != nil {
		return nil, fmt.Errorf("extract features from %s: %w", path, err)
	}

	resultsPath := sidecarPath(path, ".json")
	if err := writeJSON(resultsPath, res.Payload); err != nil {
		return nil, fmt.Errorf("save results: %w", err)
	}
	featuresPath := sidecarPath(path, "_features.json")
	if err := writeJSON(featuresPath, segments); err != nil {
		return nil, fmt.Errorf("save features: %w", err)
	}
	b.log.WithFields(logrus.Fields{"results": resultsPath, "features": featuresPath}).Info("saved analysis outputs")

	return &FileReport{
		Path:           path,
		Segments:       segments,
		AudioDuration:  res.AudioDuration,
		ProcessingTime: res.ProcessingTime,
		ResultsPath:    resultsPath,
		FeaturesPath:   featuresPath,
	}, nil
}

// ProcessDir runs every .wav file in dir. A failed file is logged and
// skipped; it never aborts the batch and never counts toward the stats.
func (b *Batch) ProcessDir(ctx context.Context, dir string) (*BatchStats, []*FileReport, error) {
	files, err := listAudioFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		b.log.Warnf("no .wav files found in %s", dir)
		return &BatchStats{}, nil, nil
	}
	b.log.Infof("found %d .wav files to process", len(files))

	stats := &BatchStats{}
	wallStart := time.Now()
	var reports []*FileReport
	for _, p := range files {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		rep, err := b.ProcessFile(ctx, p)
		if err != nil {
			b.log.WithError(err).WithField("file", p).Error("skipping file")
			continue
		}
		reports = append(reports, rep)
		stats.Files++
		stats.AudioDuration += rep.AudioDuration
		stats.ProcessingTime += rep.ProcessingTime
	}
	stats.WallClock = time.Since(wallStart).Seconds()
	return stats, reports, nil
}

func listAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &config.ConfigurationError{Reason: fmt.Sprintf("cannot read input directory %s: %v", dir, err)}
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
