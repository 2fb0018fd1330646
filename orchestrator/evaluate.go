package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/voicelab/audioeval/config"
	"github.com/voicelab/audioeval/features"
	"github.com/voicelab/audioeval/metrics"
)

// Ground-truth subfolder names expected under the evaluation root.
const (
	bonafideFolder = "bonafide"
	deepfakeFolder = "deepfake"
)

// EvaluateFolder processes the bonafide/ and deepfake/ subfolders of root
// and collects per-file classification outcomes. Both subfolders must
// exist; without one of the classes the comparison is meaningless, so a
// missing folder fails the run. Per-file failures and files yielding no
// segments are logged and excluded.
func (b *Batch) EvaluateFolder(ctx context.Context, root string) (*Evaluation, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &config.ConfigurationError{Reason: fmt.Sprintf("evaluation folder %s does not exist", root)}
	}

	classes := []struct {
		folder string
		label  int
	}{
		{bonafideFolder, metrics.LabelBonafide},
		{deepfakeFolder, metrics.LabelSpoofed},
	}

	// Validate and enumerate both class folders before submitting any job.
	work := make([][]string, len(classes))
	for i, cl := range classes {
		sub := filepath.Join(root, cl.folder)
		if fi, err := os.Stat(sub); err != nil || !fi.IsDir() {
			return nil, &config.ConfigurationError{Reason: fmt.Sprintf("missing %s subfolder under %s", cl.folder, root)}
		}
		files, err := listAudioFiles(sub)
		if err != nil {
			return nil, err
		}
		b.log.Infof("found %d %s files", len(files), cl.folder)
		work[i] = files
	}

	eval := &Evaluation{}
	for i, cl := range classes {
		for _, p := range work[i] {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			cls, err := b.ClassifyFile(ctx, p)
			if err != nil {
				b.log.WithError(err).WithField("file", p).Error("skipping file")
				continue
			}
			predicted := metrics.LabelBonafide
			if cls.IsSpoofed {
				predicted = metrics.LabelSpoofed
			}
			eval.Outcomes = append(eval.Outcomes, FileOutcome{
				File:       filepath.Base(p),
				Truth:      cl.label,
				Predicted:  predicted,
				Confidence: cls.Confidence,
			})
		}
	}
	return eval, nil
}

// ClassifyFile runs one file through the service and derives its file-level
// deepfake classification. Evaluation runs do not persist sidecar outputs.
func (b *Batch) ClassifyFile(ctx context.Context, path string) (FileClassification, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileClassification{}, fmt.Errorf("open %s: %w", path, err)
	}
	res, err := b.runner.SubmitAndAwait(ctx, f, filepath.Base(path))
	f.Close()
	if err != nil {
		return FileClassification{}, err
	}

	segments, err := features.ExtractSegments(res.Payload)
	if err != nil {
		return FileClassification{}, fmt.Errorf("extract features from %s: %w", path, err)
	}
	cls, ok := Classify(segments)
	if !ok {
		return FileClassification{}, fmt.Errorf("no segments returned for %s", path)
	}
	b.log.WithField("file", filepath.Base(path)).Infof("classified %s (confidence %.4f)",
		metrics.LabelName(predictedLabel(cls)), cls.Confidence)
	return cls, nil
}

func predictedLabel(c FileClassification) int {
	if c.IsSpoofed {
		return metrics.LabelSpoofed
	}
	return metrics.LabelBonafide
}
