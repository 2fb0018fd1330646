package orchestrator

import "github.com/voicelab/audioeval/features"

// BatchStats accumulates totals over the successfully processed files of a
// batch. Failed files never contribute.
type BatchStats struct {
	Files          int
	AudioDuration  float64 // summed audio length, seconds
	ProcessingTime float64 // summed processing time excluding upload, seconds
	WallClock      float64 // whole batch including upload, seconds
}

// RealtimeRatioExcludingUpload is total audio duration over total processing
// time. ok is false when the ratio is undefined.
func (s BatchStats) RealtimeRatioExcludingUpload() (ratio float64, ok bool) {
	if s.ProcessingTime <= 0 || s.AudioDuration <= 0 {
		return 0, false
	}
	return s.AudioDuration / s.ProcessingTime, true
}

// RealtimeRatioIncludingUpload is total audio duration over wall-clock time.
func (s BatchStats) RealtimeRatioIncludingUpload() (ratio float64, ok bool) {
	if s.WallClock <= 0 || s.AudioDuration <= 0 {
		return 0, false
	}
	return s.AudioDuration / s.WallClock, true
}

// FileClassification is the file-level deepfake decision derived from
// per-segment posteriors.
type FileClassification struct {
	IsSpoofed  bool
	Confidence float64 // max of the mean spoofed / mean bonafide posteriors
}

// FileReport is the outcome of processing one file in plain batch mode.
type FileReport struct {
	Path           string
	Segments       []features.SegmentRecord
	AudioDuration  float64
	ProcessingTime float64
	ResultsPath    string
	FeaturesPath   string
}

// FileOutcome is one row of a labeled evaluation run.
type FileOutcome struct {
	File       string
	Truth      int // 0 bonafide, 1 spoofed
	Predicted  int
	Confidence float64
}

// Evaluation collects the outcomes of a labeled two-folder run.
type Evaluation struct {
	Outcomes []FileOutcome
}

// Labels splits the outcomes into parallel ground-truth and prediction
// sequences for the evaluation engine.
func (e *Evaluation) Labels() (truths, predictions []int) {
	for _, o := range e.Outcomes {
		truths = append(truths, o.Truth)
		predictions = append(predictions, o.Predicted)
	}
	return truths, predictions
}
