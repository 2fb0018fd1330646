// Package metrics turns binary classification outcomes into a confusion
// matrix and the derived evaluation metrics.
package metrics

import "fmt"

// Class labels for the deepfake-detection evaluation.
const (
	LabelBonafide = 0
	LabelSpoofed  = 1
)

// LabelName returns the display name of a class label.
func LabelName(label int) string {
	if label == LabelSpoofed {
		return "spoofed"
	}
	return "bonafide"
}

// InvalidInputError reports mismatched or empty label sequences.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid evaluation input: " + e.Reason
}

// ConfusionMatrix holds counts indexed by [groundTruth][prediction] over
// the bonafide(0) / spoofed(1) labels.
type ConfusionMatrix [2][2]int

func (m ConfusionMatrix) Total() int {
	return m[0][0] + m[0][1] + m[1][0] + m[1][1]
}

// Report is the evaluation outcome. Precision, recall and F1 treat spoofed
// as the positive class and are zero when their denominator is zero.
type Report struct {
	Matrix    ConfusionMatrix
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// ClassMetrics are per-label metrics with the given label taken as the
// positive class.
type ClassMetrics struct {
	Label     string
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Evaluate builds the confusion matrix and derived metrics from parallel
// ground-truth and prediction sequences. The sequences must be non-empty,
// of equal length, and contain only 0/1 labels.
func Evaluate(truths, predictions []int) (*Report, error) {
	if len(truths) != len(predictions) {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("got %d truths and %d predictions", len(truths), len(predictions))}
	}
	if len(truths) == 0 {
		return nil, &InvalidInputError{Reason: "no samples"}
	}

	var m ConfusionMatrix
	for i := range truths {
		t, p := truths[i], predictions[i]
		if t < 0 || t > 1 || p < 0 || p > 1 {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("labels must be 0 or 1, got (%d, %d) at index %d", t, p, i)}
		}
		m[t][p]++
	}

	tn := float64(m[0][0])
	fp := float64(m[0][1])
	fn := float64(m[1][0])
	tp := float64(m[1][1])

	rep := &Report{Matrix: m}
	rep.Accuracy = (tp + tn) / float64(m.Total())
	rep.Precision = safeDiv(tp, tp+fp)
	rep.Recall = safeDiv(tp, tp+fn)
	rep.F1 = safeDiv(2*rep.Precision*rep.Recall, rep.Precision+rep.Recall)
	return rep, nil
}

// PerClass computes metrics for each label taken in turn as the positive
// class, mirroring a per-label classification report.
func (r *Report) PerClass() []ClassMetrics {
	m := r.Matrix
	out := make([]ClassMetrics, 0, 2)
	for label := 0; label < 2; label++ {
		other := 1 - label
		tp := float64(m[label][label])
		fp := float64(m[other][label])
		fn := float64(m[label][other])

		precision := safeDiv(tp, tp+fp)
		recall := safeDiv(tp, tp+fn)
		out = append(out, ClassMetrics{
			Label:     LabelName(label),
			Precision: precision,
			Recall:    recall,
			F1:        safeDiv(2*precision*recall, precision+recall),
			Support:   m[label][0] + m[label][1],
		})
	}
	return out
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
