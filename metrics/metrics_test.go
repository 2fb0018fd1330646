package metrics_test

import (
	"errors"
	"math"
	"testing"

	"github.com/voicelab/audioeval/metrics"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEvaluateBalancedExample(t *testing.T) {
	report, err := metrics.Evaluate([]int{0, 0, 1, 1}, []int{0, 1, 1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := metrics.ConfusionMatrix{{1, 1}, {1, 1}}
	if report.Matrix != want {
		t.Fatalf("confusion matrix = %v, want %v", report.Matrix, want)
	}
	if !almostEqual(report.Accuracy, 0.5) {
		t.Errorf("accuracy = %v, want 0.5", report.Accuracy)
	}
	if !almostEqual(report.Precision, 0.5) {
		t.Errorf("precision = %v, want 0.5", report.Precision)
	}
	if !almostEqual(report.Recall, 0.5) {
		t.Errorf("recall = %v, want 0.5", report.Recall)
	}
	if !almostEqual(report.F1, 0.5) {
		t.Errorf("f1 = %v, want 0.5", report.F1)
	}
	if report.Matrix.Total() != 4 {
		t.Errorf("total = %d, want 4", report.Matrix.Total())
	}
}

func TestEvaluateOrderIndependent(t *testing.T) {
	a, err := metrics.Evaluate([]int{0, 1, 1, 0, 1}, []int{0, 1, 0, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := metrics.Evaluate([]int{1, 0, 1, 1, 0}, []int{0, 0, 1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Matrix != b.Matrix {
		t.Fatalf("permuted inputs produced different matrices: %v vs %v", a.Matrix, b.Matrix)
	}
}

func TestEvaluateEmptyInput(t *testing.T) {
	_, err := metrics.Evaluate(nil, nil)
	var invalid *metrics.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestEvaluateMismatchedLengths(t *testing.T) {
	_, err := metrics.Evaluate([]int{0, 1}, []int{0})
	var invalid *metrics.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestEvaluateRejectsUnknownLabels(t *testing.T) {
	_, err := metrics.Evaluate([]int{0, 2}, []int{0, 1})
	var invalid *metrics.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestEvaluateZeroDenominators(t *testing.T) {
	// Everything bonafide and predicted bonafide: no positives at all.
	report, err := metrics.Evaluate([]int{0, 0}, []int{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Precision != 0 || report.Recall != 0 || report.F1 != 0 {
		t.Fatalf("expected zero precision/recall/f1, got %v/%v/%v",
			report.Precision, report.Recall, report.F1)
	}
	if !almostEqual(report.Accuracy, 1.0) {
		t.Errorf("accuracy = %v, want 1.0", report.Accuracy)
	}
}

func TestPerClassReport(t *testing.T) {
	report, err := metrics.Evaluate([]int{0, 0, 1, 1}, []int{0, 0, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	perClass := report.PerClass()
	if len(perClass) != 2 {
		t.Fatalf("expected 2 class entries, got %d", len(perClass))
	}
	for _, c := range perClass {
		if !almostEqual(c.Precision, 1.0) || !almostEqual(c.Recall, 1.0) || !almostEqual(c.F1, 1.0) {
			t.Errorf("class %s: expected perfect scores, got %+v", c.Label, c)
		}
		if c.Support != 2 {
			t.Errorf("class %s: support = %d, want 2", c.Label, c.Support)
		}
	}
}
