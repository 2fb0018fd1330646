package orchestrator

import "github.com/voicelab/audioeval/features"

// Classify averages the deepfake posteriors across all segments of a file
// and decides spoofed vs bonafide. Segments without deepfake scores count
// as zero for both classes. ok is false for an empty segment sequence; such
// files are excluded from evaluation.
func Classify(segments []features.SegmentRecord) (c FileClassification, ok bool) {
	if len(segments) == 0 {
		return FileClassification{}, false
	}

	var spoofed, bonafide float64
	for _, s := range segments {
		if s.DeepfakePosteriors == nil {
			continue
		}
		spoofed += s.DeepfakePosteriors.Spoofed
		bonafide += s.DeepfakePosteriors.Bonafide
	}
	n := float64(len(segments))
	avgSpoofed := spoofed / n
	avgBonafide := bonafide / n

	c.IsSpoofed = avgSpoofed > avgBonafide
	c.Confidence = avgSpoofed
	if avgBonafide > avgSpoofed {
		c.Confidence = avgBonafide
	}
	return c, true
}
