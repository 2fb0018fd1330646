package features

import (
	"fmt"
	"strings"
)

const noResultsMessage = "No results."

// Format renders segments as a text summary, one block per segment. Absent
// optional fields are omitted; numeric values use two-decimal precision.
// An empty sequence yields a fixed no-results message.
func Format(segments []SegmentRecord) string {
	if len(segments) == 0 {
		return noResultsMessage
	}

	var b strings.Builder
	for i, s := range segments {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Segment %d [%.2fs - %.2fs]", i+1, s.StartTime, s.EndTime)

		field := func(name, format string, args ...any) {
			b.WriteString("\n  " + name + ": ")
			fmt.Fprintf(&b, format, args...)
		}
		if s.Transcription != "" {
			field("transcription", "%s", s.Transcription)
		}
		if s.SpeakerID != "" {
			field("speaker", "%s", s.SpeakerID)
		}
		if s.Language != "" {
			field("language", "%s (%.2f)", s.Language, s.LanguagePosterior)
		}
		if s.Gender != "" {
			field("gender", "%s (%.2f)", s.Gender, s.GenderPosterior)
		}
		if s.AgeEstimate != nil {
			field("age estimate", "%.2f", *s.AgeEstimate)
		}
		if len(s.EmotionPosteriors) > 0 {
			field("emotions", "%s", s.EmotionPosteriors)
		}
		if len(s.PositivityPosteriors) > 0 {
			field("positivity", "%s", s.PositivityPosteriors)
		}
		if len(s.StrengthPosteriors) > 0 {
			field("strength", "%s", s.StrengthPosteriors)
		}
		if s.SpeakingRate != nil {
			// sign encodes deviation from the speaker baseline
			field("speaking rate", "%.2f", *s.SpeakingRate)
		}
		if s.HesitationPosterior != nil {
			field("hesitation", "%.2f", *s.HesitationPosterior)
		}
		if s.DeepfakePosteriors != nil {
			field("deepfake", "spoofed: %.2f, bonafide: %.2f",
				s.DeepfakePosteriors.Spoofed, s.DeepfakePosteriors.Bonafide)
		}
	}
	return b.String()
}
