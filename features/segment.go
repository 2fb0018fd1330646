// Package features parses raw analysis payloads into per-segment records
// and renders them as human-readable summaries.
package features

import (
	"encoding/json"
	"fmt"

	"github.com/voicelab/audioeval/clients"
)

// SegmentRecord is one time-bounded span of audio with its extracted
// features. Optional fields stay at their zero value (or nil) when the
// service did not report them. Records are immutable once extracted.
type SegmentRecord struct {
	StartTime            float64         `json:"startTime"`
	EndTime              float64         `json:"endTime"`
	Transcription        string          `json:"transcription,omitempty"`
	SpeakerID            string          `json:"speakerId,omitempty"`
	Language             string          `json:"language,omitempty"`
	LanguagePosterior    float64         `json:"languagePosterior"`
	Gender               string          `json:"gender,omitempty"`
	GenderPosterior      float64         `json:"genderPosterior"`
	AgeEstimate          *float64        `json:"ageEstimate,omitempty"`
	EmotionPosteriors    PosteriorList   `json:"emotionPosteriors,omitempty"`
	PositivityPosteriors PosteriorList   `json:"positivityPosteriors,omitempty"`
	StrengthPosteriors   PosteriorList   `json:"strengthPosteriors,omitempty"`
	SpeakingRate         *float64        `json:"speakingRate,omitempty"`
	HesitationPosterior  *float64        `json:"hesitationPosterior,omitempty"`
	DeepfakePosteriors   *DeepfakeScores `json:"deepfakePosteriors,omitempty"`
}

// DeepfakeScores are the spoofed/bonafide posteriors of one segment.
type DeepfakeScores struct {
	Spoofed  float64 `json:"spoofed"`
	Bonafide float64 `json:"bonafide"`
}

// ExtractSegments maps a raw results payload into the ordered sequence of
// segment records, preserving the temporal order reported by the service.
func ExtractSegments(payload *clients.ResultsPayload) ([]SegmentRecord, error) {
	if payload == nil {
		return nil, nil
	}
	out := make([]SegmentRecord, 0, len(payload.Results))
	for i, raw := range payload.Results {
		var seg SegmentRecord
		if err := json.Unmarshal(raw, &seg); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		out = append(out, seg)
	}
	return out, nil
}
