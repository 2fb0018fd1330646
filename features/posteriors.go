package features

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Posterior is one label with its probability estimate.
type Posterior struct {
	Label string
	Score float64
}

// PosteriorList keeps label -> score pairs in the order the service emitted
// them, so rendering and persistence stay deterministic.
type PosteriorList []Posterior

// UnmarshalJSON decodes a JSON object while preserving its key order.
func (p *PosteriorList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("posteriors: expected object, got %v", tok)
	}
	var out PosteriorList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("posteriors: non-string key %v", keyTok)
		}
		var score float64
		if err := dec.Decode(&score); err != nil {
			return fmt.Errorf("posteriors: score for %q: %w", key, err)
		}
		out = append(out, Posterior{Label: key, Score: score})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}

// MarshalJSON writes the pairs back as a JSON object in stored order.
func (p PosteriorList) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(kv.Label)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := json.Marshal(kv.Score)
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// String renders the pairs as comma-joined "label: score" with two-decimal
// precision.
func (p PosteriorList) String() string {
	parts := make([]string, 0, len(p))
	for _, kv := range p {
		parts = append(parts, fmt.Sprintf("%s: %.2f", kv.Label, kv.Score))
	}
	return strings.Join(parts, ", ")
}
