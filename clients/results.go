package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ResultsPayload is the per-segment analysis payload of a completed job.
// Segment objects are kept as raw JSON so the payload can be persisted
// verbatim; the features package parses them into typed records.
type ResultsPayload struct {
	PID     json.Number       `json:"pid,omitempty"`
	Results []json.RawMessage `json:"results"`
}

// Results fetches the analysis results of a completed job.
func (a *API) Results(ctx context.Context, pid string) (*ResultsPayload, error) {
	url := fmt.Sprintf("%s/clients/%s/processes/%s/results", a.baseURL, a.projectID, pid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &HTTPError{Op: "results", StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	var out ResultsPayload
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("results decode: %w", err)
	}
	return &out, nil
}
