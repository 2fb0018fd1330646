package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusResponse reports where a job currently is. Status is 0 while the
// service is busy with another job, 1 while running, 2 when done. Duration
// is the audio length in seconds, known once the job has started.
type StatusResponse struct {
	PID      json.Number `json:"pid"`
	Status   int         `json:"status"`
	Duration float64     `json:"duration"`
}

// Status fetches the current state of a submitted job.
func (a *API) Status(ctx context.Context, pid string) (*StatusResponse, error) {
	url := fmt.Sprintf("%s/clients/%s/processes/%s", a.baseURL, a.projectID, pid)
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
		return nil, &HTTPError{Op: "status", StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	var out StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("status decode: %w", err)
	}
	return &out, nil
}
