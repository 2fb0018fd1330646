package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type UploadResponse struct {
	PID json.Number `json:"pid"`
}

// Upload posts an audio payload for analysis under the given display name
// and returns the job identifier assigned by the service.
func (a *API) Upload(ctx context.Context, audio io.Reader, name string) (*UploadResponse, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(fw, audio); err != nil {
		return nil, err
	}
	if err = w.WriteField("name", name); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/clients/%s/processes/audio", a.baseURL, a.projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &b)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := a.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &HTTPError{Op: "upload", StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	var out UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("upload decode: %w", err)
	}
	if out.PID.String() == "" {
		return nil, fmt.Errorf("upload response missing pid")
	}
	return &out, nil
}
