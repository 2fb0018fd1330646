// Package clients implements the HTTP transport to the remote behavioral
// audio-analysis service: audio upload, job status checks and results fetch.
package clients

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// API is a client bound to one project and its auth token.
type API struct {
	c         *http.Client
	baseURL   string
	projectID string
	token     string
}

func New(baseURL, projectID, token string) *API {
	return &API{
		c:         &http.Client{Timeout: defaultTimeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		projectID: projectID,
		token:     token,
	}
}

func (a *API) ProjectID() string { return a.projectID }

func (a *API) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Auth-Token", a.token)
	return a.c.Do(req)
}

// HTTPError is a non-success response from the service.
type HTTPError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Status, e.Body)
}
