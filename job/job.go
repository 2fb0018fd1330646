// Package job drives the upload, poll and fetch-results lifecycle of one
// audio analysis request against the remote service.
package job

import "time"

// Status mirrors the service-side job state. The only legal path is
// Queued -> Running -> Done; anything else is a protocol error.
type Status int

const (
	StatusQueued  Status = 0
	StatusRunning Status = 1
	StatusDone    Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	}
	return "unknown"
}

// Job is one submitted analysis request. It lives in process memory only
// and is mutated solely by polling responses.
type Job struct {
	PID         string
	ClientID    string
	Status      Status
	Duration    float64 // audio length in seconds, known once running
	SubmittedAt time.Time
}
