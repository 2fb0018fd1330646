package job

import (
	"fmt"
	"time"
)

// UploadError reports a failed upload. StatusCode and Body are set when the
// service answered with a non-success status. The batch layer treats it as a
// skipped file; for a single job it is fatal.
type UploadError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UploadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upload failed: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// ProcessingError reports a transport or protocol failure while polling or
// fetching results. Partially completed jobs are not retried.
type ProcessingError struct {
	PID string
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing job %s: %v", e.PID, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// TimeoutError reports that a job did not complete within the configured
// deadline.
type TimeoutError struct {
	PID     string
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("job %s timed out after %s", e.PID, e.Elapsed.Round(time.Millisecond))
}
