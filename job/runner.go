package job

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voicelab/audioeval/clients"
)

// RealtimeRatio is the assumed processing speed multiplier. It is used only
// to estimate progress for display.
const RealtimeRatio = 10

const DefaultPollInterval = 500 * time.Millisecond

var errStillProcessing = errors.New("still processing")

// Runner submits audio to the analysis service and waits for results.
type Runner struct {
	api      *clients.API
	log      *logrus.Logger
	obs      Observer
	interval time.Duration
	timeout  time.Duration
}

// NewRunner builds a runner. A nil observer disables notifications, a nil
// logger discards log output, and a zero timeout polls without limit.
func NewRunner(api *clients.API, log *logrus.Logger, obs Observer, interval, timeout time.Duration) *Runner {
	if obs == nil {
		obs = NopObserver{}
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Runner{api: api, log: log, obs: obs, interval: interval, timeout: timeout}
}

// Result is the outcome of one completed job.
type Result struct {
	Job            Job
	Payload        *clients.ResultsPayload
	AudioDuration  float64 // seconds
	ProcessingTime float64 // seconds, excluding upload
}

// SubmitAndAwait uploads the audio, polls the job until it is done and
// fetches the results. It fails with *UploadError, *ProcessingError or
// *TimeoutError; none of these are retried here.
func (r *Runner) SubmitAndAwait(ctx context.Context, audio io.Reader, name string) (*Result, error) {
	log := r.log.WithFields(logrus.Fields{"file": name, "request_id": uuid.NewString()})

	up, err := r.api.Upload(ctx, audio, name)
	if err != nil {
		var he *clients.HTTPError
		if errors.As(err, &he) {
			return nil, &UploadError{StatusCode: he.StatusCode, Body: he.Body, Err: err}
		}
		return nil, &UploadError{Err: err}
	}
	pid := up.PID.String()
	log = log.WithField("pid", pid)
	log.Info("upload accepted")

	j := Job{PID: pid, ClientID: r.api.ProjectID(), SubmittedAt: time.Now()}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.obs.Start(name)
	start := time.Now()

	var final *clients.StatusResponse
	poll := func() error {
		st, err := r.api.Status(ctx, pid)
		if err != nil {
			return backoff.Permanent(err)
		}
		switch Status(st.Status) {
		case StatusDone:
			j.Status = StatusDone
			j.Duration = st.Duration
			final = st
			return nil
		case StatusRunning:
			j.Status = StatusRunning
			j.Duration = st.Duration
			if st.Duration > 0 {
				elapsed := time.Since(start).Seconds()
				r.obs.Progress(math.Min(1.0, elapsed*RealtimeRatio/st.Duration))
			}
			return errStillProcessing
		case StatusQueued:
			r.obs.Busy()
			return errStillProcessing
		default:
			return backoff.Permanent(fmt.Errorf("unexpected status %d", st.Status))
		}
	}

	// Constant-interval wait; transport and protocol failures are permanent.
	wait := backoff.WithContext(backoff.NewConstantBackOff(r.interval), ctx)
	if err := backoff.Retry(poll, wait); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{PID: pid, Elapsed: time.Since(start)}
		}
		return nil, &ProcessingError{PID: pid, Err: err}
	}

	payload, err := r.api.Results(ctx, pid)
	if err != nil {
		return nil, &ProcessingError{PID: pid, Err: err}
	}
	processing := time.Since(start).Seconds()
	duration := final.Duration

	r.obs.Done(duration, processing)
	fields := logrus.Fields{"audio_seconds": duration, "processing_seconds": processing}
	if processing > 0 {
		fields["realtime_ratio"] = duration / processing
	}
	log.WithFields(fields).Info("job complete")

	return &Result{Job: j, Payload: payload, AudioDuration: duration, ProcessingTime: processing}, nil
}
