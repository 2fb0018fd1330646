package job

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Observer receives advisory notifications while a job is in flight.
// Observations never influence the runner's control flow.
type Observer interface {
	// Start announces a new job for the named file.
	Start(file string)
	// Progress reports the estimated completed fraction, always in [0, 1].
	Progress(fraction float64)
	// Busy signals that the service has not started the job yet.
	Busy()
	// Done reports the final audio duration and processing time in seconds.
	Done(audioDuration, processingTime float64)
}

type NopObserver struct{}

func (NopObserver) Start(string)          {}
func (NopObserver) Progress(float64)      {}
func (NopObserver) Busy()                 {}
func (NopObserver) Done(float64, float64) {}

// ConsoleObserver renders job progress as a terminal progress bar.
type ConsoleObserver struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{out: os.Stderr}
}

func (o *ConsoleObserver) Start(file string) {
	o.bar = progressbar.NewOptions(100,
		progressbar.OptionSetWriter(o.out),
		progressbar.OptionSetDescription(file),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

func (o *ConsoleObserver) Progress(fraction float64) {
	if o.bar == nil {
		return
	}
	_ = o.bar.Set(int(fraction * 100))
}

func (o *ConsoleObserver) Busy() {
	if o.bar == nil {
		return
	}
	o.bar.Describe("service busy, waiting")
}

func (o *ConsoleObserver) Done(audioDuration, processingTime float64) {
	if o.bar == nil {
		return
	}
	_ = o.bar.Finish()
}
