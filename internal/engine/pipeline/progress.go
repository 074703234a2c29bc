package pipeline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/fold/internal/ui/output"
	"go.trai.ch/fold/internal/ui/style"
)

// Progress logs the begin and end of each bundle run.
type Progress struct {
	logger  ports.Logger
	out     *termenv.Output
	entry   string
	outFile string
	now     func() time.Time
}

// NewProgress creates a Progress for the given entry module and bundle file name.
// out colours the file names and times; nil disables colouring.
func NewProgress(logger ports.Logger, out *termenv.Output, entry, outFile string) *Progress {
	if out == nil {
		out = termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii))
	}
	return &Progress{
		logger:  logger,
		out:     out,
		entry:   entry,
		outFile: outFile,
		now:     time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (p *Progress) WithClock(now func() time.Time) *Progress {
	p.now = now
	return p
}

// Begin logs the start of a run and returns its start time.
func (p *Progress) Begin() time.Time {
	p.logger.Info(fmt.Sprintf("Bundling %s...", p.paint(p.entry, string(style.Green))))
	return p.now()
}

// End logs the end of a run started at start and returns its elapsed time.
func (p *Progress) End(start time.Time, succeeded bool) time.Duration {
	elapsed := p.now().Sub(start)
	pretty := p.paint(PrettyDuration(elapsed), string(style.Magenta))
	if succeeded {
		p.logger.Info(fmt.Sprintf("Bundled %s in %s", p.paint(p.outFile, string(style.Green)), pretty))
	} else {
		p.logger.Warn(fmt.Sprintf("Bundling %s failed after %s", p.paint(p.outFile, string(style.Red)), pretty))
	}
	return elapsed
}

// Cancel logs that the run started at start was interrupted and returns its elapsed time.
func (p *Progress) Cancel(start time.Time) time.Duration {
	elapsed := p.now().Sub(start)
	p.logger.Info(fmt.Sprintf("Bundling %s canceled after %s", p.outFile, PrettyDuration(elapsed)))
	return elapsed
}

// Watch logs the watch notice.
func (p *Progress) Watch() {
	p.logger.Info(fmt.Sprintf("Watching files required by %s", p.paint(p.entry, string(style.Yellow))))
}

func (p *Progress) paint(s, color string) string {
	return output.Paint(p.out, s, color)
}

var durationUnits = []struct {
	size time.Duration
	name string
}{
	{time.Hour, "h"},
	{time.Minute, "min"},
	{time.Second, "s"},
	{time.Millisecond, "ms"},
	{time.Microsecond, "μs"},
}

// PrettyDuration formats d with three significant digits in the largest unit
// that keeps the value at or above one, e.g. "1.23 s", "456 ms", "78.9 μs".
func PrettyDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	for _, u := range durationUnits {
		if d >= u.size {
			return formatValue(float64(d)/float64(u.size)) + " " + u.name
		}
	}
	return strconv.FormatInt(int64(d), 10) + " ns"
}

func formatValue(v float64) string {
	var s string
	switch {
	case v >= 100:
		s = strconv.FormatFloat(v, 'f', 0, 64)
	case v >= 10:
		s = strconv.FormatFloat(v, 'f', 1, 64)
	default:
		s = strconv.FormatFloat(v, 'f', 2, 64)
	}
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
