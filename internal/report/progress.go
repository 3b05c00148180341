package report

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress shows how many input sizes have been measured on a single
// progress bar line.
type Progress struct {
	w     io.Writer
	total int
	done  int
	bar   *progressbar.ProgressBar // nil when disabled
}

// NewProgress creates a Progress for total steps. A disabled Progress
// prints nothing but still counts steps.
func NewProgress(w io.Writer, total int, enabled bool) *Progress {
	p := &Progress{w: w, total: total}
	if enabled && total > 0 {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Measuring"),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionThrottle(0),
		)
	}
	return p
}

// Step marks the start of the next step, labelled by its input size.
func (p *Progress) Step(size int) {
	p.done++
	if p.bar == nil {
		return
	}
	p.bar.Describe(fmt.Sprintf("size=%d", size))
	_ = p.bar.Add(1)
}

// Done terminates the progress line. An interrupted run leaves the bar
// where it stopped instead of filling it.
func (p *Progress) Done() {
	if p.bar != nil && p.done > 0 {
		fmt.Fprintln(p.w)
	}
}

// Completed returns the number of steps started so far.
func (p *Progress) Completed() int {
	return p.done
}
