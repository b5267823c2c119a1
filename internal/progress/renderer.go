package progress

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/conn-castle/devsetup/internal/messages"
	"github.com/conn-castle/devsetup/internal/terminal"
)

// NewRenderer returns a BarRenderer when out is a terminal and a LineRenderer otherwise.
func NewRenderer(out io.Writer) Renderer {
	if terminal.IsTerminalWriter(out) {
		return NewBarRenderer(out)
	}
	return NewLineRenderer(out)
}

// BarRenderer draws a live progress bar with a count and an ETA.
type BarRenderer struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

// NewBarRenderer returns a BarRenderer writing to out.
func NewBarRenderer(out io.Writer) *BarRenderer {
	return &BarRenderer{out: out}
}

// Start draws an empty bar for total units. No bar is drawn for an empty batch.
func (r *BarRenderer) Start(total int) {
	if total == 0 {
		return
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(messages.ProgressDescription),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	_ = r.bar.RenderBlank()
}

// Tick moves the bar to state.Completed.
func (r *BarRenderer) Tick(state State) {
	if r.bar == nil {
		return
	}
	_ = r.bar.Set(state.Completed)
}

// Println clears the bar, writes line, and redraws the bar below it.
func (r *BarRenderer) Println(line string) {
	if r.bar == nil {
		_, _ = fmt.Fprintln(r.out, line)
		return
	}
	_ = r.bar.Clear()
	_, _ = fmt.Fprintln(r.out, line)
	_ = r.bar.RenderBlank()
}

// Finish completes the bar and prints the summary line.
func (r *BarRenderer) Finish(state State) {
	if r.bar != nil {
		if state.Done() {
			_ = r.bar.Finish()
		} else {
			_ = r.bar.Clear()
		}
		_, _ = fmt.Fprintln(r.out)
		r.bar = nil
	}
	_, _ = fmt.Fprintf(r.out, messages.ProgressCompleteFmt+"\n", state.Completed, state.Total)
}

// LineRenderer prints plain lines with no cursor control, for pipes and logs.
type LineRenderer struct {
	out io.Writer
}

// NewLineRenderer returns a LineRenderer writing to out.
func NewLineRenderer(out io.Writer) *LineRenderer {
	return &LineRenderer{out: out}
}

// Start is a no-op.
func (r *LineRenderer) Start(int) {}

// Tick is a no-op; per-tool lines already mark progress.
func (r *LineRenderer) Tick(State) {}

// Println writes line.
func (r *LineRenderer) Println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

// Finish prints the summary line.
func (r *LineRenderer) Finish(state State) {
	_, _ = fmt.Fprintf(r.out, messages.ProgressCompleteFmt+"\n", state.Completed, state.Total)
}

// NopRenderer discards everything.
type NopRenderer struct{}

func (NopRenderer) Start(int) {}
func (NopRenderer) Tick(State) {}
func (NopRenderer) Println(string) {}
func (NopRenderer) Finish(State) {}
