package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/urbanpath/core"
)

const (
	frameLine     = "========================================"
	separatorLine = "----------------------------------------"
)

// Writer frames report text on an underlying io.Writer. The first write
// error sticks: later writes are dropped and Err returns it.
type Writer struct {
	out io.Writer
	now func() time.Time
	err error
}

// Option configures a Writer.
type Option func(*Writer)

// WithClock sets the clock used for the header timestamp. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		if now != nil {
			w.now = now
		}
	}
}

// NewWriter returns a Writer on out using the wall clock.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{out: out, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Err returns the first error met while writing.
func (w *Writer) Err() error { return w.err }

// Printf writes formatted text unless an earlier write failed.
func (w *Writer) Printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

// Header opens a report.
func (w *Writer) Header(title string) {
	t := w.now()
	w.Printf("%s\n  %s\n%s\n", frameLine, title, frameLine)
	w.Printf("Date: %s\nTime: %s\n", t.Format("2006-01-02"), t.Format("15:04:05"))
	w.Printf("%s\n\n", frameLine)
}

// Footer closes a report.
func (w *Writer) Footer() {
	w.Printf("\n%s\n  End of report\n%s\n", frameLine, frameLine)
}

// Section starts a titled block, underlined to the title's length.
func (w *Writer) Section(title string) {
	w.Printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// Separator writes a dash line.
func (w *Writer) Separator() {
	w.Printf("%s\n", separatorLine)
}

// stationLine describes id, falling back to the bare ID for unknown stations.
func stationLine(g *core.Graph, id int) string {
	s, ok := g.Station(id)
	if !ok {
		return fmt.Sprintf("Station %d (no information available)", id)
	}
	return fmt.Sprintf("Station %d: %s (X: %.1f, Y: %.1f)", s.ID, s.Name, s.X, s.Y)
}
