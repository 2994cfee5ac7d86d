// Package progress provides the advisory progress-tick sink consumed by the
// engine and the terminal progress bar that implements it.
package progress

import (
	"fmt"
	"io"
	"math"

	"github.com/cheggaaa/pb/v3"
	"github.com/duke-git/lancet/v2/mathutil"
)

// Observer receives one tick per processed candidate and a final finished
// signal. Implementations must be safe for concurrent Tick calls; the engine
// treats the observer as advisory and never blocks correctness on it.
type Observer interface {
	Tick()
	Finish()
}

// nop discards all signals.
type nop struct{}

func (nop) Tick()   {}
func (nop) Finish() {}

// Nop returns an observer that ignores every signal, for runs without a
// visible progress display.
func Nop() Observer {
	return nop{}
}

// bar renders candidate progress with a cheggaaa/pb bar. pb increments are
// atomic, so concurrent worker ticks need no extra locking here.
type bar struct {
	pb *pb.ProgressBar
}

// NewBar returns an observer rendering a progress bar sized to the total
// candidate count. Totals beyond int64 are clamped; the bar is display-only.
func NewBar(total uint64) Observer {
	return newBar(total, nil)
}

// NewBarWriter is NewBar with an explicit output writer, used by tests to
// keep bars out of the test log.
func NewBarWriter(total uint64, w io.Writer) Observer {
	return newBar(total, w)
}

func newBar(total uint64, w io.Writer) Observer {
	if total > math.MaxInt64 {
		total = math.MaxInt64
	}

	b := pb.New64(int64(total))
	if w != nil {
		b.SetWriter(w)
	}

	return &bar{pb: b.Start()}
}

func (b *bar) Tick() {
	b.pb.Increment()
}

func (b *bar) Finish() {
	b.pb.Finish()
}

// Percent formats value/total as a percentage with two decimal places,
// returning "0.00%" for a zero total.
func Percent(value, total float64) string {
	if total == 0 {
		return "0.00%"
	}

	return fmt.Sprintf("%.2f%%", mathutil.Percent(value, total, 2))
}
