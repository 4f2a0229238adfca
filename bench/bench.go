// Package bench measures kernel throughput the way interactive timeit tools
// do: a single trial sizes a decade-rounded loop count against a wall-clock
// budget, the loop is repeated a few times, and the best repeat wins. The
// best is reported rather than the mean because system noise only ever adds
// time.
package bench

import (
	"io"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxLoops caps the decade rounding for near-free functions.
const maxLoops = 1_000_000_000

// Harness controls how measurements are sized.
type Harness struct {
	// Budget is the target wall-clock time per repeat.
	Budget time.Duration
	// Repeat is how many timed repeats to run; the best one is kept.
	Repeat int
}

// Default mirrors the classic timeit policy: one second per repeat, best of
// three.
var Default = Harness{Budget: time.Second, Repeat: 3}

// Result is one completed measurement.
type Result struct {
	Name   string
	Loops  int
	Repeat int
	Best   time.Duration // total time of the best repeat
}

// PerLoop returns the best time divided by the loop count.
func (r Result) PerLoop() time.Duration {
	if r.Loops == 0 {
		return 0
	}
	return r.Best / time.Duration(r.Loops)
}

// Measure times fn with the default harness.
func Measure(name string, fn func()) Result {
	return Default.Measure(name, fn)
}

// Measure runs one untimed trial of fn to pick a loop count, then times
// Repeat runs of that many loops and records the best.
func (h Harness) Measure(name string, fn func()) Result {
	budget := h.Budget
	if budget <= 0 {
		budget = Default.Budget
	}
	repeat := h.Repeat
	if repeat <= 0 {
		repeat = Default.Repeat
	}

	start := time.Now()
	fn()
	trial := time.Since(start)

	// Round the loop count down to a power of ten so one repeat lands
	// within the budget.
	loops := 1
	if trial > 0 {
		exp := math.Floor(math.Log10(budget.Seconds() / trial.Seconds()))
		if exp > 0 {
			loops = int(math.Min(math.Pow(10, exp), maxLoops))
		}
	} else {
		loops = maxLoops
	}

	best := time.Duration(math.MaxInt64)
	for r := 0; r < repeat; r++ {
		start := time.Now()
		for i := 0; i < loops; i++ {
			fn()
		}
		if d := time.Since(start); d < best {
			best = d
		}
	}
	return Result{Name: name, Loops: loops, Repeat: repeat, Best: best}
}

// Report writes one line per result, with locale-aware digit grouping on the
// loop counts.
func Report(w io.Writer, results ...Result) error {
	p := message.NewPrinter(language.English)
	for _, r := range results {
		if _, err := p.Fprintf(w, "%s: %v per loop (best of %d, %d loops)\n",
			r.Name, r.PerLoop(), r.Repeat, r.Loops); err != nil {
			return err
		}
	}
	return nil
}
