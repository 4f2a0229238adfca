package bench

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureSizesLoops(t *testing.T) {
	h := Harness{Budget: 20 * time.Millisecond, Repeat: 2}

	n := 0
	res := h.Measure("count", func() { n++ })

	assert.Equal(t, "count", res.Name)
	assert.Equal(t, 2, res.Repeat)
	assert.GreaterOrEqual(t, res.Loops, 1)
	assert.Positive(t, res.Best)
	// One trial plus Repeat timed runs.
	assert.Equal(t, 1+res.Repeat*res.Loops, n)

	// Loop counts are decade-rounded.
	for l := res.Loops; l > 1; l /= 10 {
		require.Zero(t, l%10, "loop count %d is not a power of ten", res.Loops)
	}
}

func TestMeasureSlowFunctionRunsOnce(t *testing.T) {
	h := Harness{Budget: time.Millisecond, Repeat: 2}
	res := h.Measure("sleep", func() { time.Sleep(5 * time.Millisecond) })
	assert.Equal(t, 1, res.Loops)
	assert.GreaterOrEqual(t, res.Best, 5*time.Millisecond)
}

func TestPerLoop(t *testing.T) {
	r := Result{Loops: 100, Best: time.Second}
	assert.Equal(t, 10*time.Millisecond, r.PerLoop())
	assert.Zero(t, Result{}.PerLoop())
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	err := Report(&buf,
		Result{Name: "fill", Loops: 10000, Repeat: 3, Best: 120 * time.Millisecond},
		Result{Name: "scale", Loops: 1000, Repeat: 3, Best: 90 * time.Millisecond},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "fill: ")
	assert.Contains(t, out, "scale: ")
	// Digit grouping from the English locale.
	assert.Contains(t, out, "10,000 loops")
	assert.Contains(t, out, "best of 3")
}
