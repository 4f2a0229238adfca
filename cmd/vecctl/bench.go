package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vispack/veckit/bench"
	"github.com/vispack/veckit/fractal"
	"github.com/vispack/veckit/vecop"
)

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	var budget time.Duration
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the core kernels",
		Long: `Measures a few representative kernels with the timeit policy: a trial
run sizes a decade-rounded loop count against the budget, three repeats run,
and the best one is reported.

Example:
  vecctl bench --budget 200ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(budget)
		},
	}
	cmd.Flags().DurationVar(&budget, "budget", time.Second, "Wall-clock budget per repeat")
	return cmd
}

func runBench(budget time.Duration) error {
	h := bench.Harness{Budget: budget, Repeat: 3}

	xs := make([]float64, 1<<16)
	ys := make([]float64, 1<<16)
	vecop.Fill(xs, 1.5)
	vecop.Fill(ys, 0.5)

	results := []bench.Result{
		h.Measure("vecop.AXPY/64k", func() {
			vecop.AXPY(ys, 2.0, xs)
		}),
		h.Measure("vecop.Sum/64k", func() {
			_ = vecop.Sum(xs)
		}),
		h.Measure("fractal.Mandelbrot/320x200", func() {
			_, _ = fractal.Mandelbrot(-2.25, 0.75, -1.25, 1.25, 320, 200, 50)
		}),
	}

	if jsonOut {
		type row struct {
			Name    string `json:"name"`
			Loops   int    `json:"loops"`
			Repeat  int    `json:"repeat"`
			BestNs  int64  `json:"best_ns"`
			PerLoop string `json:"per_loop"`
		}
		rows := make([]row, len(results))
		for i, r := range results {
			rows[i] = row{r.Name, r.Loops, r.Repeat, r.Best.Nanoseconds(), r.PerLoop().String()}
		}
		return printJSON(rows)
	}

	if err := bench.Report(os.Stdout, results...); err != nil {
		return fmt.Errorf("failed to report: %w", err)
	}
	return nil
}
