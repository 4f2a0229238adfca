package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vispack/veckit/fractal"
)

func init() {
	rootCmd.AddCommand(newMandelbrotCmd())
}

func newMandelbrotCmd() *cobra.Command {
	var (
		width  int
		height int
		iters  int
		xmin   float64
		xmax   float64
		ymin   float64
		ymax   float64
		out    string
	)
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set",
		Long: `Renders the Mandelbrot set with smooth escape-time shading. Without
--out, a coarse ASCII preview is printed; with --out, an 8-bit binary PGM
image is written.

Example:
  vecctl mandelbrot --width 800 --height 600 --out mandel.pgm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMandelbrot(xmin, xmax, ymin, ymax, width, height, iters, out)
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", 40, "Image height in pixels")
	cmd.Flags().IntVar(&iters, "iters", 200, "Maximum iterations")
	cmd.Flags().Float64Var(&xmin, "xmin", -2.25, "Left edge of the plane")
	cmd.Flags().Float64Var(&xmax, "xmax", 0.75, "Right edge of the plane")
	cmd.Flags().Float64Var(&ymin, "ymin", -1.25, "Bottom edge of the plane")
	cmd.Flags().Float64Var(&ymax, "ymax", 1.25, "Top edge of the plane")
	cmd.Flags().StringVar(&out, "out", "", "Write a binary PGM image to this path")
	return cmd
}

// asciiRamp maps brightness to density, darkest first.
const asciiRamp = " .:-=+*#%@"

func runMandelbrot(xmin, xmax, ymin, ymax float64, width, height, iters int, out string) error {
	vals, err := fractal.Smooth(xmin, xmax, ymin, ymax, width, height, iters)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	gray := fractal.ToGray(vals)

	if out != "" {
		if err := writePGM(out, gray, width, height); err != nil {
			return fmt.Errorf("failed to write image: %w", err)
		}
		printInfo("wrote %s (%dx%d)\n", out, width, height)
		return nil
	}

	for y := 0; y < height; y++ {
		row := gray[y*width : (y+1)*width]
		line := make([]byte, width)
		for x, g := range row {
			line[x] = asciiRamp[int(g)*len(asciiRamp)/256]
		}
		printInfo("%s\n", line)
	}
	return nil
}

// writePGM writes 8-bit grayscale pixels in the binary P5 format.
func writePGM(path string, gray []uint8, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "P5\n%d %d\n255\n", width, height); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(gray); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
