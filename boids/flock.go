package boids

import (
	"errors"
	"math"
	"math/rand"

	"github.com/vispack/veckit/vecop"
)

// ErrEmptyFlock indicates a flock with no agents.
var ErrEmptyFlock = errors.New("boids: flock needs at least one agent")

// Config tunes the steering rules.
type Config struct {
	MinVelocity     float64
	MaxVelocity     float64
	MaxAcceleration float64
	SeparationDist  float64 // react to crowding inside this distance
	CohesionDist    float64 // align with and approach flockmates inside this distance
}

// DefaultConfig mirrors the classic parameters.
func DefaultConfig() Config {
	return Config{
		MinVelocity:     0.5,
		MaxVelocity:     2.0,
		MaxAcceleration: 0.03,
		SeparationDist:  25,
		CohesionDist:    50,
	}
}

// Flock is a set of agents on a wrapping 2D field. Positions and velocities
// are stored as flat per-axis slices so the steering math runs as bulk
// operations.
type Flock struct {
	W, H float64
	Cfg  Config

	PX, PY []float64 // positions
	VX, VY []float64 // velocities

	// scratch, reused across steps
	dist   []float64
	sepX   []float64
	sepY   []float64
	aliX   []float64
	aliY   []float64
	cohX   []float64
	cohY   []float64
}

// NewFlock seeds count agents inside a centered disc with unit-speed headings
// drawn uniformly on the circle.
func NewFlock(count int, w, h float64, rng *rand.Rand) (*Flock, error) {
	if count <= 0 {
		return nil, ErrEmptyFlock
	}
	f := &Flock{
		W: w, H: h,
		Cfg: DefaultConfig(),
		PX:  make([]float64, count),
		PY:  make([]float64, count),
		VX:  make([]float64, count),
		VY:  make([]float64, count),

		dist: make([]float64, count*count),
		sepX: make([]float64, count),
		sepY: make([]float64, count),
		aliX: make([]float64, count),
		aliY: make([]float64, count),
		cohX: make([]float64, count),
		cohY: make([]float64, count),
	}
	radius := math.Min(w, h) / 2
	for i := 0; i < count; i++ {
		heading := rng.Float64() * 2 * math.Pi
		f.VX[i] = math.Cos(heading)
		f.VY[i] = math.Sin(heading)

		angle := rng.Float64() * 2 * math.Pi
		r := radius * rng.Float64()
		f.PX[i] = w/2 + math.Cos(angle)*r
		f.PY[i] = h/2 + math.Sin(angle)*r
	}
	return f, nil
}

// Len returns the agent count.
func (f *Flock) Len() int { return len(f.PX) }

// limit scales (x, y) down to maxNorm when it exceeds it.
func limit(x, y, maxNorm float64) (float64, float64) {
	n := math.Hypot(x, y)
	if n > maxNorm && n > 0 {
		s := maxNorm / n
		return x * s, y * s
	}
	return x, y
}

// toCruise rescales (x, y) to the cruise speed, leaving zero vectors alone.
func toCruise(x, y, cruise float64) (float64, float64) {
	n := math.Hypot(x, y)
	if n == 0 {
		return 0, 0
	}
	return x / n * cruise, y / n * cruise
}

// Step advances the flock one tick.
func (f *Flock) Step() {
	n := f.Len()
	cfg := f.Cfg

	// Pairwise distances, one flat n*n table.
	for i := 0; i < n; i++ {
		row := f.dist[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			row[j] = math.Hypot(f.PX[j]-f.PX[i], f.PY[j]-f.PY[i])
		}
	}

	for i := 0; i < n; i++ {
		row := f.dist[i*n : (i+1)*n]

		// Accumulate the three rule targets over the distance masks.
		var sepX, sepY float64
		var aliX, aliY float64
		var cohX, cohY float64
		sepCount, nearCount := 0, 0
		for j := 0; j < n; j++ {
			d := row[j]
			if d <= 0 {
				continue
			}
			if d < cfg.SeparationDist {
				// Repulse along the offset, weighted by inverse square.
				sepX += (f.PX[i] - f.PX[j]) / (d * d)
				sepY += (f.PY[i] - f.PY[j]) / (d * d)
				sepCount++
			}
			if d < cfg.CohesionDist {
				aliX += f.VX[j]
				aliY += f.VY[j]
				cohX += f.PX[j]
				cohY += f.PY[j]
				nearCount++
			}
		}

		// Separation: steer away from crowding neighbors.
		var sx, sy float64
		if sepCount > 0 {
			sx, sy = toCruise(sepX/float64(sepCount), sepY/float64(sepCount), cfg.MaxVelocity)
			sx, sy = limit(sx-f.VX[i], sy-f.VY[i], cfg.MaxAcceleration)
		}
		f.sepX[i], f.sepY[i] = sx, sy

		// Alignment: match the average heading of near flockmates.
		var ax, ay float64
		if nearCount > 0 {
			ax, ay = toCruise(aliX/float64(nearCount), aliY/float64(nearCount), cfg.MaxVelocity)
			ax, ay = limit(ax-f.VX[i], ay-f.VY[i], cfg.MaxAcceleration)
		}
		f.aliX[i], f.aliY[i] = ax, ay

		// Cohesion: approach the local center of mass.
		var cx, cy float64
		if nearCount > 0 {
			dx := cohX/float64(nearCount) - f.PX[i]
			dy := cohY/float64(nearCount) - f.PY[i]
			dx, dy = toCruise(dx, dy, cfg.MaxVelocity)
			cx, cy = limit(dx-f.VX[i], dy-f.VY[i], cfg.MaxAcceleration)
		}
		f.cohX[i], f.cohY[i] = cx, cy
	}

	// acceleration = 1.5*separation + alignment + cohesion
	vecop.AXPY(f.VX, 1.5, f.sepX)
	vecop.AXPY(f.VY, 1.5, f.sepY)
	vecop.Add(f.VX, f.aliX)
	vecop.Add(f.VY, f.aliY)
	vecop.Add(f.VX, f.cohX)
	vecop.Add(f.VY, f.cohY)

	// Clamp speeds into [MinVelocity, MaxVelocity].
	for i := 0; i < n; i++ {
		speed := math.Hypot(f.VX[i], f.VY[i])
		if speed == 0 {
			continue
		}
		if speed > cfg.MaxVelocity {
			s := cfg.MaxVelocity / speed
			f.VX[i] *= s
			f.VY[i] *= s
		} else if speed < cfg.MinVelocity {
			s := cfg.MinVelocity / speed
			f.VX[i] *= s
			f.VY[i] *= s
		}
	}

	// Advance and wrap around the field.
	vecop.Add(f.PX, f.VX)
	vecop.Add(f.PY, f.VY)
	for i := 0; i < n; i++ {
		f.PX[i] = math.Mod(f.PX[i]+f.W, f.W)
		f.PY[i] = math.Mod(f.PY[i]+f.H, f.H)
	}
}
