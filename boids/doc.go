// Package boids implements a flocking simulation driven by three steering
// rules: separation, alignment, and cohesion.
//
// The flock stores positions and velocities as flat per-axis slices and
// updates every agent from pairwise distance masks in one pass, instead of
// chasing neighbors agent by agent. Each rule produces a steering vector that
// is normalized to cruise speed and clamped to a maximum acceleration; the
// weighted sum (separation counts 1.5x) accelerates the agents, speeds are
// clamped to [MinVelocity, MaxVelocity], and positions wrap around the field.
package boids
