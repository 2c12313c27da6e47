package vdot

import "math"

// Solver tuning. The score function is not invertible in closed form
// (duration appears in the velocity term and in both exponentials), so
// times are found by Newton iteration on the unrounded score.
const (
	maxIterations  = 50
	scoreTolerance = 0.001
	derivativeStep = 0.01   // forward-difference step, minutes
	minSlope       = 0.0001 // below this the Newton step is unsafe
	dampingFactor  = 0.01   // multiplicative fallback step size
	floorMinutes   = 1.0    // recovery floor after a non-physical step
)

// Solution is the outcome of a time solve. Minutes always holds the
// best estimate; Converged reports whether it met the tolerance within
// the iteration budget.
type Solution struct {
	Minutes    float64
	Converged  bool
	Iterations int
}

// Solve finds the duration in minutes at which the unrounded score for
// distanceMeters equals targetScore. It is total over its inputs: when
// the iteration budget runs out the last estimate is returned with
// Converged false rather than an error. Targets far outside the
// realistic 20-85 range may not converge.
func Solve(distanceMeters, targetScore float64) Solution {
	// Crude velocity-proportional seed.
	t := distanceMeters / (targetScore * 20)

	for i := 0; i < maxIterations; i++ {
		f := rawScore(distanceMeters, t) - targetScore
		if math.Abs(f) < scoreTolerance {
			return Solution{Minutes: t, Converged: true, Iterations: i}
		}
		t = nextEstimate(distanceMeters, t, f)
	}

	return Solution{Minutes: t, Converged: false, Iterations: maxIterations}
}

// SolveTime returns the solved duration in minutes, discarding
// convergence status. Callers that care whether the tolerance was met
// should use Solve.
func SolveTime(distanceMeters, targetScore float64) float64 {
	return Solve(distanceMeters, targetScore).Minutes
}

// nextEstimate advances the iteration by one step: a Newton update
// where the slope is usable, a damped multiplicative update where the
// score curve is locally flat, and a reset to the one-minute floor if
// the step lands on a non-positive duration.
func nextEstimate(distanceMeters, t, f float64) float64 {
	slope := (rawScore(distanceMeters, t+derivativeStep) - rawScore(distanceMeters, t)) / derivativeStep

	var next float64
	if math.Abs(slope) > minSlope {
		next = t - f/slope
	} else {
		next = t * (1 - f*dampingFactor)
	}

	if next <= 0 {
		return floorMinutes
	}
	return next
}
