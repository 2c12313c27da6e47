// Package vdot implements the Daniels/Gilbert running fitness model:
// a forward formula estimating a VDOT score from a race performance,
// an iterative solver inverting it to project race times, and derived
// projections (equivalent race times and training pace zones).
//
// All functions are pure and safe for concurrent use.
package vdot

import (
	"errors"
	"math"
)

// Regression coefficients for the oxygen cost of running at a given
// velocity (meters per minute).
const (
	costIntercept = -4.60
	costLinear    = 0.182258
	costQuadratic = 0.000104
)

// Coefficients for the fraction of VO2max sustainable over a given
// duration (minutes).
const (
	fracBase  = 0.8
	fracSlowK = 0.1894393
	fracSlowE = -0.012778
	fracFastK = 0.2989558
	fracFastE = -0.1932605
)

// ErrNonPositiveInput is returned by Score when the distance or
// duration is zero or negative.
var ErrNonPositiveInput = errors.New("distance and duration must be positive")

// rawScore computes the unrounded VDOT score. Inputs must be positive;
// callers are responsible for validation. The solver iterates on this
// function directly so that rounding never happens inside the loop.
func rawScore(distanceMeters, durationMinutes float64) float64 {
	velocity := distanceMeters / durationMinutes
	vo2Cost := costIntercept + costLinear*velocity + costQuadratic*velocity*velocity
	percentMax := fracBase +
		fracSlowK*math.Exp(fracSlowE*durationMinutes) +
		fracFastK*math.Exp(fracFastE*durationMinutes)
	return vo2Cost / percentMax
}

// Score estimates a VDOT score from a race of distanceMeters run in
// durationMinutes. The result is rounded to one decimal place, half
// away from zero. Returns ErrNonPositiveInput if either input is not
// strictly positive.
func Score(distanceMeters, durationMinutes float64) (float64, error) {
	if distanceMeters <= 0 || durationMinutes <= 0 {
		return 0, ErrNonPositiveInput
	}
	return math.Round(rawScore(distanceMeters, durationMinutes)*10) / 10, nil
}

// ScoreLabel returns a human-readable fitness level for a VDOT score
func ScoreLabel(score float64) string {
	switch {
	case score >= 75:
		return "Elite"
	case score >= 65:
		return "Highly Competitive"
	case score >= 55:
		return "Competitive"
	case score >= 45:
		return "Advanced Recreational"
	case score >= 38:
		return "Intermediate"
	case score >= 30:
		return "Beginner"
	default:
		return "Novice"
	}
}
