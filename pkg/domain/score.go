package domain

import (
	"fmt"
	"math"
)

// Score is a confidence score expressed in hundredths (fixed point, scale 2).
// A Score of 85 renders as "0.85". Integer arithmetic keeps stored and
// compared values exact; all signal weights in the scorer are whole
// hundredths, so no rounding ever happens mid-computation.
type Score int

const (
	// ScoreMin is the lower bound of the valid score range (0.00).
	ScoreMin Score = 0
	// ScoreMax is the upper bound of the valid score range (1.00).
	ScoreMax Score = 100
	// ScoreBaseline is the neutral starting point of the scorer (0.50).
	ScoreBaseline Score = 50
)

// ScoreFromFloat converts a float in [0,1] to a Score, rounding half away
// from zero to two decimal places.
func ScoreFromFloat(f float64) Score {
	return Score(math.Round(f * 100))
}

// Float64 returns the score as a float in [0,1].
func (s Score) Float64() float64 { return float64(s) / 100 }

// String renders the score with exactly two decimals, e.g. "0.60".
func (s Score) String() string { return fmt.Sprintf("%.2f", s.Float64()) }

// Clamp bounds the score to [ScoreMin, ScoreMax].
func (s Score) Clamp() Score {
	if s < ScoreMin {
		return ScoreMin
	}
	if s > ScoreMax {
		return ScoreMax
	}

	return s
}

// Valid reports whether the score lies within [ScoreMin, ScoreMax].
func (s Score) Valid() bool { return s >= ScoreMin && s <= ScoreMax }
