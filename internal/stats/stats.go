package stats

import (
	"gonum.org/v1/gonum/stat"
	"strconv"
)

// Result is the (mean, variance) summary of one block.
type Result struct {
	Mean     float64
	Variance float64
}

// Reduce returns the mean and population variance (divided by N) of b.
// b must not be empty.
func Reduce(b []float64) Result {
	if len(b) == 0 {
		panic("stats: reduce of empty block")
	}
	mean, variance := stat.PopMeanVariance(b, nil)
	return Result{Mean: mean, Variance: variance}
}

// String renders the pair as "(mean, variance)".
func (r Result) String() string {
	return "(" + strconv.FormatFloat(r.Mean, 'f', -1, 64) + ", " + strconv.FormatFloat(r.Variance, 'f', -1, 64) + ")"
}
