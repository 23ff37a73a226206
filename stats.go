package tufte

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// WhiskerFactor is the multiple of the interquartile range by which the
// whiskers of a box plot extend beyond the quartiles.
const WhiskerFactor = 1.5

// Summary is the five-number summary of a sample extended by its mean,
// standard deviation and the IQR-derived whiskers.
//
// LowerWhisker = Q1 - 1.5*IQR and UpperWhisker = Q3 + 1.5*IQR; they need
// not coincide with Min and Max.
type Summary struct {
	N               int
	Min, Q1, Median float64
	Q3, Max         float64
	Mean, Std       float64
	IQR             float64
	LowerWhisker    float64
	UpperWhisker    float64
	sorted          []float64
}

// Summarize computes the Summary of the finite values of xs.
// Quantiles are linearly interpolated between the closest ranks,
// Std is the population standard deviation.
func Summarize(xs []float64) (Summary, error) {
	sample := stats.Sample{Xs: make([]float64, 0, len(xs))}
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			sample.Xs = append(sample.Xs, x)
		}
	}
	if len(sample.Xs) == 0 {
		return Summary{}, ErrEmptyInput
	}
	sample.Sort()

	n := len(sample.Xs)
	s := Summary{N: n, sorted: sample.Xs}
	s.Min, s.Max = sample.Bounds()
	s.Q1 = quantile(sample.Xs, 0.25)
	s.Median = quantile(sample.Xs, 0.5)
	s.Q3 = quantile(sample.Xs, 0.75)
	s.Mean = stats.Mean(sample.Xs)
	if n > 1 {
		s.Std = math.Sqrt(stats.Variance(sample.Xs) * float64(n-1) / float64(n))
	}
	s.IQR = s.Q3 - s.Q1
	s.LowerWhisker = s.Q1 - WhiskerFactor*s.IQR
	s.UpperWhisker = s.Q3 + WhiskerFactor*s.IQR

	logger.Debug("summary", "n", n, "q1", s.Q1, "median", s.Median, "q3", s.Q3)
	return s, nil
}

// Outliers returns the values lying outside the whiskers in ascending
// order.
func (s Summary) Outliers() []float64 {
	var out []float64
	for _, x := range s.sorted {
		if x < s.LowerWhisker || x > s.UpperWhisker {
			out = append(out, x)
		}
	}
	return out
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d min=%g q1=%g median=%g q3=%g max=%g whiskers=[%g:%g]",
		s.N, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.LowerWhisker, s.UpperWhisker)
}

// quantile of the sorted, non-empty xs by linear interpolation between
// the ranks floor(h) and ceil(h) with h = (n-1)*p.
func quantile(xs []float64, p float64) float64 {
	h := float64(len(xs)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(xs) {
		return xs[len(xs)-1]
	}
	return xs[i] + (h-lo)*(xs[i+1]-xs[i])
}
