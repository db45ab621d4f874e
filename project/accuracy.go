package project

import (
	"fmt"
	"math"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
)

// Accuracy summarizes how well a reconstructed trajectory tracks the
// original it was derived from.
type Accuracy struct {
	// MeanErr and MaxErr are the mean and worst relative error over the
	// samples where the original is nonzero.
	MeanErr float64
	MaxErr  float64
	// Score is 1 - MeanErr.
	Score float64
	// RMSE is the root mean square of the absolute error over all samples,
	// zeros included.
	RMSE float64
}

// Compare measures recon against orig.  The relative metrics skip samples
// where orig is exactly zero; if every sample is zero they come out NaN.
// ShapeMismatchErr if the lengths differ.
func Compare(orig, recon []float64) (Accuracy, error) {
	if len(orig) != len(recon) {
		return Accuracy{}, fmt.Errorf("comparing %v against %v samples: %w", len(orig), len(recon), kexp.ShapeMismatchErr)
	}

	var relsum, relmax, sqsum float64
	nrel := 0
	for i := range orig {
		diff := orig[i] - recon[i]
		sqsum += diff * diff
		if orig[i] == 0 {
			continue
		}
		rel := math.Abs(diff) / math.Abs(orig[i])
		relsum += rel
		if rel > relmax {
			relmax = rel
		}
		nrel++
	}

	mean := math.NaN()
	if nrel > 0 {
		mean = relsum / float64(nrel)
	} else {
		relmax = math.NaN()
	}

	return Accuracy{
		MeanErr: mean,
		MaxErr:  relmax,
		Score:   1 - mean,
		RMSE:    math.Sqrt(sqsum / float64(len(orig))),
	}, nil
}
