package pdd

import (
	"math"

	"github.com/pkg/errors"
)

// Params are the parameters of one sampling run.
type Params struct {
	Kappa float64 // discount
	Theta float64 // concentration, usually Kappa times a population size
	N     int     // number of individuals to sample
}

// wholeTolerance is the relative slack allowed when checking that
// Theta/Kappa is a whole number, so that Kappa*m computed in floating
// point still passes.
const wholeTolerance = 1e-9

// Validate reports whether every probability the recursion can produce
// lies in [0,1].
//
// After K species and total individuals, species i joins with mass
// (c_i+Kappa)/(total+Theta) and a new species is founded with mass
// (Theta-K*Kappa)/(total+Theta). For Kappa > 0 the new-species mass only
// stays non-negative for every reachable K if Theta = Kappa*m for a whole
// m >= 1: the species count then stops at m. For Kappa <= 0 the masses are
// non-negative whenever Theta > Kappa.
func (p Params) Validate() error {
	if p.N < 1 {
		return errors.Wrapf(ErrSampleSize, "n = %d", p.N)
	}
	if math.IsNaN(p.Kappa) || math.IsInf(p.Kappa, 0) || math.IsNaN(p.Theta) || math.IsInf(p.Theta, 0) {
		return errors.Wrapf(ErrParams, "kappa = %v, theta = %v", p.Kappa, p.Theta)
	}
	if p.Kappa <= -1 {
		return errors.Wrapf(ErrDiscount, "kappa = %v", p.Kappa)
	}
	if p.Kappa > 0 {
		m := p.Theta / p.Kappa
		if m < 1-wholeTolerance || math.Abs(m-math.Round(m)) > wholeTolerance*math.Max(1, m) {
			return errors.Wrapf(ErrConcentration, "kappa = %v, theta = %v, theta/kappa = %v", p.Kappa, p.Theta, m)
		}
		return nil
	}
	if p.Theta <= p.Kappa {
		return errors.Wrapf(ErrConcentration, "kappa = %v, theta = %v", p.Kappa, p.Theta)
	}
	return nil
}

// PopulationSize is the largest number of species a run can produce,
// Theta/Kappa rounded, or 0 when Kappa <= 0 and there is no bound.
func (p Params) PopulationSize() int {
	if p.Kappa <= 0 {
		return 0
	}
	return int(math.Round(p.Theta / p.Kappa))
}

// Alpha is the signed-discount label some write-ups use for the same
// parameter. It is only ever displayed.
func (p Params) Alpha() float64 {
	return -p.Kappa
}
