// Package pdd samples species-abundance counts from the two-parameter
// Poisson-Dirichlet (Pitman-Yor) process, restricted to a finite number of
// individuals.
//
// The construction is the sequential urn scheme: see Pitman & Yor, Annals
// of Probability 1995, sec 9.1, and Hansen & Pitman, Statistics &
// Probability Letters 2000, eqs 13 and 14.
package pdd

import (
	"context"

	"github.com/pkg/errors"
)

// Source is a source of uniform values strictly inside (0,1).
type Source interface {
	Float64() float64
}

// ctxCheckInterval is how many steps run between checks of the context.
const ctxCheckInterval = 4096

// Sampler draws one realization of the finite Poisson-Dirichlet partition.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	params Params
	src    Source
}

// NewSampler validates p and returns a Sampler drawing from src.
func NewSampler(p Params, src Source) (*Sampler, error) {
	if src == nil {
		return nil, errors.New("new Sampler requires a non-nil source")
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid parameters")
	}
	return &Sampler{params: p, src: src}, nil
}

// Params returns the parameters the sampler was created with.
func (s *Sampler) Params() Params {
	return s.params
}

// Sample runs the process until N individuals have been placed and
// returns the species counts in order of first appearance.
func (s *Sampler) Sample() ([]int, error) {
	return s.SampleContext(context.Background())
}

// SampleContext is Sample, but gives up with ctx.Err() if ctx is done.
// No partial result is returned in that case.
func (s *Sampler) SampleContext(ctx context.Context) ([]int, error) {
	p := s.params
	state := NewState()
	for state.Total < p.N {
		if (state.Total-1)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		state.Step(s.src.Float64(), p.Kappa, p.Theta)
	}
	if err := checkSum(state.Counts, p.N); err != nil {
		return nil, err
	}
	return state.Counts, nil
}

// Sample is a convenience wrapper around NewSampler and Sampler.Sample.
func Sample(p Params, src Source) ([]int, error) {
	s, err := NewSampler(p, src)
	if err != nil {
		return nil, err
	}
	return s.Sample()
}

func checkSum(counts []int, n int) error {
	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != n {
		return errors.Wrapf(ErrInvariant, "sum %d, n %d", sum, n)
	}
	return nil
}
