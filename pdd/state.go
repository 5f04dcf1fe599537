package pdd

// State is the state of a run: species counts in order of first
// appearance, and their sum. Total is kept alongside Counts rather than
// recomputed on every step.
type State struct {
	Counts []int
	Total  int
}

// NewState returns the state every run starts from: a single species
// with one individual.
func NewState() *State {
	return &State{Counts: []int{1}, Total: 1}
}

// Step adds one individual given a uniform draw u in (0,1). Species i
// owns an interval of width (c_i+kappa)/(Total+theta), laid out in order
// of first appearance; the first species whose cumulative mass exceeds u
// gets the individual. Whatever is left past the last species is the mass
// for founding a new one.
func (s *State) Step(u, kappa, theta float64) {
	denom := float64(s.Total) + theta
	acc := 0.0
	joined := false
	for i, c := range s.Counts {
		acc += (float64(c) + kappa) / denom
		if u < acc {
			s.Counts[i]++
			joined = true
			break
		}
	}
	if !joined {
		s.Counts = append(s.Counts, 1)
	}
	s.Total++
}

// Species returns the number of distinct species seen so far.
func (s *State) Species() int {
	return len(s.Counts)
}
