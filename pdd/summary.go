package pdd

// Summary describes a set of species counts.
type Summary struct {
	Species        int         `json:"species"`
	Total          int         `json:"total"`
	Singletons     int         `json:"singletons"`
	Min            int         `json:"min"`
	Max            int         `json:"max"`
	Mean           float64     `json:"mean"`
	Histogram      map[int]int `json:"histogram"` // count -> number of species with that count
	sumSquareDelta float64
}

// Variance is the sample variance of the counts, or 0 with fewer than two
// species.
func (s *Summary) Variance() float64 {
	if s.Species < 2 {
		return 0
	}
	return s.sumSquareDelta / float64(s.Species-1)
}

// Add adds one species count to the summary.
func (s *Summary) Add(c int) {
	if s.Histogram == nil {
		s.Histogram = make(map[int]int)
	}
	s.Histogram[c]++
	s.Species++
	s.Total += c
	if c == 1 {
		s.Singletons++
	}
	if s.Species == 1 || c < s.Min {
		s.Min = c
	}
	if c > s.Max {
		s.Max = c
	}

	// online variance calculation
	// https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance#Online_algorithm
	delta := float64(c) - s.Mean
	s.Mean += delta / float64(s.Species)
	s.sumSquareDelta += delta * (float64(c) - s.Mean)
}

// Summarize builds a Summary of counts.
func Summarize(counts []int) *Summary {
	s := &Summary{Histogram: make(map[int]int)}
	for _, c := range counts {
		s.Add(c)
	}
	return s
}
