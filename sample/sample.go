// Package sample runs the finite Poisson-Dirichlet sampler from a flat
// configuration and writes the resulting species counts out.
package sample

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/OneOfOne/xxhash"
	"github.com/pilosa/pdsample/apophenia"
	"github.com/pilosa/pdsample/pdd"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	jww "github.com/spf13/jwalterweatherman"
)

// Main holds the configuration for one sampling run.
type Main struct {
	Kappa   float64 `json:"kappa"`
	PopSize int     `json:"pop-size"`
	Theta   string  `json:"theta"` // empty means Kappa*PopSize
	N       int     `json:"sample-size"`
	Seed    string  `json:"seed"` // empty means derived from the clock
	Output  string  `json:"output"`
	Verbose bool    `json:"verbose"`

	Fs     afero.Fs  `json:"-"`
	Stdout io.Writer `json:"-"`
	Stderr io.Writer `json:"-"`
}

// NewMain returns a Main with the default settings, writing files to the
// OS filesystem.
func NewMain(stdout, stderr io.Writer) *Main {
	return &Main{
		Kappa:   1.0,
		PopSize: 1000000,
		N:       1000000,
		Fs:      afero.NewOsFs(),
		Stdout:  stdout,
		Stderr:  stderr,
	}
}

// Params converts the configuration into sampler parameters.
func (m *Main) Params() (pdd.Params, error) {
	p := pdd.Params{Kappa: m.Kappa, N: m.N}
	if m.Kappa <= 0 {
		return p, errors.Errorf("kappa must be positive, got %v", m.Kappa)
	}
	if strings.TrimSpace(m.Theta) == "" {
		if m.PopSize < 1 {
			return p, errors.Errorf("population size must be at least 1, got %d", m.PopSize)
		}
		p.Theta = m.Kappa * float64(m.PopSize)
	} else {
		theta, err := cast.ToFloat64E(strings.TrimSpace(m.Theta))
		if err != nil {
			return p, errors.Wrapf(err, "parsing theta %q", m.Theta)
		}
		p.Theta = theta
	}
	return p, p.Validate()
}

// SeedValue returns the seed for the random source. Integer strings are
// used as-is, other strings are hashed, and an empty seed comes from the
// clock.
func (m *Main) SeedValue() int64 {
	s := strings.TrimSpace(m.Seed)
	if s == "" {
		return time.Now().UnixNano()
	}
	if seed, err := cast.ToInt64E(s); err == nil {
		return seed
	}
	return int64(xxhash.ChecksumString64(s))
}

func (m *Main) notepad() *jww.Notepad {
	stderr := m.Stderr
	if stderr == nil {
		stderr = ioutil.Discard
	}
	threshold := jww.LevelWarn
	if m.Verbose {
		threshold = jww.LevelInfo
	}
	return jww.NewNotepad(threshold, jww.LevelCritical, stderr, ioutil.Discard, "", 0)
}

// Run samples and writes the counts.
func (m *Main) Run() error {
	return m.RunContext(context.Background())
}

// RunContext samples and writes the counts, one per line in order of first
// appearance, to the output file or to Stdout. Nothing is written if the
// sample fails.
func (m *Main) RunContext(ctx context.Context) error {
	np := m.notepad()
	p, err := m.Params()
	if err != nil {
		return errors.Wrap(err, "configuration")
	}
	seed := m.SeedValue()
	np.INFO.Printf("alpha = %v", p.Alpha())
	np.INFO.Printf("theta = %v", p.Theta)
	np.INFO.Printf("n = %d", p.N)
	np.INFO.Printf("seed = %d", seed)

	src, err := apophenia.NewUniform(apophenia.NewSequence(seed), 0)
	if err != nil {
		return errors.Wrap(err, "creating random source")
	}
	sampler, err := pdd.NewSampler(p, src)
	if err != nil {
		return errors.Wrap(err, "creating sampler")
	}
	start := time.Now()
	counts, err := sampler.SampleContext(ctx)
	if err != nil {
		if errors.Cause(err) == pdd.ErrInvariant {
			np.ERROR.Printf("sampler produced inconsistent counts: %v", err)
		}
		return errors.Wrap(err, "sampling")
	}
	m.report(np.INFO, counts, time.Since(start))

	return m.write(counts)
}

func (m *Main) report(l *log.Logger, counts []int, elapsed time.Duration) {
	l.Println("counts = ")
	for _, c := range counts {
		l.Println(c)
	}
	s := pdd.Summarize(counts)
	l.Printf("sum of counts = %d", s.Total)
	l.Printf("number of species = %d", s.Species)
	l.Printf("singletons = %d", s.Singletons)
	l.Printf("min = %d, max = %d, mean = %.4f, variance = %.4f", s.Min, s.Max, s.Mean, s.Variance())
	l.Println("count\tspecies")
	sizes := make([]int, 0, len(s.Histogram))
	for c := range s.Histogram {
		sizes = append(sizes, c)
	}
	sort.Ints(sizes)
	for _, c := range sizes {
		l.Printf("%d\t%d", c, s.Histogram[c])
	}
	l.Printf("elapsed = %v", elapsed)
}

func (m *Main) write(counts []int) (err error) {
	w := m.Stdout
	if m.Output != "" {
		fs := m.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		f, ferr := fs.Create(m.Output)
		if ferr != nil {
			return errors.Wrap(ferr, "opening output file")
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "closing output file")
			}
		}()
		w = f
	}
	if w == nil {
		return errors.New("no output configured")
	}
	bw := bufio.NewWriter(w)
	for _, c := range counts {
		if _, err := fmt.Fprintf(bw, "%d\n", c); err != nil {
			return errors.Wrap(err, "writing counts")
		}
	}
	return errors.Wrap(bw.Flush(), "writing counts")
}
