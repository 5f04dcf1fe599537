package apophenia

import "errors"

// Uniform produces a series of float64 values uniformly distributed over
// the open interval (0,1). Value i of a given stream depends only on the
// Sequence's seed, the stream, and i, so a run that draws N values sees
// exactly the first N values of a run that draws more.
type Uniform struct {
	src    Sequence
	stream uint32
	idx    uint64
}

// uniformBits is the number of random bits in each value. 52 bits plus
// a half-step offset keeps every value strictly inside (0,1) and exactly
// representable.
const uniformBits = 52

// NewUniform yields a new Uniform drawing from the given stream of src.
func NewUniform(src Sequence, stream uint32) (*Uniform, error) {
	if src == nil {
		return nil, errors.New("new Uniform requires a non-nil source")
	}
	return &Uniform{src: src, stream: stream}, nil
}

// Nth returns the Nth value of the stream, without affecting the position
// used by Float64.
func (u *Uniform) Nth(index uint64) float64 {
	bits := u.src.BitsAt(OffsetFor(SequenceUniform, u.stream, index))
	return (float64(bits.Lo>>(64-uniformBits)) + 0.5) / (1 << uniformBits)
}

// Float64 returns the next value in the stream, starting from value 0.
func (u *Uniform) Float64() float64 {
	v := u.Nth(u.idx)
	u.idx++
	return v
}

// Index reports the index of the value the next call to Float64 returns.
func (u *Uniform) Index() uint64 {
	return u.idx
}
