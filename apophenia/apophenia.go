// Package apophenia provides seekable pseudo-random numbers, allowing
// reproducibility of pseudo-random results regardless of the order they're
// generated in. A given seed always yields the same stream, and the Nth
// value of a stream can be computed without generating the N-1 before it.
package apophenia

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Sequence represents a specific deterministic but pseudo-random-ish series
// of bits, addressed by 128-bit offset.
type Sequence interface {
	BitsAt(Uint128) Uint128
}

// aesSequence128 implements Sequence on top of an AES block cipher run
// in counter mode: the bits at an offset are the encryption of the offset.
type aesSequence128 struct {
	cipher                cipher.Block
	plainText, cipherText [16]byte
}

// NewSequence generates a sequence initialized with the given seed.
func NewSequence(seed int64) Sequence {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	c, err := aes.NewCipher(key[:])
	if err != nil {
		// a 16-byte key is always a valid AES key.
		panic("impossible error: " + err.Error())
	}
	return &aesSequence128{cipher: c}
}

// SequenceClass denotes one of the sequence types, which keep the values
// drawn for different purposes from a single Sequence apart. The zero
// class is left unused.
type SequenceClass uint8

// SequenceUniform is the uniform (0,1) draws used by the species sampler.
const SequenceUniform SequenceClass = 1

// OffsetFor determines the Uint128 offset for a given class/stream/index.
// The class occupies the top byte, the stream the next 32 bits of the
// high word, and the index the whole low word.
func OffsetFor(class SequenceClass, stream uint32, index uint64) Uint128 {
	return Uint128{
		Hi: (uint64(class) << 56) | (uint64(stream) << 24),
		Lo: index,
	}
}

// BitsAt yields the sequence of bits at the provided offset into the stream.
func (s *aesSequence128) BitsAt(offset Uint128) (out Uint128) {
	binary.LittleEndian.PutUint64(s.plainText[:8], offset.Lo)
	binary.LittleEndian.PutUint64(s.plainText[8:], offset.Hi)
	s.cipher.Encrypt(s.cipherText[:], s.plainText[:])
	out.Lo, out.Hi = binary.LittleEndian.Uint64(s.cipherText[:8]), binary.LittleEndian.Uint64(s.cipherText[8:])
	return out
}
