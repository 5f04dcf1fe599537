package apophenia

import "fmt"

// Uint128 is an array of 2 uint64, treated as a single
// object to simplify calling conventions.
type Uint128 struct {
	Lo, Hi uint64 // low-order and high-order uint64 words. Value is `(Hi << 64) | Lo`.
}

// String provides a string representation.
func (u Uint128) String() string {
	return fmt.Sprintf("0x%x%016x", u.Hi, u.Lo)
}
