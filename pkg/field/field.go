// Package field implements arithmetic over the KoalaBear-style 31-bit prime
// field used by the Poseidon2 permutation and tweakable hash: p = 2^31 -
// 2^24 + 1. All results are kept in canonical form (< P).
package field

import "fmt"

// P is the field modulus: 2^31 - 2^24 + 1.
const P uint32 = 2130706433

// Bytes is the wire width of a single canonical field element.
const Bytes = 4

// Elem is a canonical residue modulo P.
type Elem uint32

// Zero and One are the additive and multiplicative identities.
const (
	Zero Elem = 0
	One  Elem = 1
)

// New reduces x modulo P.
func New(x uint32) Elem {
	return Elem(x % P)
}

// Value returns the canonical u32 representative.
func (a Elem) Value() uint32 {
	return uint32(a)
}

// Add returns a+b mod P.
func (a Elem) Add(b Elem) Elem {
	return Elem((uint64(a) + uint64(b)) % uint64(P))
}

// Sub returns a-b mod P.
func (a Elem) Sub(b Elem) Elem {
	if uint32(a) >= uint32(b) {
		return Elem(uint32(a) - uint32(b))
	}
	return Elem(P - uint32(b) + uint32(a))
}

// Mul returns a*b mod P.
func (a Elem) Mul(b Elem) Elem {
	return Elem((uint64(a) * uint64(b)) % uint64(P))
}

// Neg returns -a mod P.
func (a Elem) Neg() Elem {
	if a == 0 {
		return a
	}
	return Elem(P - uint32(a))
}

// Pow returns a^exp mod P via binary exponentiation.
func (a Elem) Pow(exp uint32) Elem {
	result := One
	base := a
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Inverse returns a^(-1) mod P via Fermat's little theorem. Panics on zero,
// matching the fact that the field has no multiplicative inverse of zero;
// callers in this module never invert a zero element.
func (a Elem) Inverse() Elem {
	if a == 0 {
		panic("field: inverse of zero")
	}
	return a.Pow(P - 2)
}

// Eq reports whether a and b are the same canonical residue.
func (a Elem) Eq(b Elem) bool {
	return a == b
}

// ErrNonCanonical is returned when a decoded limb is >= P.
type ErrNonCanonical struct {
	Limb uint32
}

func (e *ErrNonCanonical) Error() string {
	return fmt.Sprintf("field: limb %d is not canonical (>= %d)", e.Limb, P)
}

// FromCanonicalU32 decodes a u32 limb into a field element, rejecting any
// value that is not already the canonical representative. Unlike the
// reference implementation's from_u32 (which silently reduces mod P), the
// verifier must reject non-canonical limbs so that two distinct byte strings
// can never decode to the same element.
func FromCanonicalU32(limb uint32) (Elem, error) {
	if limb >= P {
		return 0, &ErrNonCanonical{Limb: limb}
	}
	return Elem(limb), nil
}

// PutBytes writes the canonical little-endian encoding of a into dst[0:4].
func (a Elem) PutBytes(dst []byte) {
	v := uint32(a)
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

// Bytes4 returns the canonical little-endian encoding of a.
func (a Elem) Bytes4() [4]byte {
	var out [4]byte
	a.PutBytes(out[:])
	return out
}
