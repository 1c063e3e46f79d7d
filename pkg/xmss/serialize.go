package xmss

import (
	"errors"
	"fmt"

	"github.com/certen/leansig-verifier/pkg/field"
)

// Sentinel decode errors. verifyOne treats every one of these as a plain
// verification failure (see SPEC_FULL.md §7's flat error taxonomy) rather
// than propagating them to the caller; they identify, via errors.Is, which
// structural check a bytesToFieldArray or decodeDomains call failed.
var (
	ErrWrongByteLength  = errors.New("xmss: byte buffer has the wrong length for the requested field-element count")
	ErrNonCanonicalLimb = errors.New("xmss: decoded limb is not a canonical field element")
)

// bytesToFieldArray decodes exactly n little-endian u32 limbs out of b,
// rejecting any limb that is not already canonical (< field.P). This is the
// deliberate divergence from the reference implementation's from_u32, which
// silently reduces non-canonical limbs — see DESIGN.md.
func bytesToFieldArray(b []byte, n int) ([]field.Elem, error) {
	if len(b) != n*FEBytes {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrWrongByteLength, len(b), n*FEBytes)
	}
	out := make([]field.Elem, n)
	for i := 0; i < n; i++ {
		chunk := b[i*FEBytes : i*FEBytes+FEBytes]
		limb := uint32(chunk[0]) | uint32(chunk[1])<<8 | uint32(chunk[2])<<16 | uint32(chunk[3])<<24
		elem, err := field.FromCanonicalU32(limb)
		if err != nil {
			return nil, fmt.Errorf("%w: limb %d at element %d", ErrNonCanonicalLimb, limb, i)
		}
		out[i] = elem
	}
	return out, nil
}

// decodeDomains decodes a list of byte buffers, each expected to hold
// HashLenFE field elements (a chain tip or an auth-path node).
func decodeDomains(items [][]byte) ([][HashLenFE]field.Elem, error) {
	out := make([][HashLenFE]field.Elem, len(items))
	for i, item := range items {
		fe, err := bytesToFieldArray(item, HashLenFE)
		if err != nil {
			return nil, fmt.Errorf("domain %d: %w", i, err)
		}
		copy(out[i][:], fe)
	}
	return out, nil
}
