package poseidon

import (
	"math/big"

	"github.com/certen/leansig-verifier/pkg/field"
)

// Domain-level sizes fixed by the scheme this hash is built for: a public
// parameter of 5 field elements, and a chain/tree node of 7.
const (
	ParameterLen = 5
	HashLen      = 7
	// Capacity is the sponge capacity for the >2-block tweakable hash.
	Capacity = 9
)

func permute16Slice(state []field.Elem) {
	var arr [Width16]field.Elem
	copy(arr[:], state)
	Permute16(&arr)
	copy(state, arr[:])
}

func permute24Slice(state []field.Elem) {
	var arr [Width24]field.Elem
	copy(arr[:], state)
	Permute24(&arr)
	copy(state, arr[:])
}

// Compress16 computes truncate_outLen(perm16(pad16(input)) + pad16(input)).
func Compress16(input []field.Elem, outLen int) []field.Elem {
	return compress(input, Width16, outLen, permute16Slice)
}

// Compress24 computes truncate_outLen(perm24(pad24(input)) + pad24(input)).
func Compress24(input []field.Elem, outLen int) []field.Elem {
	return compress(input, Width24, outLen, permute24Slice)
}

func compress(input []field.Elem, width, outLen int, permute func([]field.Elem)) []field.Elem {
	copyLen := len(input)
	if copyLen > width {
		copyLen = width
	}
	padded := make([]field.Elem, width)
	copy(padded, input[:copyLen])

	state := make([]field.Elem, width)
	copy(state, padded)
	permute(state)

	out := make([]field.Elem, outLen)
	for i := 0; i < outLen; i++ {
		v := state[i]
		if i < copyLen {
			v = v.Add(padded[i])
		}
		out[i] = v
	}
	return out
}

// SafeDomainSeparator24 derives the sponge's capacity block from the four
// domain lengths (parameter length, tweak length, block count, output
// length): pack them big-endian into a single 128-bit integer, base-p
// decompose across all 24 lanes, then compress down to Capacity lanes. This
// keeps the sponge for, say, a 155-block leaf hash from colliding with a
// sponge over a different block count or a different hash width.
func SafeDomainSeparator24(params [4]uint32) [Capacity]field.Elem {
	acc := new(big.Int)
	for _, p := range params {
		acc.Lsh(acc, 32)
		acc.Or(acc, new(big.Int).SetUint64(uint64(p)))
	}

	modulus := new(big.Int).SetUint64(uint64(field.P))
	input := make([]field.Elem, Width24)
	for i := range input {
		var rem big.Int
		var quo big.Int
		quo.DivMod(acc, modulus, &rem)
		input[i] = field.New(uint32(rem.Uint64()))
		acc = &quo
	}

	out := Compress24(input, Capacity)
	var result [Capacity]field.Elem
	copy(result[:], out)
	return result
}

// Sponge24 absorbs input in rate-sized chunks into a width-24 state
// initialized with the given capacity, then squeezes outLen field elements.
func Sponge24(capacity []field.Elem, input []field.Elem, outLen int) []field.Elem {
	rate := Width24 - len(capacity)

	state := make([]field.Elem, Width24)
	copy(state[rate:], capacity)

	idx := 0
	for idx < len(input) {
		chunkLen := rate
		if remaining := len(input) - idx; remaining < chunkLen {
			chunkLen = remaining
		}
		for i := 0; i < chunkLen; i++ {
			state[i] = state[i].Add(input[idx+i])
		}
		permute24Slice(state)
		idx += chunkLen
	}

	out := make([]field.Elem, 0, outLen)
	for len(out) < outLen {
		out = append(out, state[:rate]...)
		permute24Slice(state)
	}
	return out[:outLen]
}

// Apply is the tweakable hash dispatcher: a single block goes through
// Compress16, a pair through Compress24, and anything wider through the
// capacity-initialized sponge.
func Apply(parameter [ParameterLen]field.Elem, tweak Tweak, messages [][HashLen]field.Elem) [HashLen]field.Elem {
	tweakFE := tweak.FieldElements()

	var out []field.Elem
	switch len(messages) {
	case 1:
		input := make([]field.Elem, 0, ParameterLen+TweakLen+HashLen)
		input = append(input, parameter[:]...)
		input = append(input, tweakFE[:]...)
		input = append(input, messages[0][:]...)
		out = Compress16(input, HashLen)
	case 2:
		input := make([]field.Elem, 0, ParameterLen+TweakLen+2*HashLen)
		input = append(input, parameter[:]...)
		input = append(input, tweakFE[:]...)
		input = append(input, messages[0][:]...)
		input = append(input, messages[1][:]...)
		out = Compress24(input, HashLen)
	default:
		lengths := [4]uint32{ParameterLen, TweakLen, uint32(len(messages)), HashLen}
		capacity := SafeDomainSeparator24(lengths)
		input := make([]field.Elem, 0, ParameterLen+TweakLen+len(messages)*HashLen)
		input = append(input, parameter[:]...)
		input = append(input, tweakFE[:]...)
		for _, m := range messages {
			input = append(input, m[:]...)
		}
		out = Sponge24(capacity[:], input, HashLen)
	}

	var result [HashLen]field.Elem
	copy(result[:], out)
	return result
}
