package xmss

import (
	"github.com/certen/leansig-verifier/pkg/field"
	"github.com/certen/leansig-verifier/pkg/poseidon"
)

// encodeMessage treats the 32-byte digest as an unbounded little-endian
// integer and base-p decomposes it into MsgLenFE lanes, least-significant
// first.
func encodeMessage(message [MessageLen]byte) [MsgLenFE]field.Elem {
	acc := field.FromLEBytes(message[:])
	var out [MsgLenFE]field.Elem
	for i := range out {
		out[i] = field.New(acc.DivSmall(field.P))
	}
	return out
}

// encodeEpochTweak packs the epoch with the message-hash domain separator
// and base-p decomposes it into TweakLenFE lanes.
func encodeEpochTweak(epoch uint32) [TweakLenFE]field.Elem {
	value := uint64(epoch)<<8 | poseidon.TweakSeparatorMessage
	acc := field.FromU64(value)
	var out [TweakLenFE]field.Elem
	for i := range out {
		out[i] = field.New(acc.DivSmall(field.P))
	}
	return out
}

// codeword computes the TargetSum W=1 codeword: 155 base-2 digits derived
// deterministically from (randomness, parameter, epoch, message). It is the
// sole non-tree, non-chain hash call in the scheme, using a single
// compress24 rather than the sponge (see SPEC_FULL.md §9's note on this).
func codeword(parameter [ParameterLenFE]field.Elem, epoch uint32, randomness [RandomnessLenFE]field.Elem, message [MessageLen]byte) [NumChains]byte {
	messageFE := encodeMessage(message)
	epochFE := encodeEpochTweak(epoch)

	input := make([]field.Elem, 0, RandomnessLenFE+ParameterLenFE+TweakLenFE+MsgLenFE)
	input = append(input, randomness[:]...)
	input = append(input, parameter[:]...)
	input = append(input, epochFE[:]...)
	input = append(input, messageFE[:]...)

	hash := poseidon.Compress24(input, MsgHashLenFE)

	acc := field.ZeroBigUint()
	for _, lane := range hash {
		acc.MulSmall(field.P)
		acc.AddSmall(lane.Value())
	}

	var out [NumChains]byte
	for i := range out {
		out[i] = byte(acc.DivSmall(Base))
	}
	return out
}
