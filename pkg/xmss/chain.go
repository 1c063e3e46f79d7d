package xmss

import (
	"github.com/certen/leansig-verifier/pkg/field"
	"github.com/certen/leansig-verifier/pkg/poseidon"
)

// walkChain advances a published chain tip by `steps` further compressions,
// each under the chain tweak for the next position. steps is always 0 or 1
// for Base=2: the signature publishes the hash at codeword[i], and the
// verifier must reach position Base-1.
func walkChain(parameter [ParameterLenFE]field.Elem, epoch uint32, chainIndex uint8, startPos uint8, steps int, start [HashLenFE]field.Elem) [HashLenFE]field.Elem {
	current := start
	for offset := 0; offset < steps; offset++ {
		tweak := poseidon.ChainTweak(epoch, chainIndex, startPos+uint8(offset)+1)
		current = poseidon.Apply(parameter, tweak, [][HashLenFE]field.Elem{current})
	}
	return current
}
