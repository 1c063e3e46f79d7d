package poseidon

import "github.com/certen/leansig-verifier/pkg/field"

// TweakLen is the fixed number of field elements a tweak decomposes into.
const TweakLen = 2

const (
	tweakSeparatorChain = 0x00
	tweakSeparatorTree  = 0x01
	// TweakSeparatorMessage is the message-hash domain separator, used by
	// the codeword decoder rather than by a Tweak value here.
	TweakSeparatorMessage = 0x02
)

// Tweak is the domain-separated context injected into every hash call: a
// tree node at a given level/position, or a chain step at a given
// epoch/chain/position. Exactly one of the two is active, selected by kind.
type Tweak struct {
	kind kind

	// Tree fields.
	level      uint8
	posInLevel uint32

	// Chain fields.
	epoch       uint32
	chainIndex  uint8
	posInChain  uint8
}

type kind uint8

const (
	kindTree kind = iota
	kindChain
)

// TreeTweak builds a tweak identifying a Merkle tree node.
func TreeTweak(level uint8, posInLevel uint32) Tweak {
	return Tweak{kind: kindTree, level: level, posInLevel: posInLevel}
}

// ChainTweak builds a tweak identifying one step of a hash chain.
func ChainTweak(epoch uint32, chainIndex, posInChain uint8) Tweak {
	return Tweak{kind: kindChain, epoch: epoch, chainIndex: chainIndex, posInChain: posInChain}
}

// packed returns the integer encoding described in SPEC_FULL.md §4.5, with
// the domain separator in the low byte.
func (t Tweak) packed() uint64 {
	switch t.kind {
	case kindTree:
		return uint64(t.level)<<40 | uint64(t.posInLevel)<<8 | tweakSeparatorTree
	case kindChain:
		return uint64(t.epoch)<<24 | uint64(t.chainIndex)<<16 | uint64(t.posInChain)<<8 | tweakSeparatorChain
	default:
		panic("poseidon: invalid tweak kind")
	}
}

// FieldElements base-p decomposes the packed tweak integer into exactly
// TweakLen field elements, least-significant digit first.
func (t Tweak) FieldElements() [TweakLen]field.Elem {
	acc := t.packed()
	var out [TweakLen]field.Elem
	for i := range out {
		out[i] = field.New(uint32(acc % uint64(field.P)))
		acc /= uint64(field.P)
	}
	return out
}
