package xmss

import (
	"github.com/certen/leansig-verifier/pkg/field"
	"github.com/certen/leansig-verifier/pkg/poseidon"
)

// verifyMerklePath hashes the 155 chain endpoints into a leaf, then folds
// that leaf up through the 18-node authentication path under per-level tree
// tweaks, comparing the reconstructed root to the public key's root. The
// comparison is a plain array equality: the spec explicitly waives
// constant-time behavior (all inputs here are public within the batch), so
// this deliberately does not follow the teacher's
// crypto/subtle.ConstantTimeCompare pattern — see DESIGN.md.
func verifyMerklePath(parameter [ParameterLenFE]field.Elem, root [HashLenFE]field.Elem, position uint32, endpoints [NumChains][HashLenFE]field.Elem, path [TreeHeight][HashLenFE]field.Elem) bool {
	current := poseidon.Apply(parameter, poseidon.TreeTweak(0, position), endpoints[:])

	idx := position
	for level := 0; level < TreeHeight; level++ {
		sibling := path[level]
		var children [2][HashLenFE]field.Elem
		if idx&1 == 0 {
			children[0], children[1] = current, sibling
		} else {
			children[0], children[1] = sibling, current
		}
		idx >>= 1
		current = poseidon.Apply(parameter, poseidon.TreeTweak(uint8(level+1), idx), children[:])
	}

	return current == root
}
