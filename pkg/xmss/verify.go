package xmss

import "github.com/certen/leansig-verifier/pkg/field"

// ParamsMatch reports whether params describe the one parameter set this
// verifier supports: base-2 TargetSum encoding, 155 chains, an 18-level
// tree. security_bits and d0 are informational and not checked — per
// SPEC_FULL.md §9, w names the TargetSum base and is intentionally not
// renamed.
func ParamsMatch(params TslParams) bool {
	return params.W == 2 && int(params.V) == NumChains && int(params.TreeHeight) == TreeHeight
}

// VerifyBatch decides whether every signature in the batch is valid under
// its paired public key at the batch's epoch, and reports how many
// signatures were attempted. The only total-batch failures (returning
// (false, 0)) are a key/signature length mismatch, a parameter mismatch, or
// an epoch that doesn't fit in a u32; every other failure is scoped to a
// single signature and still counted (see SPEC_FULL.md §7).
func VerifyBatch(batch VerificationBatch) (allValid bool, count uint32) {
	expected := int(batch.Statement.K)
	if len(batch.Statement.PublicKeys) != expected || len(batch.Witness.Signatures) != expected {
		return false, 0
	}

	if !ParamsMatch(batch.Params) {
		return false, 0
	}

	if batch.Statement.Epoch > uint64(^uint32(0)) {
		return false, 0
	}
	epoch := uint32(batch.Statement.Epoch)

	allValid = true
	for i := range batch.Witness.Signatures {
		ok := verifyOne(batch.Witness.Signatures[i], batch.Statement.PublicKeys[i], batch.Statement.Message, epoch)
		allValid = allValid && ok
		count++
	}
	return allValid, count
}

// verifyOne checks structural shape, decodes every field element, and
// chains the codeword/chain-walk/Merkle checks for a single (signature,
// public key) pair. Every failure mode here collapses to a plain false.
func verifyOne(sig Signature, pk PublicKey, message []byte, epoch uint32) bool {
	if len(sig.ChainEnds) != NumChains {
		return false
	}
	if len(sig.AuthPath) != TreeHeight {
		return false
	}
	if len(sig.Randomness) != RandomnessBytes {
		return false
	}
	if len(pk.Parameter) != ParameterLenBytes || len(pk.Root) != HashLenBytes {
		return false
	}
	if sig.LeafIndex != epoch {
		return false
	}
	if len(message) != MessageLen {
		return false
	}

	randomnessFE, err := bytesToFieldArray(sig.Randomness, RandomnessLenFE)
	if err != nil {
		return false
	}
	parameterFE, err := bytesToFieldArray(pk.Parameter, ParameterLenFE)
	if err != nil {
		return false
	}
	rootFE, err := bytesToFieldArray(pk.Root, HashLenFE)
	if err != nil {
		return false
	}
	chainHashes, err := decodeDomains(sig.ChainEnds)
	if err != nil {
		return false
	}
	authPath, err := decodeDomains(sig.AuthPath)
	if err != nil {
		return false
	}

	var parameter [ParameterLenFE]field.Elem
	copy(parameter[:], parameterFE)
	var root [HashLenFE]field.Elem
	copy(root[:], rootFE)
	var randomness [RandomnessLenFE]field.Elem
	copy(randomness[:], randomnessFE)
	var digest [MessageLen]byte
	copy(digest[:], message)

	digits := codeword(parameter, epoch, randomness, digest)

	var endpoints [NumChains][HashLenFE]field.Elem
	for i := 0; i < NumChains; i++ {
		startPos := digits[i]
		if int(startPos) >= Base {
			return false
		}
		remaining := (Base - 1) - int(startPos)
		endpoints[i] = walkChain(parameter, epoch, uint8(i), startPos, remaining, chainHashes[i])
	}

	var path [TreeHeight][HashLenFE]field.Elem
	copy(path[:], authPath)

	return verifyMerklePath(parameter, root, epoch, endpoints, path)
}
