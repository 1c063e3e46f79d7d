// Package xmss implements the verification engine for a generalized XMSS
// signature scheme using TargetSum W=1 incomparable encoding over an
// 18-level Merkle tree, built on the Poseidon2-style tweakable hash in
// pkg/poseidon. The package is a pure, synchronous, allocation-bounded
// decision function: it consumes an already-parsed batch and returns a
// validity bit and a count, with no I/O, no concurrency, and no mutable
// state surviving a call.
package xmss

// Fixed, compile-time scheme parameters. These mirror the spec's C1-C10
// component budget and are never runtime-configurable.
const (
	HashLenFE       = 7
	ParameterLenFE  = 5
	RandomnessLenFE = 6
	TweakLenFE      = 2
	MsgHashLenFE    = 5
	MsgLenFE        = 9

	NumChains  = 155
	Base       = 2
	TreeHeight = 18

	MessageLen = 32

	FEBytes           = 4
	HashLenBytes      = HashLenFE * FEBytes
	ParameterLenBytes = ParameterLenFE * FEBytes
	RandomnessBytes   = RandomnessLenFE * FEBytes
)

// PublicKey is the Merkle root and public tweakable-hash parameter for one
// signer, carried on the wire as raw byte buffers.
type PublicKey struct {
	Root      []byte `json:"root"`
	Parameter []byte `json:"parameter"`
}

// Signature is one witness: the epoch it was produced for, the TargetSum
// randomness, the 155 published chain tips, and the 18-node Merkle
// authentication path.
type Signature struct {
	LeafIndex  uint32   `json:"leaf_index"`
	Randomness []byte   `json:"randomness"`
	ChainEnds  [][]byte `json:"wots_chain_ends"`
	AuthPath   [][]byte `json:"auth_path"`
}

// Statement is the public claim a batch attests to: k signatures over a
// common 32-byte message at a common epoch, one public key per signature.
type Statement struct {
	K          uint32      `json:"k"`
	Epoch      uint64      `json:"ep"`
	Message    []byte      `json:"m"`
	PublicKeys []PublicKey `json:"public_keys"`
}

// Witness bundles the per-signature evidence paired positionally with
// Statement.PublicKeys.
type Witness struct {
	Signatures []Signature `json:"signatures"`
}

// TslParams are the scheme parameters a batch claims to use. The verifier
// accepts only w=2, v=155, tree_height=18 (see ParamsMatch); d0 and
// security_bits travel along but are not consumed.
type TslParams struct {
	W            uint16 `json:"w"`
	V            uint16 `json:"v"`
	D0           uint32 `json:"d0"`
	SecurityBits uint16 `json:"security_bits"`
	TreeHeight   uint16 `json:"tree_height"`
}

// VerificationBatch is the single top-level object the core verifies.
type VerificationBatch struct {
	Params    TslParams `json:"params"`
	Statement Statement `json:"statement"`
	Witness   Witness   `json:"witness"`
}

// VerificationResult is a host-facing summary of a completed VerifyBatch
// call, useful for reporting layers that want a named type rather than the
// raw (bool, uint32) pair.
type VerificationResult struct {
	AllSignaturesValid    bool   `json:"all_signatures_valid"`
	NumSignaturesVerified uint32 `json:"num_signatures_verified"`
}
