// Package wire implements the host-facing serialization around a
// verification batch: a length-prefixed binary layout for the batch itself,
// and the hex-in-JSON envelope the upstream host wraps it in. Neither of
// these is a core verification concern — pkg/xmss never imports this
// package — but a verifier has to be fed bytes from somewhere, and this is
// the format the reference host produces them in.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/certen/leansig-verifier/pkg/xmss"
)

// ErrTruncated is returned when the buffer runs out before a length-prefixed
// field or a fixed-width field has been fully read.
var ErrTruncated = errors.New("wire: buffer truncated")

type reader struct {
	buf []byte
	pos int
}

func (r *reader) u16() (uint16, error) {
	if r.pos+2 > len(r.buf) {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) u64() (uint64, error) {
	if r.pos+8 > len(r.buf) {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// bytesVec reads a u32 length prefix followed by that many raw bytes.
func (r *reader) bytesVec() ([]byte, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if r.pos+int(n) > len(r.buf) {
		return nil, ErrTruncated
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+int(n)])
	r.pos += int(n)
	return out, nil
}

type writer struct {
	buf []byte
}

func (w *writer) putU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) putU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) putU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) putBytesVec(b []byte) {
	w.putU32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}

// Encode serializes a batch to the length-prefixed binary layout described
// in SPEC_FULL.md §6: fixed-width scalars for params, u32 length prefixes
// for every byte vector and every repeated field.
func Encode(batch xmss.VerificationBatch) []byte {
	w := &writer{}

	w.putU16(batch.Params.W)
	w.putU16(batch.Params.V)
	w.putU32(batch.Params.D0)
	w.putU16(batch.Params.SecurityBits)
	w.putU16(batch.Params.TreeHeight)

	w.putU32(batch.Statement.K)
	w.putU64(batch.Statement.Epoch)
	w.putBytesVec(batch.Statement.Message)

	w.putU32(uint32(len(batch.Statement.PublicKeys)))
	for _, pk := range batch.Statement.PublicKeys {
		w.putBytesVec(pk.Root)
		w.putBytesVec(pk.Parameter)
	}

	w.putU32(uint32(len(batch.Witness.Signatures)))
	for _, sig := range batch.Witness.Signatures {
		w.putU32(sig.LeafIndex)
		w.putBytesVec(sig.Randomness)
		w.putU32(uint32(len(sig.ChainEnds)))
		for _, end := range sig.ChainEnds {
			w.putBytesVec(end)
		}
		w.putU32(uint32(len(sig.AuthPath)))
		for _, node := range sig.AuthPath {
			w.putBytesVec(node)
		}
	}

	return w.buf
}

// Decode parses the binary layout Encode produces. It performs no
// cryptographic or structural validation beyond buffer bounds; that is
// xmss.VerifyBatch's job.
func Decode(buf []byte) (xmss.VerificationBatch, error) {
	r := &reader{buf: buf}
	var batch xmss.VerificationBatch

	w, err := r.u16()
	if err != nil {
		return batch, fmt.Errorf("params.w: %w", err)
	}
	v, err := r.u16()
	if err != nil {
		return batch, fmt.Errorf("params.v: %w", err)
	}
	d0, err := r.u32()
	if err != nil {
		return batch, fmt.Errorf("params.d0: %w", err)
	}
	securityBits, err := r.u16()
	if err != nil {
		return batch, fmt.Errorf("params.security_bits: %w", err)
	}
	treeHeight, err := r.u16()
	if err != nil {
		return batch, fmt.Errorf("params.tree_height: %w", err)
	}
	batch.Params = xmss.TslParams{W: w, V: v, D0: d0, SecurityBits: securityBits, TreeHeight: treeHeight}

	k, err := r.u32()
	if err != nil {
		return batch, fmt.Errorf("statement.k: %w", err)
	}
	epoch, err := r.u64()
	if err != nil {
		return batch, fmt.Errorf("statement.ep: %w", err)
	}
	message, err := r.bytesVec()
	if err != nil {
		return batch, fmt.Errorf("statement.m: %w", err)
	}
	batch.Statement.K = k
	batch.Statement.Epoch = epoch
	batch.Statement.Message = message

	numKeys, err := r.u32()
	if err != nil {
		return batch, fmt.Errorf("statement.public_keys: %w", err)
	}
	batch.Statement.PublicKeys = make([]xmss.PublicKey, numKeys)
	for i := range batch.Statement.PublicKeys {
		root, err := r.bytesVec()
		if err != nil {
			return batch, fmt.Errorf("statement.public_keys[%d].root: %w", i, err)
		}
		parameter, err := r.bytesVec()
		if err != nil {
			return batch, fmt.Errorf("statement.public_keys[%d].parameter: %w", i, err)
		}
		batch.Statement.PublicKeys[i] = xmss.PublicKey{Root: root, Parameter: parameter}
	}

	numSigs, err := r.u32()
	if err != nil {
		return batch, fmt.Errorf("witness.signatures: %w", err)
	}
	batch.Witness.Signatures = make([]xmss.Signature, numSigs)
	for i := range batch.Witness.Signatures {
		leafIndex, err := r.u32()
		if err != nil {
			return batch, fmt.Errorf("witness.signatures[%d].leaf_index: %w", i, err)
		}
		randomness, err := r.bytesVec()
		if err != nil {
			return batch, fmt.Errorf("witness.signatures[%d].randomness: %w", i, err)
		}

		numEnds, err := r.u32()
		if err != nil {
			return batch, fmt.Errorf("witness.signatures[%d].wots_chain_ends: %w", i, err)
		}
		chainEnds := make([][]byte, numEnds)
		for j := range chainEnds {
			chainEnds[j], err = r.bytesVec()
			if err != nil {
				return batch, fmt.Errorf("witness.signatures[%d].wots_chain_ends[%d]: %w", i, j, err)
			}
		}

		numPath, err := r.u32()
		if err != nil {
			return batch, fmt.Errorf("witness.signatures[%d].auth_path: %w", i, err)
		}
		authPath := make([][]byte, numPath)
		for j := range authPath {
			authPath[j], err = r.bytesVec()
			if err != nil {
				return batch, fmt.Errorf("witness.signatures[%d].auth_path[%d]: %w", i, j, err)
			}
		}

		batch.Witness.Signatures[i] = xmss.Signature{
			LeafIndex:  leafIndex,
			Randomness: randomness,
			ChainEnds:  chainEnds,
			AuthPath:   authPath,
		}
	}

	return batch, nil
}
