package xmss

import (
	"crypto/sha256"
	"encoding/binary"
)

// StatementCommitment computes a 32-byte SHA-256 commitment to a statement:
// k (4 LE) || ep (8 LE) || mlen (4 LE) || m || pkslen (4 LE) || for each
// public key, root || parameter verbatim. Equal statements always produce
// equal commitments; this is a pure function with no dependence on witness
// data.
func StatementCommitment(stmt Statement) [32]byte {
	buf := make([]byte, 0, 4+8+4+len(stmt.Message)+4+len(stmt.PublicKeys)*(HashLenBytes+ParameterLenBytes))

	var kBuf [4]byte
	binary.LittleEndian.PutUint32(kBuf[:], stmt.K)
	buf = append(buf, kBuf[:]...)

	var epBuf [8]byte
	binary.LittleEndian.PutUint64(epBuf[:], stmt.Epoch)
	buf = append(buf, epBuf[:]...)

	var mlenBuf [4]byte
	binary.LittleEndian.PutUint32(mlenBuf[:], uint32(len(stmt.Message)))
	buf = append(buf, mlenBuf[:]...)
	buf = append(buf, stmt.Message...)

	var pklenBuf [4]byte
	binary.LittleEndian.PutUint32(pklenBuf[:], uint32(len(stmt.PublicKeys)))
	buf = append(buf, pklenBuf[:]...)

	for _, pk := range stmt.PublicKeys {
		buf = append(buf, pk.Root...)
		buf = append(buf, pk.Parameter...)
	}

	return sha256.Sum256(buf)
}
