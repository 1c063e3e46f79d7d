package wire

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// envelopePrefix is the marker the reference host places before the hex
// payload inside the wrapped string. It has no meaning to this verifier
// beyond identifying the encoding version; any other value is rejected.
const envelopePrefix = "0x01"

var (
	ErrEmptyInput    = errors.New("wire: envelope has no input entries")
	ErrBadPrefix     = errors.New("wire: envelope payload is missing the 0x01 prefix")
	ErrTooManyInputs = errors.New("wire: envelope carries more than one input entry")
)

type jsonEnvelope struct {
	Input []string `json:"input"`
}

// WrapEnvelope encodes batch bytes the way the reference host does: a
// lowercase-hex string prefixed with "0x01", carried as the sole element of
// a JSON object's "input" array.
func WrapEnvelope(payload []byte) []byte {
	wrapped := envelopePrefix + hex.EncodeToString(payload)
	env := jsonEnvelope{Input: []string{wrapped}}
	// json.Marshal on a fixed, non-cyclic struct of strings never fails.
	out, _ := json.MarshalIndent(env, "", "  ")
	return append(out, '\n')
}

// UnwrapEnvelope reverses WrapEnvelope, returning the raw batch bytes.
func UnwrapEnvelope(raw []byte) ([]byte, error) {
	var env jsonEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("wire: decoding envelope JSON: %w", err)
	}
	if len(env.Input) == 0 {
		return nil, ErrEmptyInput
	}
	if len(env.Input) > 1 {
		return nil, ErrTooManyInputs
	}

	wrapped := env.Input[0]
	if !strings.HasPrefix(wrapped, envelopePrefix) {
		return nil, ErrBadPrefix
	}

	payload, err := hex.DecodeString(strings.TrimPrefix(wrapped, envelopePrefix))
	if err != nil {
		return nil, fmt.Errorf("wire: decoding hex payload: %w", err)
	}
	return payload, nil
}
