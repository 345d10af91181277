package types

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

var payloadArgs abi.Arguments

func init() {
	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		panic(err)
	}
	payloadArgs = abi.Arguments{{Name: "data", Type: stringType}}
}

// EncodePayload ABI encodes s as a single dynamic string.
func EncodePayload(s string) ([]byte, error) {
	bz, err := payloadArgs.Pack(s)
	if err != nil {
		return nil, errorsmod.Wrap(ErrMalformedPayload, err.Error())
	}
	return bz, nil
}

// DecodePayload is the inverse of EncodePayload. Only the canonical encoding
// is accepted, so trailing bytes or a non-standard offset are rejected.
func DecodePayload(bz []byte) (string, error) {
	values, err := payloadArgs.Unpack(bz)
	if err != nil {
		return "", errorsmod.Wrap(ErrMalformedPayload, err.Error())
	}
	if len(values) != 1 {
		return "", errorsmod.Wrapf(ErrMalformedPayload, "expected 1 value, got %d", len(values))
	}
	s, ok := values[0].(string)
	if !ok {
		return "", errorsmod.Wrap(ErrMalformedPayload, "value is not a string")
	}
	canonical, err := payloadArgs.Pack(s)
	if err != nil {
		return "", errorsmod.Wrap(ErrMalformedPayload, err.Error())
	}
	if !bytes.Equal(canonical, bz) {
		return "", errorsmod.Wrap(ErrMalformedPayload, "non-canonical encoding")
	}
	return s, nil
}
