package types

import (
	"encoding/binary"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Layout of type 3 options understood by the endpoint executor.
const (
	OptionsType3        uint16 = 3
	ExecutorWorkerID    uint8  = 1
	OptionTypeLzReceive uint8  = 1

	uint128Len = 16
)

// DeliveryOptions are the execution parameters for the remote side of a send.
type DeliveryOptions struct {
	RemoteGasLimit uint64
	NativeDrop     sdkmath.Int
}

func NewDeliveryOptions(gasLimit uint64, nativeDrop sdkmath.Int) DeliveryOptions {
	if nativeDrop.IsNil() {
		nativeDrop = sdkmath.ZeroInt()
	}
	return DeliveryOptions{RemoteGasLimit: gasLimit, NativeDrop: nativeDrop}
}

func (o DeliveryOptions) Validate() error {
	if o.RemoteGasLimit == 0 {
		return errorsmod.Wrap(ErrInvalidOptions, "remote gas limit must be > 0")
	}
	if o.NativeDrop.IsNil() {
		return nil
	}
	if o.NativeDrop.IsNegative() {
		return errorsmod.Wrap(ErrInvalidOptions, "native drop must not be negative")
	}
	if o.NativeDrop.BigInt().BitLen() > 128 {
		return errorsmod.Wrap(ErrInvalidOptions, "native drop exceeds uint128")
	}
	return nil
}

// Encode returns the type 3 encoding with a single executor lzReceive option.
// The value field is omitted when no native drop is requested.
func (o DeliveryOptions) Encode() []byte {
	params := uint128Bytes(new(big.Int).SetUint64(o.RemoteGasLimit))
	if !o.NativeDrop.IsNil() && o.NativeDrop.IsPositive() {
		params = append(params, uint128Bytes(o.NativeDrop.BigInt())...)
	}

	out := make([]byte, 0, 2+4+len(params))
	out = binary.BigEndian.AppendUint16(out, OptionsType3)
	out = append(out, ExecutorWorkerID)
	out = binary.BigEndian.AppendUint16(out, uint16(len(params)+1))
	out = append(out, OptionTypeLzReceive)
	return append(out, params...)
}

func (o DeliveryOptions) Hex() string { return hexutil.Encode(o.Encode()) }

// ParseDeliveryOptions decodes type 3 options. Multiple executor lzReceive
// options add up; options for other workers or types are skipped.
func ParseDeliveryOptions(bz []byte) (DeliveryOptions, error) {
	out := NewDeliveryOptions(0, sdkmath.ZeroInt())
	if len(bz) < 2 {
		return out, errorsmod.Wrap(ErrInvalidOptions, "options too short")
	}
	if t := binary.BigEndian.Uint16(bz); t != OptionsType3 {
		return out, errorsmod.Wrapf(ErrInvalidOptions, "unsupported options type %d", t)
	}

	cursor := 2
	for cursor < len(bz) {
		if len(bz)-cursor < 3 {
			return out, errorsmod.Wrapf(ErrInvalidOptions, "truncated option header at %d", cursor)
		}
		worker := bz[cursor]
		size := int(binary.BigEndian.Uint16(bz[cursor+1:]))
		cursor += 3
		if size == 0 {
			return out, errorsmod.Wrapf(ErrInvalidOptions, "empty option at %d", cursor)
		}
		if len(bz)-cursor < size {
			return out, errorsmod.Wrapf(ErrInvalidOptions, "truncated option body at %d", cursor)
		}
		option := bz[cursor : cursor+size]
		cursor += size

		if worker != ExecutorWorkerID || option[0] != OptionTypeLzReceive {
			continue
		}
		gas, value, err := decodeLzReceiveParams(option[1:])
		if err != nil {
			return out, err
		}
		sum := new(big.Int).Add(new(big.Int).SetUint64(out.RemoteGasLimit), gas)
		if !sum.IsUint64() {
			return out, errorsmod.Wrap(ErrInvalidOptions, "gas limit overflow")
		}
		out.RemoteGasLimit = sum.Uint64()
		out.NativeDrop = out.NativeDrop.Add(sdkmath.NewIntFromBigInt(value))
	}
	return out, nil
}

func decodeLzReceiveParams(params []byte) (*big.Int, *big.Int, error) {
	switch len(params) {
	case uint128Len:
		return new(big.Int).SetBytes(params), new(big.Int), nil
	case 2 * uint128Len:
		return new(big.Int).SetBytes(params[:uint128Len]), new(big.Int).SetBytes(params[uint128Len:]), nil
	default:
		return nil, nil, errorsmod.Wrapf(ErrInvalidOptions, "invalid lzReceive option length %d", len(params))
	}
}

// CombineOptions appends caller options to the owner-enforced ones. Either
// side may be empty; the caller side must be type 3 when both are present.
func CombineOptions(enforced, extra []byte) ([]byte, error) {
	if len(enforced) == 0 {
		return extra, nil
	}
	if len(extra) == 0 {
		return enforced, nil
	}
	if len(extra) < 2 || binary.BigEndian.Uint16(extra) != OptionsType3 {
		return nil, errorsmod.Wrap(ErrInvalidOptions, "extra options must be type 3")
	}
	out := make([]byte, 0, len(enforced)+len(extra)-2)
	out = append(out, enforced...)
	return append(out, extra[2:]...), nil
}

func uint128Bytes(v *big.Int) []byte {
	return v.FillBytes(make([]byte, uint128Len))
}
