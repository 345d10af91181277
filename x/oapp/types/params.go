package types

import (
	"encoding/json"
	"fmt"
	"strings"

	collcodec "cosmossdk.io/collections/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	CallbackPayloadEcho = "echo"
	CallbackPayloadAck  = "ack"

	ExcessFeeReject = "reject"
	ExcessFeeRefund = "refund"

	DefaultCallbackGasLimit uint64 = 200_000
	DefaultAckPayload              = "ack"
)

type Params struct {
	// AutoCallback makes every processed inbound message trigger a send back
	// to its origin, paid from the gateway balance.
	AutoCallback     bool   `json:"auto_callback"`
	CallbackGasLimit uint64 `json:"callback_gas_limit"`
	CallbackPayload  string `json:"callback_payload"`
	AckPayload       string `json:"ack_payload"`
	ExcessFeePolicy  string `json:"excess_fee_policy"`
	FeeDenom         string `json:"fee_denom"`
}

func NewParams() Params {
	p := DefaultParams()
	return p
}

func DefaultParams() Params {
	return Params{
		AutoCallback:     false,
		CallbackGasLimit: DefaultCallbackGasLimit,
		CallbackPayload:  CallbackPayloadEcho,
		AckPayload:       DefaultAckPayload,
		ExcessFeePolicy:  ExcessFeeReject,
		FeeDenom:         sdk.DefaultBondDenom,
	}
}

func ValidateParams(p Params) error {
	if p.CallbackGasLimit == 0 {
		return fmt.Errorf("callback_gas_limit must be > 0")
	}
	switch p.CallbackPayload {
	case CallbackPayloadEcho, CallbackPayloadAck:
	default:
		return fmt.Errorf("callback_payload must be %q or %q", CallbackPayloadEcho, CallbackPayloadAck)
	}
	if len(p.AckPayload) > AckPayloadMaxLen {
		return fmt.Errorf("ack_payload exceeds %d bytes", AckPayloadMaxLen)
	}
	switch p.ExcessFeePolicy {
	case ExcessFeeReject, ExcessFeeRefund:
	default:
		return fmt.Errorf("excess_fee_policy must be %q or %q", ExcessFeeReject, ExcessFeeRefund)
	}
	if err := sdk.ValidateDenom(strings.TrimSpace(p.FeeDenom)); err != nil {
		return fmt.Errorf("fee_denom: %w", err)
	}
	return nil
}

func (p Params) Validate() error { return ValidateParams(p) }

// CallbackMessage returns the text sent back for an inbound payload.
func (p Params) CallbackMessage(inbound string) string {
	if p.CallbackPayload == CallbackPayloadAck {
		return p.AckPayload
	}
	return inbound
}

// ParamsValueCodec stores Params as JSON in collections.
var ParamsValueCodec collcodec.ValueCodec[Params] = paramsValueCodec{}

type paramsValueCodec struct{}

func (paramsValueCodec) Encode(p Params) ([]byte, error) { return json.Marshal(p) }

func (paramsValueCodec) Decode(bz []byte) (Params, error) {
	var p Params
	err := json.Unmarshal(bz, &p)
	return p, err
}

func (c paramsValueCodec) EncodeJSON(p Params) ([]byte, error) { return c.Encode(p) }

func (c paramsValueCodec) DecodeJSON(bz []byte) (Params, error) { return c.Decode(bz) }

func (paramsValueCodec) Stringify(p Params) string {
	return fmt.Sprintf("%+v", p)
}

func (paramsValueCodec) ValueType() string { return "oapp.Params" }
