package types

import (
	sdkmath "cosmossdk.io/math"
)

// MessagingFee is the price of a send. AltFee is the alternative fee token
// amount, always zero for native-only payers.
type MessagingFee struct {
	NativeFee sdkmath.Int `json:"native_fee"`
	AltFee    sdkmath.Int `json:"alt_fee"`
}

func NewMessagingFee(native sdkmath.Int) MessagingFee {
	return MessagingFee{NativeFee: native, AltFee: sdkmath.ZeroInt()}
}

// Normalize replaces nil amounts with zero.
func (f MessagingFee) Normalize() MessagingFee {
	if f.NativeFee.IsNil() {
		f.NativeFee = sdkmath.ZeroInt()
	}
	if f.AltFee.IsNil() {
		f.AltFee = sdkmath.ZeroInt()
	}
	return f
}

// MessagingParams is what the gateway hands to the endpoint.
type MessagingParams struct {
	DstEid   uint32      `json:"dst_eid"`
	Receiver PeerAddress `json:"receiver"`
	Message  []byte      `json:"message"`
	Options  []byte      `json:"options"`
	PayInAlt bool        `json:"pay_in_alt"`
}

// MessagingReceipt is returned by the endpoint once it accepted a send.
type MessagingReceipt struct {
	Guid  [32]byte     `json:"guid"`
	Nonce uint64       `json:"nonce"`
	Fee   MessagingFee `json:"fee"`
}

// Origin describes where an inbound message came from.
type Origin struct {
	SrcEid uint32      `json:"src_eid"`
	Sender PeerAddress `json:"sender"`
	Nonce  uint64      `json:"nonce"`
}
