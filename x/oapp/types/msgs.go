package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type MsgSetPeer struct {
	Owner string `json:"owner"`
	Eid   uint32 `json:"eid"`
	// Peer is the hex encoded remote gateway address. A zero address clears
	// the binding.
	Peer string `json:"peer"`
}

type MsgSetPeerResponse struct{}

type MsgSend struct {
	Sender  string        `json:"sender"`
	DstEid  uint32        `json:"dst_eid"`
	Message string        `json:"message"`
	Options hexutil.Bytes `json:"options"`
	// NativeFee is the value attached to the send.
	NativeFee sdkmath.Int `json:"native_fee"`
	AltFee    sdkmath.Int `json:"alt_fee"`
}

type MsgSendResponse struct {
	Receipt MessagingReceipt `json:"receipt"`
}

type MsgFund struct {
	Funder string      `json:"funder"`
	Amount sdkmath.Int `json:"amount"`
}

type MsgFundResponse struct{}

type MsgTransferOwnership struct {
	Owner    string `json:"owner"`
	NewOwner string `json:"new_owner"`
}

type MsgTransferOwnershipResponse struct{}

type MsgSetDelegate struct {
	Owner    string `json:"owner"`
	Delegate string `json:"delegate"`
}

type MsgSetDelegateResponse struct{}

type MsgUpdateParams struct {
	Owner  string `json:"owner"`
	Params Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

type MsgSetEnforcedOptions struct {
	Owner   string        `json:"owner"`
	Eid     uint32        `json:"eid"`
	MsgType uint32        `json:"msg_type"`
	Options hexutil.Bytes `json:"options"`
}

type MsgSetEnforcedOptionsResponse struct{}

type MsgServer interface {
	SetPeer(context.Context, *MsgSetPeer) (*MsgSetPeerResponse, error)
	Send(context.Context, *MsgSend) (*MsgSendResponse, error)
	Fund(context.Context, *MsgFund) (*MsgFundResponse, error)
	TransferOwnership(context.Context, *MsgTransferOwnership) (*MsgTransferOwnershipResponse, error)
	SetDelegate(context.Context, *MsgSetDelegate) (*MsgSetDelegateResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	SetEnforcedOptions(context.Context, *MsgSetEnforcedOptions) (*MsgSetEnforcedOptionsResponse, error)
}
