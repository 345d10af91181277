package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params *Params `json:"params"`
}

type QueryOwnerRequest struct{}

type QueryOwnerResponse struct {
	Owner    string `json:"owner"`
	Delegate string `json:"delegate"`
}

type QueryPeerRequest struct {
	Eid uint32 `json:"eid"`
}

type QueryPeerResponse struct {
	Peer PeerAddress `json:"peer"`
}

type QueryPeersRequest struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

type QueryPeersResponse struct {
	Peers []PeerBinding `json:"peers"`
	Total uint64        `json:"total"`
}

type QueryQuoteRequest struct {
	DstEid   uint32        `json:"dst_eid"`
	Message  string        `json:"message"`
	Options  hexutil.Bytes `json:"options"`
	PayInAlt bool          `json:"pay_in_alt"`
}

type QueryQuoteResponse struct {
	Fee MessagingFee `json:"fee"`
}

type QueryDataRequest struct{}

type QueryDataResponse struct {
	Data         string `json:"data"`
	InboundCount uint64 `json:"inbound_count"`
}

type QueryBalanceRequest struct{}

type QueryBalanceResponse struct {
	Address string      `json:"address"`
	Amount  sdkmath.Int `json:"amount"`
	Denom   string      `json:"denom"`
}

type QueryAllowInitializePathRequest struct {
	Origin Origin `json:"origin"`
}

type QueryAllowInitializePathResponse struct {
	Allowed bool `json:"allowed"`
}

type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Owner(context.Context, *QueryOwnerRequest) (*QueryOwnerResponse, error)
	Peer(context.Context, *QueryPeerRequest) (*QueryPeerResponse, error)
	Peers(context.Context, *QueryPeersRequest) (*QueryPeersResponse, error)
	Quote(context.Context, *QueryQuoteRequest) (*QueryQuoteResponse, error)
	Data(context.Context, *QueryDataRequest) (*QueryDataResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	AllowInitializePath(context.Context, *QueryAllowInitializePathRequest) (*QueryAllowInitializePathResponse, error)
}
