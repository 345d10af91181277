package keeper

import (
	"context"

	"lzgateway/x/oapp/types"

	errorsmod "cosmossdk.io/errors"
)

const (
	DefaultQueryLimit uint64 = 50
	MaxQueryLimit     uint64 = 200
)

func clampLimit(requested uint64) uint64 {
	limit := requested
	if limit == 0 {
		limit = DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		limit = MaxQueryLimit
	}
	return limit
}

type queryServer struct{ Keeper }

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return &queryServer{Keeper: k}
}

func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params := q.GetParams(ctx)
	return &types.QueryParamsResponse{Params: &params}, nil
}

func (q queryServer) Owner(ctx context.Context, _ *types.QueryOwnerRequest) (*types.QueryOwnerResponse, error) {
	owner, err := q.GetOwner(ctx)
	if err != nil {
		return nil, err
	}
	delegate, err := q.GetDelegate(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryOwnerResponse{
		Owner:    q.stringAddress(owner),
		Delegate: q.stringAddress(delegate),
	}, nil
}

func (q queryServer) Peer(ctx context.Context, req *types.QueryPeerRequest) (*types.QueryPeerResponse, error) {
	peer, found, err := q.GetPeer(ctx, req.Eid)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errorsmod.Wrapf(types.ErrNotFound, "no peer for eid %d", req.Eid)
	}
	return &types.QueryPeerResponse{Peer: peer}, nil
}

func (q queryServer) Peers(ctx context.Context, req *types.QueryPeersRequest) (*types.QueryPeersResponse, error) {
	limit := clampLimit(req.Limit)

	offset := req.Offset
	total := uint64(0)
	collected := make([]types.PeerBinding, 0, limit)

	err := q.Keeper.Peers.Walk(ctx, nil, func(eid uint32, bz []byte) (bool, error) {
		total++
		if total <= offset {
			return false, nil
		}
		if uint64(len(collected)) >= limit {
			return false, nil
		}
		peer, err := types.PeerAddressFromBytes(bz)
		if err != nil {
			return true, err
		}
		collected = append(collected, types.PeerBinding{Eid: eid, Address: peer})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryPeersResponse{
		Peers: collected,
		Total: total,
	}, nil
}

func (q queryServer) Quote(ctx context.Context, req *types.QueryQuoteRequest) (*types.QueryQuoteResponse, error) {
	if len(req.Message) > types.MessageMaxLen {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "message exceeds %d bytes", types.MessageMaxLen)
	}
	fee, err := q.Keeper.Quote(ctx, req.DstEid, req.Message, req.Options, req.PayInAlt)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteResponse{Fee: fee}, nil
}

func (q queryServer) Data(ctx context.Context, _ *types.QueryDataRequest) (*types.QueryDataResponse, error) {
	data, err := q.GetData(ctx)
	if err != nil {
		return nil, err
	}
	count, err := q.InboundCount.Peek(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryDataResponse{Data: data, InboundCount: count}, nil
}

func (q queryServer) Balance(ctx context.Context, _ *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	return &types.QueryBalanceResponse{
		Address: q.stringAddress(q.ModuleAddress()),
		Amount:  q.HeldBalance(ctx),
		Denom:   q.GetParams(ctx).FeeDenom,
	}, nil
}

func (q queryServer) AllowInitializePath(ctx context.Context, req *types.QueryAllowInitializePathRequest) (*types.QueryAllowInitializePathResponse, error) {
	allowed, err := q.Keeper.AllowInitializePath(ctx, req.Origin)
	if err != nil {
		return nil, err
	}
	return &types.QueryAllowInitializePathResponse{Allowed: allowed}, nil
}
