package keeper

import (
	"context"
	"errors"
	"fmt"

	"lzgateway/x/oapp/types"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SetPeer binds eid to peer. Only the owner may call it; a zero peer removes
// the binding.
func (k Keeper) SetPeer(ctx context.Context, caller sdk.AccAddress, eid uint32, peer types.PeerAddress) error {
	if err := k.assertOwner(ctx, caller); err != nil {
		return err
	}
	if peer.IsZero() {
		if err := k.Peers.Remove(ctx, eid); err != nil {
			return err
		}
	} else if err := k.Peers.Set(ctx, eid, peer.Bytes()); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePeerSet,
			sdk.NewAttribute(types.AttributeKeyEid, fmt.Sprintf("%d", eid)),
			sdk.NewAttribute(types.AttributeKeyPeer, peer.Hex()),
		),
	)
	k.Logger(ctx).Info("peer set", "eid", eid, "peer", peer.Hex())
	return nil
}

func (k Keeper) GetPeer(ctx context.Context, eid uint32) (types.PeerAddress, bool, error) {
	bz, err := k.Peers.Get(ctx, eid)
	if errors.Is(err, collections.ErrNotFound) {
		return types.PeerAddress{}, false, nil
	}
	if err != nil {
		return types.PeerAddress{}, false, err
	}
	peer, err := types.PeerAddressFromBytes(bz)
	if err != nil {
		return types.PeerAddress{}, false, err
	}
	return peer, true, nil
}

func (k Keeper) IsPeer(ctx context.Context, eid uint32, candidate types.PeerAddress) (bool, error) {
	if candidate.IsZero() {
		return false, nil
	}
	peer, found, err := k.GetPeer(ctx, eid)
	if err != nil || !found {
		return false, err
	}
	return peer == candidate, nil
}

// AllowInitializePath reports whether the endpoint may open a messaging
// path from origin.
func (k Keeper) AllowInitializePath(ctx context.Context, origin types.Origin) (bool, error) {
	return k.IsPeer(ctx, origin.SrcEid, origin.Sender)
}

func (k Keeper) enforcedOptions(ctx context.Context, eid, msgType uint32) ([]byte, error) {
	bz, err := k.EnforcedOptions.Get(ctx, collections.Join(eid, msgType))
	if errors.Is(err, collections.ErrNotFound) {
		return nil, nil
	}
	return bz, err
}
