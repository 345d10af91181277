package keeper

import (
	"context"

	"lzgateway/x/oapp/types"

	"cosmossdk.io/collections"
)

func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if genState.Params != nil {
		if err := k.SetParams(ctx, *genState.Params); err != nil {
			return err
		}
	}

	if genState.Owner != "" {
		owner, err := k.addressCodec.StringToBytes(genState.Owner)
		if err != nil {
			return err
		}
		if err := k.Owner.Set(ctx, owner); err != nil {
			return err
		}
	}
	if genState.Delegate != "" {
		delegate, err := k.addressCodec.StringToBytes(genState.Delegate)
		if err != nil {
			return err
		}
		if err := k.Delegate.Set(ctx, delegate); err != nil {
			return err
		}
	}

	for _, p := range genState.Peers {
		if err := k.Peers.Set(ctx, p.Eid, p.Address.Bytes()); err != nil {
			return err
		}
	}

	for _, o := range genState.EnforcedOptions {
		if err := k.EnforcedOptions.Set(ctx, collections.Join(o.Eid, o.MsgType), o.Options); err != nil {
			return err
		}
	}

	data := genState.Data
	if data == "" {
		data = types.DefaultData
	}
	if err := k.Data.Set(ctx, data); err != nil {
		return err
	}

	return k.InboundCount.Set(ctx, genState.InboundCount)
}

func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()

	if params, err := k.Params.Get(ctx); err == nil {
		genesis.Params = &params
	}

	owner, err := k.GetOwner(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Owner = k.stringAddress(owner)

	delegate, err := k.GetDelegate(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Delegate = k.stringAddress(delegate)

	peers := make([]types.PeerBinding, 0)
	err = k.Peers.Walk(ctx, nil, func(eid uint32, bz []byte) (bool, error) {
		peer, err := types.PeerAddressFromBytes(bz)
		if err != nil {
			return true, err
		}
		peers = append(peers, types.PeerBinding{Eid: eid, Address: peer})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	genesis.Peers = peers

	options := make([]types.EnforcedOption, 0)
	err = k.EnforcedOptions.Walk(ctx, nil, func(key collections.Pair[uint32, uint32], bz []byte) (bool, error) {
		options = append(options, types.EnforcedOption{Eid: key.K1(), MsgType: key.K2(), Options: bz})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	genesis.EnforcedOptions = options

	if genesis.Data, err = k.GetData(ctx); err != nil {
		return nil, err
	}
	if genesis.InboundCount, err = k.InboundCount.Peek(ctx); err != nil {
		return nil, err
	}

	return genesis, nil
}
