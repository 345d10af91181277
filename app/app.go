package app

import (
	"context"

	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	errorsmod "cosmossdk.io/errors"

	"lzgateway/app/config"
	"lzgateway/x/oapp/keeper"
	oapp "lzgateway/x/oapp/module"
	"lzgateway/x/oapp/types"
)

const Name = "lzgateway"

// GatewayDeps are the host chain services a gateway is built from.
type GatewayDeps struct {
	StoreService store.KVStoreService
	AddressCodec address.Codec
	Bank         types.BankKeeper
	Endpoint     types.EndpointKeeper
}

func ProvideStoreService(d GatewayDeps) store.KVStoreService   { return d.StoreService }
func ProvideAddressCodec(d GatewayDeps) address.Codec          { return d.AddressCodec }
func ProvideBankKeeper(d GatewayDeps) types.BankKeeper         { return d.Bank }
func ProvideEndpointKeeper(d GatewayDeps) types.EndpointKeeper { return d.Endpoint }

type Gateway struct {
	Config      config.Config
	Keeper      keeper.Keeper
	MsgServer   types.MsgServer
	QueryServer types.QueryServer
}

// NewGateway assembles a keeper from deps and seeds its state from cfg.
func NewGateway(ctx context.Context, cfg config.Config, deps GatewayDeps) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Endpoint != nil && deps.Endpoint.Eid() != cfg.Eid {
		return nil, errorsmod.Wrapf(ErrEndpointMismatch, "config eid %d, endpoint eid %d", cfg.Eid, deps.Endpoint.Eid())
	}

	var k keeper.Keeper
	if err := depinject.Inject(
		depinject.Configs(
			depinject.Supply(deps),
			depinject.Provide(
				ProvideStoreService,
				ProvideAddressCodec,
				ProvideBankKeeper,
				ProvideEndpointKeeper,
				oapp.ProvideModule,
			),
		),
		&k,
	); err != nil {
		return nil, err
	}

	gs, err := cfg.Genesis()
	if err != nil {
		return nil, err
	}
	if err := k.InitGenesis(ctx, *gs); err != nil {
		return nil, err
	}
	k.Logger(ctx).Info("gateway initialised", "eid", cfg.Eid, "peers", len(gs.Peers), "auto_callback", cfg.Params.AutoCallback)

	return &Gateway{
		Config:      cfg,
		Keeper:      k,
		MsgServer:   keeper.NewMsgServerImpl(k),
		QueryServer: keeper.NewQueryServerImpl(k),
	}, nil
}
