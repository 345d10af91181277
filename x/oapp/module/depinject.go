package oapp

import (
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"

	"lzgateway/x/oapp/keeper"
	"lzgateway/x/oapp/types"
)

type ModuleInputs struct {
	depinject.In

	StoreService store.KVStoreService
	AddressCodec address.Codec

	BankKeeper types.BankKeeper
	Endpoint   types.EndpointKeeper `optional:"true"`
}

type ModuleOutputs struct {
	depinject.Out

	OAppKeeper keeper.Keeper
}

func ProvideModule(in ModuleInputs) ModuleOutputs {
	k := keeper.NewKeeper(in.StoreService, in.AddressCodec)
	k.SetBankKeeper(in.BankKeeper)
	if in.Endpoint != nil {
		k.SetEndpointKeeper(in.Endpoint)
	}
	return ModuleOutputs{OAppKeeper: k}
}
