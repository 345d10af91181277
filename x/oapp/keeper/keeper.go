package keeper

import (
	"context"
	"errors"
	"fmt"

	"lzgateway/x/oapp/types"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec

	Schema   collections.Schema
	Params   collections.Item[types.Params]
	Owner    collections.Item[[]byte]
	Delegate collections.Item[[]byte]
	// Peers maps a remote endpoint id to the 32 byte gateway address trusted there.
	Peers           collections.Map[uint32, []byte]
	EnforcedOptions collections.Map[collections.Pair[uint32, uint32], []byte]
	Data            collections.Item[string]
	InboundCount    collections.Sequence

	bank     types.BankKeeper
	endpoint types.EndpointKeeper
}

func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,

		Params:          collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValueCodec),
		Owner:           collections.NewItem(sb, types.OwnerKey, "owner", collections.BytesValue),
		Delegate:        collections.NewItem(sb, types.DelegateKey, "delegate", collections.BytesValue),
		Peers:           collections.NewMap(sb, types.PeerKey, "peers", collections.Uint32Key, collections.BytesValue),
		EnforcedOptions: collections.NewMap(sb, types.EnforcedOptionsKey, "enforced_options", collections.PairKeyCodec(collections.Uint32Key, collections.Uint32Key), collections.BytesValue),
		Data:            collections.NewItem(sb, types.DataKey, "data", collections.StringValue),
		InboundCount:    collections.NewSequence(sb, types.InboundSeqKey, "inbound_count"),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

func (k *Keeper) SetBankKeeper(b types.BankKeeper)         { k.bank = b }
func (k *Keeper) SetEndpointKeeper(e types.EndpointKeeper) { k.endpoint = e }

func (k Keeper) AddressCodec() address.Codec { return k.addressCodec }

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// ModuleAddress is the account holding the gateway balance.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GatewayAddress is how remote peers refer to this gateway.
func (k Keeper) GatewayAddress() types.PeerAddress {
	return types.PeerAddressFromAccAddress(k.ModuleAddress())
}

func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.DefaultParams()
	}
	return params
}

func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	return k.Params.Set(ctx, params)
}

// GetData returns the last received payload.
func (k Keeper) GetData(ctx context.Context) (string, error) {
	data, err := k.Data.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultData, nil
	}
	return data, err
}

// HeldBalance is the gateway's spendable balance in the fee denom.
func (k Keeper) HeldBalance(ctx context.Context) sdkmath.Int {
	if k.bank == nil {
		return sdkmath.ZeroInt()
	}
	return k.bank.GetBalance(ctx, k.ModuleAddress(), k.GetParams(ctx).FeeDenom).Amount
}

func (k Keeper) moveToModule(ctx context.Context, from sdk.AccAddress, amount sdkmath.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	if k.bank == nil {
		return fmt.Errorf("bank keeper not set")
	}
	coins := sdk.NewCoins(sdk.NewCoin(k.GetParams(ctx).FeeDenom, amount))
	return k.bank.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, coins)
}

func (k Keeper) stringAddress(addr []byte) string {
	if len(addr) == 0 {
		return ""
	}
	s, err := k.addressCodec.BytesToString(addr)
	if err != nil {
		return ""
	}
	return s
}
