package app

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"lzgateway/app/config"
	"lzgateway/x/oapp/types"
)

type stubBank struct{}

func (stubBank) GetBalance(_ context.Context, _ sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, sdkmath.ZeroInt())
}

func (stubBank) SendCoinsFromAccountToModule(context.Context, sdk.AccAddress, string, sdk.Coins) error {
	return nil
}

func (stubBank) SendCoinsFromModuleToAccount(context.Context, string, sdk.AccAddress, sdk.Coins) error {
	return nil
}

// flatEndpoint quotes a fixed fee and accepts every send.
type flatEndpoint struct{ eid uint32 }

func (e flatEndpoint) Eid() uint32 { return e.eid }

func (flatEndpoint) Address() sdk.AccAddress { return sdk.AccAddress("endpoint____________") }

func (flatEndpoint) Quote(context.Context, types.MessagingParams, types.PeerAddress) (types.MessagingFee, error) {
	return types.NewMessagingFee(sdkmath.NewInt(7)), nil
}

func (flatEndpoint) Send(_ context.Context, _ types.MessagingParams, fee types.MessagingFee, _, _ sdk.AccAddress) (types.MessagingReceipt, error) {
	return types.MessagingReceipt{Nonce: 1, Fee: fee}, nil
}

func newDeps(t *testing.T, eid uint32) (sdk.Context, GatewayDeps) {
	t.Helper()
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx
	return ctx, GatewayDeps{
		StoreService: runtime.NewKVStoreService(storeKey),
		AddressCodec: addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		Bank:         stubBank{},
		Endpoint:     flatEndpoint{eid: eid},
	}
}

func TestNewGatewaySeedsState(t *testing.T) {
	ctx, deps := newDeps(t, 1)
	peer, err := types.ParsePeerAddress("0x02")
	require.NoError(t, err)

	owner := sdk.AccAddress(make([]byte, 20)).String()
	cfg := config.Config{
		Eid:    1,
		Owner:  owner,
		Params: types.DefaultParams(),
		Peers:  []config.Peer{{Eid: 2, Address: peer}},
	}

	gw, err := NewGateway(ctx, cfg, deps)
	require.NoError(t, err)

	resp, err := gw.QueryServer.Peer(ctx, &types.QueryPeerRequest{Eid: 2})
	require.NoError(t, err)
	require.Equal(t, peer, resp.Peer)

	quote, err := gw.QueryServer.Quote(ctx, &types.QueryQuoteRequest{
		DstEid:  2,
		Message: "Test message.",
		Options: types.NewDeliveryOptions(200_000, sdkmath.ZeroInt()).Encode(),
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), quote.Fee.NativeFee.Int64())

	ownerResp, err := gw.QueryServer.Owner(ctx, &types.QueryOwnerRequest{})
	require.NoError(t, err)
	require.Equal(t, owner, ownerResp.Owner)
}

func TestNewGatewayRejectsMismatchedEndpoint(t *testing.T) {
	ctx, deps := newDeps(t, 5)
	cfg := config.Config{Eid: 1, Params: types.DefaultParams()}

	_, err := NewGateway(ctx, cfg, deps)
	require.ErrorIs(t, err, ErrEndpointMismatch)

	cfg.Eid = 0
	_, err = NewGateway(ctx, cfg, deps)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
