package keeper_test

import (
	"context"
	"encoding/binary"
	"fmt"
	"testing"

	"lzgateway/x/oapp/keeper"
	"lzgateway/x/oapp/types"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Mock transport pricing: base + gas + drop + per byte of payload.
const (
	mockBaseFee      int64 = 1_000
	mockFeePerByte   int64 = 10
	mockEndpointName       = "endpoint"
	mockExecutorName       = "executor"
)

type packet struct {
	origin   types.Origin
	dstEid   uint32
	receiver types.PeerAddress
	guid     [32]byte
	message  []byte
	options  types.DeliveryOptions
}

type deliveryResult struct {
	packet packet
	err    error
}

// mockNetwork routes packets between chains. Sends are queued and only
// delivered when the test calls deliver, like a real relayer.
type mockNetwork struct {
	t         *testing.T
	chains    map[uint32]*chain
	queue     []packet
	delivered []deliveryResult
}

type chain struct {
	eid      uint32
	ctx      sdk.Context
	keeper   keeper.Keeper
	bank     *mockBankKeeper
	endpoint *mockEndpoint
}

type mockEndpoint struct {
	net    *mockNetwork
	eid    uint32
	bank   *mockBankKeeper
	nonces map[string]uint64
	paused bool
	// failSend makes Send fail after quoting succeeded.
	failSend error
}

func newMockNetwork(t *testing.T) *mockNetwork {
	return &mockNetwork{t: t, chains: make(map[uint32]*chain)}
}

func (n *mockNetwork) addChain(eid uint32) *chain {
	n.t.Helper()

	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(n.t, storeKey, storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%d", eid))).Ctx
	ctx = ctx.WithEventManager(sdk.NewEventManager())

	bank := newMockBankKeeper(storeService)
	endpoint := &mockEndpoint{net: n, eid: eid, bank: bank, nonces: make(map[string]uint64)}

	k := keeper.NewKeeper(storeService, addressCodec)
	k.SetBankKeeper(bank)
	k.SetEndpointKeeper(endpoint)

	c := &chain{eid: eid, ctx: ctx, keeper: k, bank: bank, endpoint: endpoint}
	n.chains[eid] = c
	return c
}

func (e *mockEndpoint) Eid() uint32 { return e.eid }

func (e *mockEndpoint) Address() sdk.AccAddress {
	return authtypes.NewModuleAddress(mockEndpointName)
}

func (e *mockEndpoint) Quote(_ context.Context, params types.MessagingParams, _ types.PeerAddress) (types.MessagingFee, error) {
	if e.paused {
		return types.MessagingFee{}, errorsmod.Wrap(types.ErrTransportUnavailable, "endpoint paused")
	}
	if _, ok := e.net.chains[params.DstEid]; !ok || params.DstEid == e.eid {
		return types.MessagingFee{}, errorsmod.Wrapf(types.ErrUnsupportedDestination, "eid %d", params.DstEid)
	}
	if params.PayInAlt {
		return types.MessagingFee{}, errorsmod.Wrap(types.ErrInvalidRequest, "alt token not configured")
	}
	opts, err := types.ParseDeliveryOptions(params.Options)
	if err != nil {
		return types.MessagingFee{}, err
	}
	native := sdkmath.NewInt(mockBaseFee).
		Add(sdkmath.NewIntFromUint64(opts.RemoteGasLimit)).
		Add(opts.NativeDrop).
		Add(sdkmath.NewInt(mockFeePerByte * int64(len(params.Message))))
	return types.NewMessagingFee(native), nil
}

func (e *mockEndpoint) Send(ctx context.Context, params types.MessagingParams, fee types.MessagingFee, sender, refund sdk.AccAddress) (types.MessagingReceipt, error) {
	required, err := e.Quote(ctx, params, types.PeerAddressFromAccAddress(sender))
	if err != nil {
		return types.MessagingReceipt{}, err
	}
	if e.failSend != nil {
		return types.MessagingReceipt{}, e.failSend
	}
	if fee.NativeFee.LT(required.NativeFee) {
		return types.MessagingReceipt{}, errorsmod.Wrapf(types.ErrInsufficientFee, "%s < %s", fee.NativeFee, required.NativeFee)
	}
	paid := sdk.NewCoins(sdk.NewCoin(sdk.DefaultBondDenom, fee.NativeFee))
	if err := e.bank.SendCoins(ctx, sender, e.Address(), paid); err != nil {
		return types.MessagingReceipt{}, errorsmod.Wrap(types.ErrInsufficientFee, err.Error())
	}
	if surplus := fee.NativeFee.Sub(required.NativeFee); surplus.IsPositive() {
		if err := e.bank.SendCoins(ctx, e.Address(), refund, sdk.NewCoins(sdk.NewCoin(sdk.DefaultBondDenom, surplus))); err != nil {
			return types.MessagingReceipt{}, err
		}
	}

	opts, _ := types.ParseDeliveryOptions(params.Options)
	from := types.PeerAddressFromAccAddress(sender)
	pathKey := fmt.Sprintf("%s/%d/%s", from.Hex(), params.DstEid, params.Receiver.Hex())
	e.nonces[pathKey]++
	nonce := e.nonces[pathKey]

	guid := crypto.Keccak256Hash(
		binary.BigEndian.AppendUint64(nil, nonce),
		binary.BigEndian.AppendUint32(nil, e.eid),
		from.Bytes(),
		binary.BigEndian.AppendUint32(nil, params.DstEid),
		params.Receiver.Bytes(),
	)

	e.net.queue = append(e.net.queue, packet{
		origin:   types.Origin{SrcEid: e.eid, Sender: from, Nonce: nonce},
		dstEid:   params.DstEid,
		receiver: params.Receiver,
		guid:     guid,
		message:  params.Message,
		options:  opts,
	})
	return types.MessagingReceipt{Guid: guid, Nonce: nonce, Fee: required}, nil
}

// deliver drains the queue, including packets queued by callbacks, and
// returns what happened to each packet in order.
func (n *mockNetwork) deliver() []deliveryResult {
	start := len(n.delivered)
	for len(n.queue) > 0 {
		p := n.queue[0]
		n.queue = n.queue[1:]
		n.delivered = append(n.delivered, deliveryResult{packet: p, err: n.deliverOne(p)})
	}
	return n.delivered[start:]
}

func (n *mockNetwork) deliverOne(p packet) error {
	dst, ok := n.chains[p.dstEid]
	if !ok {
		return types.ErrUnsupportedDestination
	}
	cacheCtx, write := dst.ctx.CacheContext()
	if p.options.NativeDrop.IsPositive() {
		drop := sdk.NewCoins(sdk.NewCoin(sdk.DefaultBondDenom, p.options.NativeDrop))
		if err := dst.bank.mint(cacheCtx, p.receiver.AccAddress(), drop); err != nil {
			return err
		}
	}
	err := dst.keeper.LzReceive(cacheCtx, dst.endpoint.Address(), p.origin, p.guid, p.message, authtypes.NewModuleAddress(mockExecutorName), nil)
	if err != nil {
		return err
	}
	write()
	return nil
}
