package keeper

import (
	"context"
	"errors"
	"fmt"

	"lzgateway/app/metrics"
	"lzgateway/x/oapp/types"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// LzReceive is called by the endpoint to deliver a message from a peer. The
// payload is stored before any callback is attempted, and a failed callback
// does not undo it.
func (k Keeper) LzReceive(
	ctx context.Context,
	caller sdk.AccAddress,
	origin types.Origin,
	guid [32]byte,
	message []byte,
	executor sdk.AccAddress,
	extraData []byte,
) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	logger := k.Logger(ctx)
	logger.Debug("receiving", "phase", types.PhaseReceiving, "src_eid", origin.SrcEid, "nonce", origin.Nonce, "executor", k.stringAddress(executor), "extra_data", len(extraData))

	if k.endpoint == nil || !caller.Equals(k.endpoint.Address()) {
		metrics.MessagesReceived().WithLabelValues("not_endpoint").Inc()
		return errorsmod.Wrapf(types.ErrOnlyEndpoint, "caller %s", k.stringAddress(caller))
	}

	trusted, err := k.IsPeer(ctx, origin.SrcEid, origin.Sender)
	if err != nil {
		return err
	}
	if !trusted {
		metrics.MessagesReceived().WithLabelValues("untrusted").Inc()
		return errorsmod.Wrapf(types.ErrUntrustedSender, "sender %s on eid %d", origin.Sender, origin.SrcEid)
	}

	text, err := types.DecodePayload(message)
	if err != nil {
		metrics.MessagesReceived().WithLabelValues("malformed").Inc()
		return err
	}

	if err := k.Data.Set(ctx, text); err != nil {
		return err
	}
	count, err := k.InboundCount.Next(ctx)
	if err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReceive,
			sdk.NewAttribute(types.AttributeKeyPhase, types.PhaseProcessed.String()),
			sdk.NewAttribute(types.AttributeKeySrcEid, fmt.Sprintf("%d", origin.SrcEid)),
			sdk.NewAttribute(types.AttributeKeySender, origin.Sender.Hex()),
			sdk.NewAttribute(types.AttributeKeyNonce, fmt.Sprintf("%d", origin.Nonce)),
			sdk.NewAttribute(types.AttributeKeyGUID, hexutil.Encode(guid[:])),
		),
	)
	logger.Info("message received", "phase", types.PhaseProcessed, "src_eid", origin.SrcEid, "nonce", origin.Nonce, "inbound_count", count+1)
	metrics.MessagesReceived().WithLabelValues("processed").Inc()

	params := k.GetParams(ctx)
	if params.AutoCallback {
		k.sendCallback(sdkCtx, origin, params.CallbackMessage(text))
	}
	return nil
}

// sendCallback returns message to the origin chain, paid from the gateway
// balance. It runs on its own cache so a failure leaves no partial debit.
func (k Keeper) sendCallback(ctx sdk.Context, origin types.Origin, message string) {
	params := k.GetParams(ctx)
	k.Logger(ctx).Debug("sending callback", "phase", types.PhaseCallbackSending, "dst_eid", origin.SrcEid)

	cacheCtx, write := ctx.CacheContext()
	options := types.NewDeliveryOptions(params.CallbackGasLimit, sdkmath.ZeroInt()).Encode()
	msgParams, fee, err := k.prepare(cacheCtx, origin.SrcEid, types.MsgTypeCallback, message, options, false)
	if err == nil {
		_, err = k.dispatch(cacheCtx, msgParams, fee, kindCallback)
	}
	if err != nil {
		k.callbackFailed(ctx, origin, err)
		return
	}
	write()
}

func (k Keeper) callbackFailed(ctx sdk.Context, origin types.Origin, err error) {
	reason := callbackFailureReason(err)
	k.Logger(ctx).Error("callback failed", "dst_eid", origin.SrcEid, "reason", reason, "err", err)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCallbackFailed,
			sdk.NewAttribute(types.AttributeKeyDstEid, fmt.Sprintf("%d", origin.SrcEid)),
			sdk.NewAttribute(types.AttributeKeyReason, err.Error()),
		),
	)
	metrics.CallbackFailures().WithLabelValues(reason).Inc()
}

func callbackFailureReason(err error) string {
	switch {
	case errors.Is(err, types.ErrInsufficientFee):
		return "insufficient_fee"
	case errors.Is(err, types.ErrUnsupportedDestination):
		return "unsupported_destination"
	case errors.Is(err, types.ErrTransportUnavailable):
		return "transport_unavailable"
	case errors.Is(err, types.ErrInvalidOptions):
		return "invalid_options"
	default:
		return "other"
	}
}
