package keeper

import (
	"context"
	"fmt"

	"lzgateway/app/metrics"
	"lzgateway/x/oapp/types"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	kindSend     = "send"
	kindCallback = "callback"
)

// Send quotes message for dstEid, takes the fee from payer and hands the
// message to the endpoint. State is committed only once the endpoint accepts.
func (k Keeper) Send(
	ctx context.Context,
	payer sdk.AccAddress,
	dstEid uint32,
	message string,
	options []byte,
	attached types.MessagingFee,
) (types.MessagingReceipt, error) {
	attached = attached.Normalize()
	if attached.AltFee.IsPositive() {
		return types.MessagingReceipt{}, errorsmod.Wrap(types.ErrInvalidRequest, "only native fee payment is supported")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	msgParams, fee, err := k.prepare(cacheCtx, dstEid, types.MsgTypeSend, message, options, false)
	if err != nil {
		return types.MessagingReceipt{}, err
	}
	if attached.NativeFee.LT(fee.NativeFee) {
		return types.MessagingReceipt{}, errorsmod.Wrapf(types.ErrInsufficientFee, "attached %s < required %s", attached.NativeFee, fee.NativeFee)
	}
	params := k.GetParams(cacheCtx)
	if attached.NativeFee.GT(fee.NativeFee) && params.ExcessFeePolicy != types.ExcessFeeRefund {
		return types.MessagingReceipt{}, errorsmod.Wrapf(types.ErrExcessFee, "attached %s > required %s", attached.NativeFee, fee.NativeFee)
	}

	if err := k.moveToModule(cacheCtx, payer, fee.NativeFee); err != nil {
		return types.MessagingReceipt{}, errorsmod.Wrap(types.ErrInsufficientFee, err.Error())
	}
	receipt, err := k.dispatch(cacheCtx, msgParams, fee, kindSend)
	if err != nil {
		return types.MessagingReceipt{}, err
	}

	write()
	return receipt, nil
}

// dispatch pays fee out of the gateway balance and calls the endpoint.
func (k Keeper) dispatch(ctx sdk.Context, msgParams types.MessagingParams, fee types.MessagingFee, kind string) (types.MessagingReceipt, error) {
	if k.bank == nil {
		return types.MessagingReceipt{}, fmt.Errorf("bank keeper not set")
	}
	denom := k.GetParams(ctx).FeeDenom
	moduleAddr := k.ModuleAddress()
	held := k.bank.GetBalance(ctx, moduleAddr, denom)
	if held.Amount.LT(fee.NativeFee) {
		return types.MessagingReceipt{}, errorsmod.Wrapf(types.ErrInsufficientFee, "gateway balance %s < fee %s%s", held, fee.NativeFee, denom)
	}

	receipt, err := k.endpoint.Send(ctx, msgParams, fee, moduleAddr, moduleAddr)
	if err != nil {
		return types.MessagingReceipt{}, err
	}

	phase := types.PhaseSent
	if kind == kindCallback {
		phase = types.PhaseCallbackSent
	}
	guid := hexutil.Encode(receipt.Guid[:])
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSend,
			sdk.NewAttribute(types.AttributeKeyPhase, phase.String()),
			sdk.NewAttribute(types.AttributeKeyDstEid, fmt.Sprintf("%d", msgParams.DstEid)),
			sdk.NewAttribute(types.AttributeKeyGUID, guid),
			sdk.NewAttribute(types.AttributeKeyNonce, fmt.Sprintf("%d", receipt.Nonce)),
			sdk.NewAttribute(types.AttributeKeyNativeFee, fee.NativeFee.String()),
		),
	)
	k.Logger(ctx).Info("message sent", "phase", phase, "dst_eid", msgParams.DstEid, "guid", guid, "nonce", receipt.Nonce, "native_fee", fee.NativeFee.String())
	metrics.MessagesSent().WithLabelValues(kind).Inc()
	return receipt, nil
}
