package keeper

import (
	"context"
	"math/big"

	"lzgateway/app/metrics"
	"lzgateway/x/oapp/types"

	errorsmod "cosmossdk.io/errors"
)

// Quote returns the current fee for sending message to dstEid. Nothing is
// cached; every call asks the endpoint.
func (k Keeper) Quote(ctx context.Context, dstEid uint32, message string, options []byte, payInAlt bool) (types.MessagingFee, error) {
	_, fee, err := k.prepare(ctx, dstEid, types.MsgTypeSend, message, options, payInAlt)
	return fee, err
}

// prepare resolves the peer, encodes the payload, merges enforced options and
// quotes the result. It never writes state.
func (k Keeper) prepare(
	ctx context.Context,
	dstEid, msgType uint32,
	message string,
	extraOptions []byte,
	payInAlt bool,
) (types.MessagingParams, types.MessagingFee, error) {
	logger := k.Logger(ctx)
	logger.Debug("quoting", "phase", types.PhaseQuoting, "dst_eid", dstEid, "msg_type", msgType)

	if k.endpoint == nil {
		return types.MessagingParams{}, types.MessagingFee{}, errorsmod.Wrap(types.ErrTransportUnavailable, "endpoint not set")
	}

	peer, found, err := k.GetPeer(ctx, dstEid)
	if err != nil {
		return types.MessagingParams{}, types.MessagingFee{}, err
	}
	if !found {
		return types.MessagingParams{}, types.MessagingFee{}, errorsmod.Wrapf(types.ErrUnsupportedDestination, "no peer for eid %d", dstEid)
	}

	payload, err := types.EncodePayload(message)
	if err != nil {
		return types.MessagingParams{}, types.MessagingFee{}, err
	}

	enforced, err := k.enforcedOptions(ctx, dstEid, msgType)
	if err != nil {
		return types.MessagingParams{}, types.MessagingFee{}, err
	}
	options, err := types.CombineOptions(enforced, extraOptions)
	if err != nil {
		return types.MessagingParams{}, types.MessagingFee{}, err
	}
	if len(options) == 0 {
		return types.MessagingParams{}, types.MessagingFee{}, errorsmod.Wrap(types.ErrInvalidOptions, "no delivery options")
	}
	delivery, err := types.ParseDeliveryOptions(options)
	if err != nil {
		return types.MessagingParams{}, types.MessagingFee{}, err
	}
	if err := delivery.Validate(); err != nil {
		return types.MessagingParams{}, types.MessagingFee{}, err
	}

	params := types.MessagingParams{
		DstEid:   dstEid,
		Receiver: peer,
		Message:  payload,
		Options:  options,
		PayInAlt: payInAlt,
	}
	fee, err := k.endpoint.Quote(ctx, params, k.GatewayAddress())
	if err != nil {
		return types.MessagingParams{}, types.MessagingFee{}, err
	}
	fee = fee.Normalize()

	observed, _ := new(big.Float).SetInt(fee.NativeFee.BigInt()).Float64()
	metrics.QuoteObserver().Observe(observed)
	return params, fee, nil
}
