package keeper

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"lzgateway/x/oapp/types"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func (k Keeper) GetOwner(ctx context.Context) (sdk.AccAddress, error) {
	owner, err := k.Owner.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, nil
	}
	return owner, err
}

func (k Keeper) GetDelegate(ctx context.Context) (sdk.AccAddress, error) {
	delegate, err := k.Delegate.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, nil
	}
	return delegate, err
}

func (k Keeper) assertOwner(ctx context.Context, caller sdk.AccAddress) error {
	owner, err := k.GetOwner(ctx)
	if err != nil {
		return err
	}
	if len(owner) == 0 {
		return errorsmod.Wrap(types.ErrUnauthorized, "owner not set")
	}
	if !bytes.Equal(owner, caller) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "invalid owner; expected %s, got %s", k.stringAddress(owner), k.stringAddress(caller))
	}
	return nil
}

func (k Keeper) TransferOwnership(ctx context.Context, caller, newOwner sdk.AccAddress) error {
	if err := k.assertOwner(ctx, caller); err != nil {
		return err
	}
	if len(newOwner) == 0 {
		return errorsmod.Wrap(types.ErrInvalidRequest, "new owner required")
	}
	if err := k.Owner.Set(ctx, newOwner); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOwnershipTransferred,
			sdk.NewAttribute(types.AttributeKeyOwner, k.stringAddress(newOwner)),
		),
	)
	return nil
}

// SetDelegate records the account allowed to configure the endpoint on the
// gateway's behalf. An empty delegate clears it.
func (k Keeper) SetDelegate(ctx context.Context, caller, delegate sdk.AccAddress) error {
	if err := k.assertOwner(ctx, caller); err != nil {
		return err
	}
	if len(delegate) == 0 {
		if err := k.Delegate.Remove(ctx); err != nil {
			return err
		}
	} else if err := k.Delegate.Set(ctx, delegate); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDelegateSet,
			sdk.NewAttribute(types.AttributeKeyDelegate, k.stringAddress(delegate)),
		),
	)
	return nil
}

func (k Keeper) UpdateParams(ctx context.Context, caller sdk.AccAddress, params types.Params) error {
	if err := k.assertOwner(ctx, caller); err != nil {
		return err
	}
	if err := types.ValidateParams(params); err != nil {
		return errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyOwner, k.stringAddress(caller)),
		),
	)
	return nil
}

// SetEnforcedOptions stores options that are always prepended to caller
// options for (eid, msgType). Empty options remove the entry.
func (k Keeper) SetEnforcedOptions(ctx context.Context, caller sdk.AccAddress, eid, msgType uint32, options []byte) error {
	if err := k.assertOwner(ctx, caller); err != nil {
		return err
	}
	key := collections.Join(eid, msgType)
	if len(options) == 0 {
		if err := k.EnforcedOptions.Remove(ctx, key); err != nil {
			return err
		}
	} else {
		if _, err := types.ParseDeliveryOptions(options); err != nil {
			return err
		}
		if err := k.EnforcedOptions.Set(ctx, key, options); err != nil {
			return err
		}
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEnforcedOptionsSet,
			sdk.NewAttribute(types.AttributeKeyEid, fmt.Sprintf("%d", eid)),
			sdk.NewAttribute(types.AttributeKeyMsgType, fmt.Sprintf("%d", msgType)),
		),
	)
	return nil
}

// Fund moves coins from funder into the gateway balance used to pay callbacks.
func (k Keeper) Fund(ctx context.Context, funder sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return errorsmod.Wrap(types.ErrInvalidRequest, "amount must be positive")
	}
	if err := k.moveToModule(ctx, funder, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFund,
			sdk.NewAttribute(types.AttributeKeyPayer, k.stringAddress(funder)),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}
