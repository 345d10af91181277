package keeper

import (
	"context"
	"strings"

	"lzgateway/x/oapp/types"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

type msgServer struct{ Keeper }

var _ types.MsgServer = msgServer{}

func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m msgServer) accAddress(bech32, field string) (sdk.AccAddress, error) {
	bz, err := m.addressCodec.StringToBytes(strings.TrimSpace(bech32))
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid %s", field)
	}
	return sdk.AccAddress(bz), nil
}

func (m msgServer) SetPeer(ctx context.Context, msg *types.MsgSetPeer) (*types.MsgSetPeerResponse, error) {
	owner, err := m.accAddress(msg.Owner, "owner")
	if err != nil {
		return nil, err
	}
	peer, err := types.ParsePeerAddress(msg.Peer)
	if err != nil {
		return nil, err
	}
	if err := m.Keeper.SetPeer(ctx, owner, msg.Eid, peer); err != nil {
		return nil, err
	}
	return &types.MsgSetPeerResponse{}, nil
}

func (m msgServer) Send(ctx context.Context, msg *types.MsgSend) (*types.MsgSendResponse, error) {
	sender, err := m.accAddress(msg.Sender, "sender")
	if err != nil {
		return nil, err
	}
	if len(msg.Message) > types.MessageMaxLen {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "message exceeds %d bytes", types.MessageMaxLen)
	}
	attached := types.MessagingFee{NativeFee: msg.NativeFee, AltFee: msg.AltFee}
	receipt, err := m.Keeper.Send(ctx, sender, msg.DstEid, msg.Message, msg.Options, attached)
	if err != nil {
		return nil, err
	}
	return &types.MsgSendResponse{Receipt: receipt}, nil
}

func (m msgServer) Fund(ctx context.Context, msg *types.MsgFund) (*types.MsgFundResponse, error) {
	funder, err := m.accAddress(msg.Funder, "funder")
	if err != nil {
		return nil, err
	}
	if err := m.Keeper.Fund(ctx, funder, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgFundResponse{}, nil
}

func (m msgServer) TransferOwnership(ctx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error) {
	owner, err := m.accAddress(msg.Owner, "owner")
	if err != nil {
		return nil, err
	}
	newOwner, err := m.accAddress(msg.NewOwner, "new owner")
	if err != nil {
		return nil, err
	}
	if err := m.Keeper.TransferOwnership(ctx, owner, newOwner); err != nil {
		return nil, err
	}
	return &types.MsgTransferOwnershipResponse{}, nil
}

func (m msgServer) SetDelegate(ctx context.Context, msg *types.MsgSetDelegate) (*types.MsgSetDelegateResponse, error) {
	owner, err := m.accAddress(msg.Owner, "owner")
	if err != nil {
		return nil, err
	}
	var delegate sdk.AccAddress
	if strings.TrimSpace(msg.Delegate) != "" {
		if delegate, err = m.accAddress(msg.Delegate, "delegate"); err != nil {
			return nil, err
		}
	}
	if err := m.Keeper.SetDelegate(ctx, owner, delegate); err != nil {
		return nil, err
	}
	return &types.MsgSetDelegateResponse{}, nil
}

func (m msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	owner, err := m.accAddress(msg.Owner, "owner")
	if err != nil {
		return nil, err
	}
	if err := m.Keeper.UpdateParams(ctx, owner, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}

func (m msgServer) SetEnforcedOptions(ctx context.Context, msg *types.MsgSetEnforcedOptions) (*types.MsgSetEnforcedOptionsResponse, error) {
	owner, err := m.accAddress(msg.Owner, "owner")
	if err != nil {
		return nil, err
	}
	if len(msg.Options) > types.OptionsMaxLen {
		return nil, errorsmod.Wrapf(types.ErrInvalidOptions, "options exceed %d bytes", types.OptionsMaxLen)
	}
	if err := m.Keeper.SetEnforcedOptions(ctx, owner, msg.Eid, msg.MsgType, msg.Options); err != nil {
		return nil, err
	}
	return &types.MsgSetEnforcedOptionsResponse{}, nil
}
