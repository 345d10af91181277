package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.HasValidateBasic = (*MsgSetPeer)(nil)
	_ sdk.HasValidateBasic = (*MsgSend)(nil)
	_ sdk.HasValidateBasic = (*MsgFund)(nil)
	_ sdk.HasValidateBasic = (*MsgTransferOwnership)(nil)
	_ sdk.HasValidateBasic = (*MsgSetDelegate)(nil)
	_ sdk.HasValidateBasic = (*MsgUpdateParams)(nil)
	_ sdk.HasValidateBasic = (*MsgSetEnforcedOptions)(nil)
)

func (m *MsgSetPeer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if _, err := ParsePeerAddress(m.Peer); err != nil {
		return err
	}
	return nil
}

func (m *MsgSend) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address (%s)", err)
	}
	if len(m.Message) > MessageMaxLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("message exceeds %d bytes", MessageMaxLen)
	}
	if len(m.Options) > OptionsMaxLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("options exceed %d bytes", OptionsMaxLen)
	}
	if m.NativeFee.IsNil() || m.NativeFee.IsNegative() {
		return sdkerrors.ErrInvalidRequest.Wrap("native_fee must be >= 0")
	}
	if !m.AltFee.IsNil() && m.AltFee.IsNegative() {
		return sdkerrors.ErrInvalidRequest.Wrap("alt_fee must be >= 0")
	}
	return nil
}

func (m *MsgFund) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Funder); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid funder address (%s)", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return sdkerrors.ErrInvalidRequest.Wrap("amount must be positive")
	}
	return nil
}

func (m *MsgTransferOwnership) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.NewOwner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid new owner address (%s)", err)
	}
	return nil
}

func (m *MsgSetDelegate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if strings.TrimSpace(m.Delegate) == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(m.Delegate); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid delegate address (%s)", err)
	}
	return nil
}

func (m *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if err := ValidateParams(m.Params); err != nil {
		return sdkerrors.ErrInvalidRequest.Wrap(err.Error())
	}
	return nil
}

func (m *MsgSetEnforcedOptions) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid owner address (%s)", err)
	}
	if m.MsgType != MsgTypeSend && m.MsgType != MsgTypeCallback {
		return sdkerrors.ErrInvalidRequest.Wrapf("unknown msg type %d", m.MsgType)
	}
	if len(m.Options) > OptionsMaxLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("options exceed %d bytes", OptionsMaxLen)
	}
	if len(m.Options) == 0 {
		return nil
	}
	if _, err := ParseDeliveryOptions(m.Options); err != nil {
		return err
	}
	return nil
}
