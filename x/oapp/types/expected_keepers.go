package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type BankKeeper interface {
	GetBalance(context.Context, sdk.AccAddress, string) sdk.Coin
	SendCoinsFromAccountToModule(context.Context, sdk.AccAddress, string, sdk.Coins) error
	SendCoinsFromModuleToAccount(context.Context, string, sdk.AccAddress, sdk.Coins) error
}

// EndpointKeeper is the messaging transport local to this chain.
type EndpointKeeper interface {
	// Eid is the endpoint id of the local chain.
	Eid() uint32
	// Address is the only account allowed to deliver inbound messages.
	Address() sdk.AccAddress
	Quote(ctx context.Context, params MessagingParams, sender PeerAddress) (MessagingFee, error)
	// Send debits fee.NativeFee from sender and returns the receipt. Any
	// amount not used by the transport goes to refund.
	Send(ctx context.Context, params MessagingParams, fee MessagingFee, sender, refund sdk.AccAddress) (MessagingReceipt, error)
}
