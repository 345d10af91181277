package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrInvalidRequest         = errorsmod.Register(ModuleName, 1, "invalid request")
	ErrUnauthorized           = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrUntrustedSender        = errorsmod.Register(ModuleName, 3, "untrusted sender")
	ErrInsufficientFee        = errorsmod.Register(ModuleName, 4, "insufficient fee")
	ErrMalformedPayload       = errorsmod.Register(ModuleName, 5, "malformed payload")
	ErrUnsupportedDestination = errorsmod.Register(ModuleName, 6, "unsupported destination")
	ErrTransportUnavailable   = errorsmod.Register(ModuleName, 7, "transport unavailable")
	ErrOnlyEndpoint           = errorsmod.Register(ModuleName, 8, "caller is not the endpoint")
	ErrInvalidOptions         = errorsmod.Register(ModuleName, 9, "invalid delivery options")
	ErrExcessFee              = errorsmod.Register(ModuleName, 10, "attached value exceeds fee")
	ErrNotFound               = errorsmod.Register(ModuleName, 11, "not found")
)
