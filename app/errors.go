package app

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	errEndpointMismatch uint32 = 1
)

var (
	ErrEndpointMismatch = errorsmod.Register(Name, errEndpointMismatch, "endpoint eid does not match gateway config")
)
