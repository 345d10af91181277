package types

import "cosmossdk.io/collections"

const (
	ModuleName = "oapp"
	StoreKey   = ModuleName

	// DefaultData is the stored payload before any message has been received.
	DefaultData = "Nothing received yet."
)

// Message types used to look up enforced options.
const (
	MsgTypeSend     uint32 = 1
	MsgTypeCallback uint32 = 2
)

var (
	ParamsKey          = collections.NewPrefix("oapp/params")
	OwnerKey           = collections.NewPrefix("oapp/owner")
	DelegateKey        = collections.NewPrefix("oapp/delegate")
	PeerKey            = collections.NewPrefix("oapp/peer/")
	EnforcedOptionsKey = collections.NewPrefix("oapp/enforced_options/")
	DataKey            = collections.NewPrefix("oapp/data")
	InboundSeqKey      = collections.NewPrefix("oapp/inbound_seq")
)
