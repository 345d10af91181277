package types

const (
	EventTypeSend                 = "oapp.send"
	EventTypeReceive              = "oapp.receive"
	EventTypeCallbackFailed       = "oapp.callback_failed"
	EventTypePeerSet              = "oapp.peer_set"
	EventTypeOwnershipTransferred = "oapp.ownership_transferred"
	EventTypeDelegateSet          = "oapp.delegate_set"
	EventTypeParamsUpdated        = "oapp.params_updated"
	EventTypeEnforcedOptionsSet   = "oapp.enforced_options_set"
	EventTypeFund                 = "oapp.fund"

	AttributeKeyPhase     = "phase"
	AttributeKeyDstEid    = "dst_eid"
	AttributeKeySrcEid    = "src_eid"
	AttributeKeyEid       = "eid"
	AttributeKeyPeer      = "peer"
	AttributeKeySender    = "sender"
	AttributeKeyGUID      = "guid"
	AttributeKeyNonce     = "nonce"
	AttributeKeyNativeFee = "native_fee"
	AttributeKeyPayer     = "payer"
	AttributeKeyOwner     = "owner"
	AttributeKeyDelegate  = "delegate"
	AttributeKeyMsgType   = "msg_type"
	AttributeKeyAmount    = "amount"
	AttributeKeyReason    = "reason"
)
