package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type PeerBinding struct {
	Eid     uint32      `json:"eid"`
	Address PeerAddress `json:"address"`
}

type EnforcedOption struct {
	Eid     uint32        `json:"eid"`
	MsgType uint32        `json:"msg_type"`
	Options hexutil.Bytes `json:"options"`
}

type GenesisState struct {
	Owner           string           `json:"owner"`
	Delegate        string           `json:"delegate,omitempty"`
	Params          *Params          `json:"params"`
	Peers           []PeerBinding    `json:"peers"`
	Data            string           `json:"data"`
	InboundCount    uint64           `json:"inbound_count"`
	EnforcedOptions []EnforcedOption `json:"enforced_options"`
}

func DefaultGenesis() *GenesisState {
	def := DefaultParams()
	return &GenesisState{
		Params:          &def,
		Peers:           []PeerBinding{},
		Data:            DefaultData,
		InboundCount:    0,
		EnforcedOptions: []EnforcedOption{},
	}
}

func ValidateGenesis(gs *GenesisState) error {
	if gs == nil {
		return fmt.Errorf("genesis state cannot be nil")
	}
	if gs.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Owner); err != nil {
			return fmt.Errorf("invalid owner address: %w", err)
		}
	}
	if gs.Delegate != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Delegate); err != nil {
			return fmt.Errorf("invalid delegate address: %w", err)
		}
	}

	seenPeer := make(map[uint32]struct{})
	for _, p := range gs.Peers {
		if _, ok := seenPeer[p.Eid]; ok {
			return fmt.Errorf("duplicate peer eid %d", p.Eid)
		}
		if p.Address.IsZero() {
			return fmt.Errorf("zero peer address for eid %d", p.Eid)
		}
		seenPeer[p.Eid] = struct{}{}
	}

	type optKey struct{ eid, msgType uint32 }
	seenOpt := make(map[optKey]struct{})
	for _, o := range gs.EnforcedOptions {
		key := optKey{o.Eid, o.MsgType}
		if _, ok := seenOpt[key]; ok {
			return fmt.Errorf("duplicate enforced options for eid %d msg type %d", o.Eid, o.MsgType)
		}
		seenOpt[key] = struct{}{}
		if _, err := ParseDeliveryOptions(o.Options); err != nil {
			return fmt.Errorf("enforced options for eid %d: %w", o.Eid, err)
		}
	}

	if len(gs.Data) > MessageMaxLen {
		return fmt.Errorf("data exceeds %d bytes", MessageMaxLen)
	}

	if gs.Params != nil {
		if err := ValidateParams(*gs.Params); err != nil {
			return err
		}
	}

	return nil
}
