package types

import (
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// PeerAddressLen is the canonical width of a gateway address on any chain.
const PeerAddressLen = 32

// PeerAddress identifies a gateway on a remote chain. Shorter native
// addresses are left padded with zeros.
type PeerAddress [PeerAddressLen]byte

// PeerAddressFromBytes normalizes a native address to the canonical width.
func PeerAddressFromBytes(bz []byte) (PeerAddress, error) {
	var p PeerAddress
	if len(bz) > PeerAddressLen {
		return p, errorsmod.Wrapf(ErrInvalidRequest, "peer address too long: %d > %d", len(bz), PeerAddressLen)
	}
	copy(p[:], common.LeftPadBytes(bz, PeerAddressLen))
	return p, nil
}

// PeerAddressFromAccAddress pads a 20 or 32 byte account address.
func PeerAddressFromAccAddress(addr sdk.AccAddress) PeerAddress {
	p, err := PeerAddressFromBytes(addr)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePeerAddress accepts hex with or without the 0x prefix.
func ParsePeerAddress(s string) (PeerAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PeerAddress{}, errorsmod.Wrap(ErrInvalidRequest, "empty peer address")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	bz, err := hexutil.Decode(s)
	if err != nil {
		return PeerAddress{}, errorsmod.Wrapf(ErrInvalidRequest, "invalid peer address: %s", err)
	}
	return PeerAddressFromBytes(bz)
}

func (p PeerAddress) IsZero() bool { return p == PeerAddress{} }

func (p PeerAddress) Bytes() []byte { return p[:] }

func (p PeerAddress) Hex() string { return common.Hash(p).Hex() }

func (p PeerAddress) String() string { return p.Hex() }

// AccAddress returns the trailing 20 bytes, which is the account address for
// peers that live on SDK chains.
func (p PeerAddress) AccAddress() sdk.AccAddress {
	return sdk.AccAddress(common.CopyBytes(p[PeerAddressLen-20:]))
}

func (p PeerAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Hex())
}

func (p *PeerAddress) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ParsePeerAddress(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
