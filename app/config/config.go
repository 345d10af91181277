package config

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"lzgateway/x/oapp/types"
)

// EnvPrefix is prepended to every key when read from the environment,
// e.g. GATEWAY_EID or GATEWAY_AUTO_CALLBACK.
const EnvPrefix = "GATEWAY"

const (
	KeyEid              = "eid"
	KeyOwner            = "owner"
	KeyDelegate         = "delegate"
	KeyFeeDenom         = "fee_denom"
	KeyAutoCallback     = "auto_callback"
	KeyCallbackGasLimit = "callback_gas_limit"
	KeyCallbackPayload  = "callback_payload"
	KeyAckPayload       = "ack_payload"
	KeyExcessFeePolicy  = "excess_fee_policy"
	KeyPeers            = "peers"
	KeyEnforcedOptions  = "enforced_options"
)

var ErrInvalidConfig = errorsmod.Register("gatewayconfig", 1, "invalid gateway config")

type Peer struct {
	Eid     uint32
	Address types.PeerAddress
}

// EnforcedOption is the human form of a stored enforced option: gas and an
// optional native drop for one (eid, msg type) pair.
type EnforcedOption struct {
	Eid     uint32
	MsgType uint32
	Gas     uint64
	Drop    sdkmath.Int
}

type Config struct {
	Eid             uint32
	Owner           string
	Delegate        string
	Params          types.Params
	Peers           []Peer
	EnforcedOptions []EnforcedOption
}

func setDefaults(v *viper.Viper) {
	def := types.DefaultParams()
	v.SetDefault(KeyFeeDenom, def.FeeDenom)
	v.SetDefault(KeyAutoCallback, def.AutoCallback)
	v.SetDefault(KeyCallbackGasLimit, def.CallbackGasLimit)
	v.SetDefault(KeyCallbackPayload, def.CallbackPayload)
	v.SetDefault(KeyAckPayload, def.AckPayload)
	v.SetDefault(KeyExcessFeePolicy, def.ExcessFeePolicy)
}

// Load reads path (toml, yaml or json by extension) and overlays GATEWAY_*
// environment variables. An empty path reads only the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errorsmod.Wrapf(ErrInvalidConfig, "read %s: %s", path, err)
		}
	}
	return FromViper(v)
}

func FromViper(v *viper.Viper) (Config, error) {
	var (
		cfg Config
		err error
	)

	if cfg.Eid, err = cast.ToUint32E(v.Get(KeyEid)); err != nil {
		return Config{}, errorsmod.Wrapf(ErrInvalidConfig, "%s: %s", KeyEid, err)
	}
	cfg.Owner = strings.TrimSpace(cast.ToString(v.Get(KeyOwner)))
	cfg.Delegate = strings.TrimSpace(cast.ToString(v.Get(KeyDelegate)))

	cfg.Params.FeeDenom = strings.TrimSpace(cast.ToString(v.Get(KeyFeeDenom)))
	if cfg.Params.AutoCallback, err = cast.ToBoolE(v.Get(KeyAutoCallback)); err != nil {
		return Config{}, errorsmod.Wrapf(ErrInvalidConfig, "%s: %s", KeyAutoCallback, err)
	}
	if cfg.Params.CallbackGasLimit, err = cast.ToUint64E(v.Get(KeyCallbackGasLimit)); err != nil {
		return Config{}, errorsmod.Wrapf(ErrInvalidConfig, "%s: %s", KeyCallbackGasLimit, err)
	}
	cfg.Params.CallbackPayload = strings.ToLower(strings.TrimSpace(cast.ToString(v.Get(KeyCallbackPayload))))
	cfg.Params.AckPayload = cast.ToString(v.Get(KeyAckPayload))
	cfg.Params.ExcessFeePolicy = strings.ToLower(strings.TrimSpace(cast.ToString(v.Get(KeyExcessFeePolicy))))

	if cfg.Peers, err = parsePeers(v.Get(KeyPeers)); err != nil {
		return Config{}, err
	}
	if cfg.EnforcedOptions, err = parseEnforcedOptions(v.Get(KeyEnforcedOptions)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parsePeers accepts a list of {eid, address} tables or, from the
// environment, a string of the form "2=0xabc,3=0xdef".
func parsePeers(raw interface{}) ([]Peer, error) {
	if raw == nil {
		return nil, nil
	}
	var entries []map[string]interface{}
	if s, ok := raw.(string); ok {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			eid, addr, found := strings.Cut(part, "=")
			if !found {
				return nil, errorsmod.Wrapf(ErrInvalidConfig, "peer %q: expected eid=address", part)
			}
			entries = append(entries, map[string]interface{}{"eid": eid, "address": addr})
		}
	} else {
		list, err := cast.ToSliceE(raw)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidConfig, "%s: %s", KeyPeers, err)
		}
		for _, item := range list {
			m, err := cast.ToStringMapE(item)
			if err != nil {
				return nil, errorsmod.Wrapf(ErrInvalidConfig, "%s: %s", KeyPeers, err)
			}
			entries = append(entries, m)
		}
	}

	peers := make([]Peer, 0, len(entries))
	for _, m := range entries {
		eid, err := cast.ToUint32E(strings.TrimSpace(cast.ToString(m["eid"])))
		if err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidConfig, "peer eid: %s", err)
		}
		addr, err := types.ParsePeerAddress(cast.ToString(m["address"]))
		if err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidConfig, "peer %d: %s", eid, err)
		}
		peers = append(peers, Peer{Eid: eid, Address: addr})
	}
	return peers, nil
}

func parseEnforcedOptions(raw interface{}) ([]EnforcedOption, error) {
	if raw == nil {
		return nil, nil
	}
	list, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "%s: %s", KeyEnforcedOptions, err)
	}
	out := make([]EnforcedOption, 0, len(list))
	for _, item := range list {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidConfig, "%s: %s", KeyEnforcedOptions, err)
		}
		opt := EnforcedOption{Drop: sdkmath.ZeroInt()}
		if opt.Eid, err = cast.ToUint32E(m["eid"]); err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidConfig, "enforced option eid: %s", err)
		}
		if opt.MsgType, err = cast.ToUint32E(m["msg_type"]); err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidConfig, "enforced option msg_type: %s", err)
		}
		if opt.Gas, err = cast.ToUint64E(m["gas"]); err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidConfig, "enforced option gas: %s", err)
		}
		if drop := strings.TrimSpace(cast.ToString(m["drop"])); drop != "" {
			amt, ok := sdkmath.NewIntFromString(drop)
			if !ok {
				return nil, errorsmod.Wrapf(ErrInvalidConfig, "enforced option drop %q", drop)
			}
			opt.Drop = amt
		}
		out = append(out, opt)
	}
	return out, nil
}

func (c Config) Validate() error {
	if c.Eid == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "eid must be set")
	}
	gs, err := c.Genesis()
	if err != nil {
		return err
	}
	if err := types.ValidateGenesis(gs); err != nil {
		return errorsmod.Wrap(ErrInvalidConfig, err.Error())
	}
	for _, p := range c.Peers {
		if p.Eid == c.Eid {
			return errorsmod.Wrapf(ErrInvalidConfig, "peer eid %d is the local eid", p.Eid)
		}
	}
	return nil
}

// Genesis converts the config into the gateway's initial state.
func (c Config) Genesis() (*types.GenesisState, error) {
	gs := types.DefaultGenesis()
	gs.Owner = c.Owner
	gs.Delegate = c.Delegate
	params := c.Params
	gs.Params = &params

	for _, p := range c.Peers {
		gs.Peers = append(gs.Peers, types.PeerBinding{Eid: p.Eid, Address: p.Address})
	}
	for _, o := range c.EnforcedOptions {
		opts := types.NewDeliveryOptions(o.Gas, o.Drop)
		if err := opts.Validate(); err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidConfig, "enforced option for eid %d: %s", o.Eid, err)
		}
		gs.EnforcedOptions = append(gs.EnforcedOptions, types.EnforcedOption{
			Eid:     o.Eid,
			MsgType: o.MsgType,
			Options: hexutil.Bytes(opts.Encode()),
		})
	}
	return gs, nil
}

func (c Config) String() string {
	return fmt.Sprintf("eid=%d owner=%s peers=%d auto_callback=%t", c.Eid, c.Owner, len(c.Peers), c.Params.AutoCallback)
}
