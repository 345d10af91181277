package keeper_test

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// mockBankKeeper keeps balances in the chain store so cached contexts roll
// them back together with gateway state. Module accounts are keyed by their
// derived address.
type mockBankKeeper struct {
	balances collections.Map[collections.Pair[string, string], sdkmath.Int]
}

func newMockBankKeeper(storeService corestore.KVStoreService) *mockBankKeeper {
	sb := collections.NewSchemaBuilder(storeService)
	m := &mockBankKeeper{
		balances: collections.NewMap(sb, collections.NewPrefix("bank/balances/"), "balances",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey), sdk.IntValue),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return m
}

func (m *mockBankKeeper) keyAccount(addr sdk.AccAddress) string {
	return fmt.Sprintf("acc:%s", addr.String())
}

func (m *mockBankKeeper) keyModule(module string) string {
	return m.keyAccount(authtypes.NewModuleAddress(module))
}

func (m *mockBankKeeper) amount(ctx context.Context, key, denom string) sdkmath.Int {
	amt, err := m.balances.Get(ctx, collections.Join(key, denom))
	if err != nil {
		return sdkmath.ZeroInt()
	}
	return amt
}

func (m *mockBankKeeper) transfer(ctx context.Context, fromKey, toKey string, coins sdk.Coins) error {
	if !coins.IsValid() {
		return fmt.Errorf("invalid coins")
	}
	for _, c := range coins {
		if m.amount(ctx, fromKey, c.Denom).LT(c.Amount) {
			return fmt.Errorf("insufficient funds in %s", fromKey)
		}
	}
	for _, c := range coins {
		if err := m.balances.Set(ctx, collections.Join(fromKey, c.Denom), m.amount(ctx, fromKey, c.Denom).Sub(c.Amount)); err != nil {
			return err
		}
		if err := m.balances.Set(ctx, collections.Join(toKey, c.Denom), m.amount(ctx, toKey, c.Denom).Add(c.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockBankKeeper) mint(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error {
	key := m.keyAccount(addr)
	for _, c := range coins {
		if err := m.balances.Set(ctx, collections.Join(key, c.Denom), m.amount(ctx, key, c.Denom).Add(c.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockBankKeeper) setAccountBalance(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) {
	key := m.keyAccount(addr)
	for _, c := range coins {
		if err := m.balances.Set(ctx, collections.Join(key, c.Denom), c.Amount); err != nil {
			panic(err)
		}
	}
}

func (m *mockBankKeeper) accountAmount(ctx context.Context, addr sdk.AccAddress) sdkmath.Int {
	return m.amount(ctx, m.keyAccount(addr), sdk.DefaultBondDenom)
}

func (m *mockBankKeeper) moduleAmount(ctx context.Context, module string) sdkmath.Int {
	return m.amount(ctx, m.keyModule(module), sdk.DefaultBondDenom)
}

func (m *mockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.amount(ctx, m.keyAccount(addr), denom))
}

func (m *mockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, addr sdk.AccAddress, module string, coins sdk.Coins) error {
	return m.transfer(ctx, m.keyAccount(addr), m.keyModule(module), coins)
}

func (m *mockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, module string, addr sdk.AccAddress, coins sdk.Coins) error {
	return m.transfer(ctx, m.keyModule(module), m.keyAccount(addr), coins)
}

func (m *mockBankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, coins sdk.Coins) error {
	return m.transfer(ctx, m.keyAccount(from), m.keyAccount(to), coins)
}
