package keeper

import (
	"encoding/json"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/keeper"
	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// MockWasmQuerier routes smart queries to per-contract handlers registered
// by the test.
type MockWasmQuerier struct {
	handlers map[string]func(req []byte) ([]byte, error)
}

// NewMockWasmQuerier returns an empty querier; unregistered contracts fail
func NewMockWasmQuerier() *MockWasmQuerier {
	return &MockWasmQuerier{handlers: map[string]func(req []byte) ([]byte, error){}}
}

// Handle registers a raw handler for a contract address
func (m *MockWasmQuerier) Handle(contractAddr string, fn func(req []byte) ([]byte, error)) {
	m.handlers[contractAddr] = fn
}

// Respond registers a fixed JSON response for a contract address
func (m *MockWasmQuerier) Respond(contractAddr string, resp any) {
	m.Handle(contractAddr, func([]byte) ([]byte, error) {
		return json.Marshal(resp)
	})
}

// Fail registers a failing handler for a contract address
func (m *MockWasmQuerier) Fail(contractAddr string, err error) {
	m.Handle(contractAddr, func([]byte) ([]byte, error) {
		return nil, err
	})
}

// QuerySmart implements types.WasmQuerier
func (m *MockWasmQuerier) QuerySmart(_ sdk.Context, contractAddr string, req []byte) ([]byte, error) {
	fn, ok := m.handlers[contractAddr]
	if !ok {
		return nil, fmt.Errorf("no query handler for contract %s", contractAddr)
	}
	return fn(req)
}

// LegacypairKeeper creates a test keeper with an in-memory store and a mock
// collaborator querier.
func LegacypairKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *MockWasmQuerier) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	querier := NewMockWasmQuerier()
	k := keeper.NewKeeper(storeKey, querier)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return k, ctx, querier
}

// Addr derives a deterministic bech32 address from a name
func Addr(name string) string {
	padded := make([]byte, 20)
	copy(padded, name)
	return sdk.AccAddress(padded).String()
}
