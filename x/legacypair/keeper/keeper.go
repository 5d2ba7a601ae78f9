package keeper

import (
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// Keeper of the legacy pair adapter store. Entry points return an ordered
// effect list; the host dispatches it and rolls the whole call back if any
// effect fails.
type Keeper struct {
	storeKey storetypes.StoreKey
	querier  types.WasmQuerier
	metrics  *Metrics
}

// NewKeeper creates a new legacy pair adapter Keeper instance
func NewKeeper(key storetypes.StoreKey, querier types.WasmQuerier) Keeper {
	return Keeper{
		storeKey: key,
		querier:  querier,
		metrics:  ModuleMetrics(),
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the module
func (k Keeper) getStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}
