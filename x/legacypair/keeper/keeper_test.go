package keeper_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/apollo-sturdy/astroport-core/testutil/keeper"
	"github.com/apollo-sturdy/astroport-core/x/legacypair/keeper"
	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

var (
	selfAddr    = keepertest.Addr("pair-adapter")
	factoryAddr = keepertest.Addr("factory")
	adapterAddr = keepertest.Addr("cw20-adapter")
	poolAddr    = keepertest.Addr("underlying-pool")
	lpTokenAddr = keepertest.Addr("lp-token")
	astroAddr   = keepertest.Addr("astro-token")
	senderAddr  = keepertest.Addr("sender")
	otherAddr   = keepertest.Addr("other")
)

const nativeDenom = "uluna"

func lpDenom() string {
	return "factory/" + poolAddr + "/lp"
}

func syntheticAstro() string {
	return types.SyntheticDenom(adapterAddr, astroAddr)
}

func pairAssetInfos() []types.AssetInfo {
	return []types.AssetInfo{
		types.NewNativeAssetInfo(nativeDenom),
		types.NewTokenAssetInfo(astroAddr),
	}
}

// setupReady returns a keeper with a completed bootstrap: config with the
// LP token resolved, plus the underlying pool reference.
func setupReady(t testing.TB) (keeper.Keeper, sdk.Context, *keepertest.MockWasmQuerier) {
	k, ctx, q := keepertest.LegacypairKeeper(t)

	require.NoError(t, k.SetConfig(ctx, types.Config{
		PairInfo: types.PairInfo{
			ContractAddr:   selfAddr,
			LiquidityToken: lpTokenAddr,
			AssetInfos:     pairAssetInfos(),
			PairType:       types.XykPairType(),
		},
		FactoryAddr:     factoryAddr,
		Cw20AdapterAddr: adapterAddr,
	}))
	k.SetUnderlyingPool(ctx, poolAddr)
	k.SetUnderlyingLPDenom(ctx, lpDenom())

	return k, ctx, q
}

// poolSimHandler answers the backend pool's simulation and state queries
// with fixed results.
func poolSimHandler(t testing.TB, q *keepertest.MockWasmQuerier, mintedLP sdk.Coin, withdrawn []sdk.Coin, swapSim types.SimulateSwapResponse, state types.PoolStateResponse) {
	q.Handle(poolAddr, func(req []byte) ([]byte, error) {
		var msg types.PoolQueryMsg
		if err := json.Unmarshal(req, &msg); err != nil {
			return nil, err
		}
		switch {
		case msg.SimulateProvideLiquidity != nil:
			return json.Marshal(mintedLP)
		case msg.SimulateWithdrawLiquidity != nil:
			return json.Marshal(withdrawn)
		case msg.SimulateSwapExactIn != nil, msg.SimulateSwapExactOut != nil:
			return json.Marshal(swapSim)
		case msg.PoolState != nil:
			return json.Marshal(state)
		default:
			t.Fatalf("unexpected pool query: %s", req)
			return nil, nil
		}
	})
}

// wasmExecuteOf unwraps a contract execute effect and decodes its payload
func wasmExecuteOf(t testing.TB, msg types.SubMsg, payload any) *types.WasmExecute {
	require.NotNil(t, msg.Msg.Wasm, "expected a wasm message")
	require.NotNil(t, msg.Msg.Wasm.Execute, "expected a wasm execute message")
	exec := msg.Msg.Wasm.Execute
	require.NoError(t, json.Unmarshal(exec.Msg, payload))
	return exec
}

func strPtr(s string) *string { return &s }

func decPtr(d math.LegacyDec) *math.LegacyDec { return &d }

func boolPtr(b bool) *bool { return &b }
