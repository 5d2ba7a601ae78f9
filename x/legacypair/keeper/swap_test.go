package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

func swapSimReturning(askDenom string, amount int64) types.SimulateSwapResponse {
	return types.SimulateSwapResponse{
		ReturnAsset: sdk.NewCoin(askDenom, math.NewInt(amount)),
		Commission:  sdk.NewCoin(askDenom, math.NewInt(1)),
		Slippage:    math.LegacyMustNewDecFromStr("0.01"),
		PriceImpact: math.LegacyMustNewDecFromStr("0.01"),
	}
}

func TestSwapNativeOfferUnwrapsCw20Ask(t *testing.T) {
	k, ctx, q := setupReady(t)

	sim := swapSimReturning(syntheticAstro(), 95)
	poolSimHandler(t, q, sdk.Coin{}, nil, sim, types.PoolStateResponse{})

	offer := types.NewAsset(types.NewNativeAssetInfo(nativeDenom), math.NewInt(100))
	res, err := k.Swap(ctx, types.MessageInfo{
		Sender: senderAddr,
		Funds:  sdk.NewCoins(sdk.NewCoin(nativeDenom, math.NewInt(100))),
	}, senderAddr, offer, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)

	// Backend swap: ask is the wrapped token, recipient left unset so the
	// proceeds land here for unwrapping
	var poolMsg types.PoolExecuteMsg
	exec := wasmExecuteOf(t, res.Messages[0], &poolMsg)
	require.Equal(t, poolAddr, exec.ContractAddr)
	require.NotNil(t, poolMsg.SwapExactIn)
	require.Equal(t, syntheticAstro(), poolMsg.SwapExactIn.AskDenom)
	require.Nil(t, poolMsg.SwapExactIn.Recipient)
	require.Nil(t, poolMsg.SwapExactIn.SlippageControl)
	require.Equal(t, sdk.Coins{sdk.NewCoin(nativeDenom, math.NewInt(100))}, exec.Funds)

	// Unwrap the simulated return to the sender
	var adapterMsg types.AdapterExecuteMsg
	exec = wasmExecuteOf(t, res.Messages[1], &adapterMsg)
	require.Equal(t, adapterAddr, exec.ContractAddr)
	require.NotNil(t, adapterMsg.RedeemAndTransfer)
	require.Equal(t, senderAddr, *adapterMsg.RedeemAndTransfer.Recipient)
	require.Equal(t, sdk.Coins{sim.ReturnAsset}, exec.Funds)
}

func TestSwapCw20OfferViaHook(t *testing.T) {
	k, ctx, q := setupReady(t)

	sim := swapSimReturning(nativeDenom, 95)
	poolSimHandler(t, q, sdk.Coin{}, nil, sim, types.PoolStateResponse{})

	res, err := k.Execute(ctx, types.MessageInfo{Sender: astroAddr}, types.ExecuteMsg{
		Receive: &types.Cw20ReceiveMsg{
			Sender: senderAddr,
			Amount: math.NewInt(100),
			Msg:    mustJSON(t, types.Cw20HookMsg{Swap: &types.HookSwapMsg{To: strPtr(otherAddr)}}),
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)

	// Wrap the received CW20 through the denom adapter
	var cw20Msg types.Cw20ExecuteMsg
	exec := wasmExecuteOf(t, res.Messages[0], &cw20Msg)
	require.Equal(t, adapterAddr, exec.ContractAddr)
	require.NotNil(t, cw20Msg.Send)
	require.Equal(t, adapterAddr, cw20Msg.Send.Contract)
	require.Equal(t, math.NewInt(100), cw20Msg.Send.Amount)

	// Native ask pays out directly to the requested recipient
	var poolMsg types.PoolExecuteMsg
	exec = wasmExecuteOf(t, res.Messages[1], &poolMsg)
	require.Equal(t, poolAddr, exec.ContractAddr)
	require.NotNil(t, poolMsg.SwapExactIn)
	require.Equal(t, nativeDenom, poolMsg.SwapExactIn.AskDenom)
	require.NotNil(t, poolMsg.SwapExactIn.Recipient)
	require.Equal(t, otherAddr, *poolMsg.SwapExactIn.Recipient)
	require.Equal(t, sdk.Coins{sdk.NewCoin(syntheticAstro(), math.NewInt(100))}, exec.Funds)
}

func TestSwapHookUnauthorizedToken(t *testing.T) {
	k, ctx, _ := setupReady(t)

	_, err := k.Execute(ctx, types.MessageInfo{Sender: otherAddr}, types.ExecuteMsg{
		Receive: &types.Cw20ReceiveMsg{
			Sender: senderAddr,
			Amount: math.NewInt(100),
			Msg:    mustJSON(t, types.Cw20HookMsg{Swap: &types.HookSwapMsg{}}),
		},
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestSwapHookRejectsNonPositiveAmount(t *testing.T) {
	k, ctx, _ := setupReady(t)

	for _, amount := range []math.Int{math.NewInt(-100), math.ZeroInt()} {
		_, err := k.Execute(ctx, types.MessageInfo{Sender: astroAddr}, types.ExecuteMsg{
			Receive: &types.Cw20ReceiveMsg{
				Sender: senderAddr,
				Amount: amount,
				Msg:    mustJSON(t, types.Cw20HookMsg{Swap: &types.HookSwapMsg{}}),
			},
		})
		require.ErrorIs(t, err, types.ErrInvalidZeroAmount)
	}
}

func TestSwapDirectCw20Rejected(t *testing.T) {
	k, ctx, _ := setupReady(t)

	_, err := k.Execute(ctx, types.MessageInfo{Sender: senderAddr}, types.ExecuteMsg{
		Swap: &types.SwapMsg{
			OfferAsset: types.NewAsset(types.NewTokenAssetInfo(astroAddr), math.NewInt(100)),
		},
	})
	require.ErrorIs(t, err, types.ErrCw20DirectSwap)
}

func TestSwapOfferNotInPair(t *testing.T) {
	k, ctx, _ := setupReady(t)

	offer := types.NewAsset(types.NewNativeAssetInfo("uusd"), math.NewInt(100))
	_, err := k.Swap(ctx, types.MessageInfo{
		Sender: senderAddr,
		Funds:  sdk.NewCoins(sdk.NewCoin("uusd", math.NewInt(100))),
	}, senderAddr, offer, nil, nil, nil)
	require.ErrorIs(t, err, types.ErrAssetMismatch)
}

func TestSwapNativeFundsMismatch(t *testing.T) {
	k, ctx, _ := setupReady(t)

	offer := types.NewAsset(types.NewNativeAssetInfo(nativeDenom), math.NewInt(100))
	_, err := k.Swap(ctx, types.MessageInfo{
		Sender: senderAddr,
		Funds:  sdk.NewCoins(sdk.NewCoin(nativeDenom, math.NewInt(50))),
	}, senderAddr, offer, nil, nil, nil)
	require.ErrorIs(t, err, types.ErrInvalidFunds)
}

func TestSwapBeliefPriceTranslation(t *testing.T) {
	k, ctx, q := setupReady(t)

	sim := swapSimReturning(syntheticAstro(), 95)
	poolSimHandler(t, q, sdk.Coin{}, nil, sim, types.PoolStateResponse{})

	belief := math.LegacyMustNewDecFromStr("1.5")
	offer := types.NewAsset(types.NewNativeAssetInfo(nativeDenom), math.NewInt(100))
	res, err := k.Swap(ctx, types.MessageInfo{
		Sender: senderAddr,
		Funds:  sdk.NewCoins(sdk.NewCoin(nativeDenom, math.NewInt(100))),
	}, senderAddr, offer, decPtr(belief), nil, nil)
	require.NoError(t, err)

	var poolMsg types.PoolExecuteMsg
	wasmExecuteOf(t, res.Messages[0], &poolMsg)
	sc := poolMsg.SwapExactIn.SlippageControl
	require.NotNil(t, sc)
	require.Equal(t, nativeDenom, sc.BeliefPrice.BaseAsset)
	require.Equal(t, syntheticAstro(), sc.BeliefPrice.QuoteAsset)
	require.Equal(t, belief, sc.BeliefPrice.Price)
	// Default max spread applies when the caller supplies none
	require.Equal(t, math.LegacyMustNewDecFromStr(types.DefaultSlippage), sc.SlippageTolerance)
}

func TestSwapExplicitMaxSpread(t *testing.T) {
	k, ctx, q := setupReady(t)

	sim := swapSimReturning(syntheticAstro(), 95)
	poolSimHandler(t, q, sdk.Coin{}, nil, sim, types.PoolStateResponse{})

	belief := math.LegacyMustNewDecFromStr("1.5")
	spread := math.LegacyMustNewDecFromStr("0.02")
	offer := types.NewAsset(types.NewNativeAssetInfo(nativeDenom), math.NewInt(100))
	res, err := k.Swap(ctx, types.MessageInfo{
		Sender: senderAddr,
		Funds:  sdk.NewCoins(sdk.NewCoin(nativeDenom, math.NewInt(100))),
	}, senderAddr, offer, decPtr(belief), decPtr(spread), nil)
	require.NoError(t, err)

	var poolMsg types.PoolExecuteMsg
	wasmExecuteOf(t, res.Messages[0], &poolMsg)
	require.Equal(t, spread, poolMsg.SwapExactIn.SlippageControl.SlippageTolerance)
}

func TestExecuteUnsupportedVerbs(t *testing.T) {
	k, ctx, _ := setupReady(t)

	_, err := k.Execute(ctx, types.MessageInfo{Sender: senderAddr}, types.ExecuteMsg{
		UpdateConfig: []byte(`{}`),
	})
	require.ErrorIs(t, err, types.ErrNonSupported)

	_, err = k.Execute(ctx, types.MessageInfo{Sender: senderAddr}, types.ExecuteMsg{})
	require.ErrorIs(t, err, types.ErrNonSupported)
}
