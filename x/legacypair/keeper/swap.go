package keeper

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// Swap translates a legacy swap into the backend pool's exact-in swap. A
// CW20 offer asset (arriving through the token send hook) is wrapped into
// its synthetic denom first; a CW20 ask asset makes the adapter itself the
// backend recipient so the proceeds can be unwrapped to the resolved
// recipient afterwards.
func (k Keeper) Swap(
	ctx sdk.Context,
	info types.MessageInfo,
	sender string,
	offerAsset types.Asset,
	beliefPrice *math.LegacyDec,
	maxSpread *math.LegacyDec,
	to *string,
) (res *types.Response, err error) {
	start := time.Now()
	defer func() {
		k.metrics.observeOp("swap", err)
		k.metrics.TranslationLatency.Observe(time.Since(start).Seconds())
	}()

	if err := offerAsset.AssertSentNativeTokenBalance(info.Funds); err != nil {
		return nil, err
	}

	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	assetInfos := config.PairInfo.AssetInfos

	var askAssetInfo types.AssetInfo
	switch {
	case offerAsset.Info.Equal(assetInfos[0]):
		askAssetInfo = assetInfos[1]
	case offerAsset.Info.Equal(assetInfos[1]):
		askAssetInfo = assetInfos[0]
	default:
		return nil, types.ErrAssetMismatch
	}

	askDenom := types.ToBackendDenom(askAssetInfo, config.Cw20AdapterAddr)
	offerDenom := types.ToBackendDenom(offerAsset.Info, config.Cw20AdapterAddr)
	askAssetIsCw20 := !askAssetInfo.IsNativeToken()
	offerAssetIsCw20 := !offerAsset.IsNativeToken()

	res = types.NewResponse()

	// Wrap a CW20 offer into its synthetic denom. The send targets the denom
	// adapter's own address on both ends; the adapter holds the synthetic
	// coin under the same derivation, so the backend swap can consume it.
	if offerAssetIsCw20 {
		wrap, err := types.NewWasmExecuteMsg(config.Cw20AdapterAddr,
			types.Cw20ExecuteMsg{Send: &types.Cw20SendMsg{
				Contract: config.Cw20AdapterAddr,
				Amount:   offerAsset.Amount,
				Msg:      emptyHookPayload,
			}}, sdk.Coins{})
		if err != nil {
			return nil, err
		}
		res.AddMessage(wrap)
	}

	// A wrapped ask leaves the backend recipient unset so the proceeds land
	// here and can be unwrapped; otherwise pay out directly.
	var recipient *string
	if !askAssetIsCw20 {
		resolved := sender
		if to != nil {
			resolved = *to
		}
		recipient = &resolved
	}

	resolvedSpread := math.LegacyMustNewDecFromStr(types.DefaultSlippage)
	if maxSpread != nil {
		resolvedSpread = *maxSpread
	}
	var slippageControl *types.SlippageControl
	if beliefPrice != nil {
		slippageControl = &types.SlippageControl{
			BeliefPrice: types.Price{
				BaseAsset:  offerDenom,
				QuoteAsset: askDenom,
				Price:      *beliefPrice,
			},
			SlippageTolerance: resolvedSpread,
		}
	}

	underlyingPool, err := k.GetUnderlyingPool(ctx)
	if err != nil {
		return nil, err
	}
	offerFunds := sdk.Coins{sdk.NewCoin(offerDenom, offerAsset.Amount)}
	swap, err := types.NewWasmExecuteMsg(underlyingPool, types.PoolExecuteMsg{
		SwapExactIn: &types.PoolSwapExactInMsg{
			AskDenom:        askDenom,
			Recipient:       recipient,
			SlippageControl: slippageControl,
		},
	}, offerFunds)
	if err != nil {
		return nil, err
	}
	res.AddMessage(swap)

	// Learn the return amount from a fresh simulation against current state
	sim, err := k.simulateSwapExactIn(ctx, underlyingPool, askDenom, offerFunds)
	if err != nil {
		return nil, err
	}
	k.metrics.SimulationsTotal.WithLabelValues("swap_exact_in").Inc()

	if askAssetIsCw20 {
		resolved := sender
		if to != nil {
			resolved = *to
		}
		unwrap, err := types.NewWasmExecuteMsg(config.Cw20AdapterAddr,
			types.AdapterExecuteMsg{RedeemAndTransfer: &types.RedeemAndTransferMsg{
				Recipient: &resolved,
			}}, sdk.Coins{sim.ReturnAsset})
		if err != nil {
			return nil, err
		}
		res.AddMessage(unwrap)
	}

	k.Logger(ctx).Info("swap translated",
		"sender", sender,
		"offer", offerAsset.String(),
		"ask_denom", askDenom,
		"return_amount", sim.ReturnAsset.Amount.String(),
	)

	return res, nil
}
