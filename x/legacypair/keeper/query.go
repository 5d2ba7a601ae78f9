package keeper

import (
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// Query dispatches the legacy read verbs and returns the JSON-encoded
// legacy-shaped response.
func (k Keeper) Query(ctx sdk.Context, msg types.QueryMsg) ([]byte, error) {
	switch {
	case msg.Pair != nil:
		config, err := k.GetConfig(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(config.PairInfo)
	case msg.Pool != nil:
		res, err := k.QueryPool(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	case msg.Share != nil:
		res, err := k.QueryShare(ctx, msg.Share.Amount)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	case msg.Simulation != nil:
		res, err := k.QuerySimulation(ctx, msg.Simulation.OfferAsset)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	case msg.ReverseSimulation != nil:
		res, err := k.QueryReverseSimulation(ctx, msg.ReverseSimulation.AskAsset)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	case msg.CumulativePrices != nil:
		return nil, sdkerrors.Wrap(types.ErrNotImplemented, "cumulative prices")
	case msg.Config != nil:
		res, err := k.QueryConfig(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	case msg.AssetBalanceAt != nil:
		return nil, sdkerrors.Wrap(types.ErrNotImplemented, "asset balance at height")
	default:
		return nil, sdkerrors.Wrap(types.ErrNonSupported, "unknown query")
	}
}

// QueryPool reports the backend pool's reserves in legacy asset shape along
// with the total LP supply.
func (k Keeper) QueryPool(ctx sdk.Context) (types.PoolResponse, error) {
	var res types.PoolResponse

	config, err := k.GetConfig(ctx)
	if err != nil {
		return res, err
	}
	underlyingPool, err := k.GetUnderlyingPool(ctx)
	if err != nil {
		return res, err
	}
	state, err := k.queryPoolState(ctx, underlyingPool)
	if err != nil {
		return res, err
	}

	reserves := make([]types.Asset, 0, len(state.PoolReserves))
	for _, coin := range state.PoolReserves {
		reserves = append(reserves, types.FromBackendCoin(coin, config.Cw20AdapterAddr))
	}
	return types.PoolResponse{
		Assets:     reserves,
		TotalShare: state.LPTokenSupply.Amount,
	}, nil
}

// QueryShare previews the assets withdrawable for an LP token amount
func (k Keeper) QueryShare(ctx sdk.Context, amount math.Int) ([]types.Asset, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	underlyingPool, err := k.GetUnderlyingPool(ctx)
	if err != nil {
		return nil, err
	}
	withdrawn, err := k.simulateWithdrawLiquidity(ctx, underlyingPool, amount)
	if err != nil {
		return nil, err
	}

	assets := make([]types.Asset, 0, len(withdrawn))
	for _, coin := range withdrawn {
		assets = append(assets, types.FromBackendCoin(coin, config.Cw20AdapterAddr))
	}
	return assets, nil
}

// QuerySimulation previews a forward swap in legacy shape. The spread is
// the backend's slippage fraction applied to the return amount.
func (k Keeper) QuerySimulation(ctx sdk.Context, offerAsset types.Asset) (types.SimulationResponse, error) {
	var res types.SimulationResponse

	config, err := k.GetConfig(ctx)
	if err != nil {
		return res, err
	}
	assetInfos := config.PairInfo.AssetInfos

	var askAssetInfo types.AssetInfo
	switch {
	case offerAsset.Info.Equal(assetInfos[0]):
		askAssetInfo = assetInfos[1]
	case offerAsset.Info.Equal(assetInfos[1]):
		askAssetInfo = assetInfos[0]
	default:
		return res, sdkerrors.Wrap(types.ErrAssetMismatch,
			"given offer asset does not belong in the pair")
	}

	askDenom := types.ToBackendDenom(askAssetInfo, config.Cw20AdapterAddr)
	offerDenom := types.ToBackendDenom(offerAsset.Info, config.Cw20AdapterAddr)

	underlyingPool, err := k.GetUnderlyingPool(ctx)
	if err != nil {
		return res, err
	}
	sim, err := k.simulateSwapExactIn(ctx, underlyingPool, askDenom,
		[]sdk.Coin{sdk.NewCoin(offerDenom, offerAsset.Amount)})
	if err != nil {
		return res, err
	}

	return types.SimulationResponse{
		ReturnAmount:     sim.ReturnAsset.Amount,
		SpreadAmount:     sim.Slippage.MulInt(sim.ReturnAsset.Amount).TruncateInt(),
		CommissionAmount: sim.Commission.Amount,
	}, nil
}

// QueryReverseSimulation previews the offer needed for a desired ask amount
// in legacy shape.
func (k Keeper) QueryReverseSimulation(ctx sdk.Context, askAsset types.Asset) (types.ReverseSimulationResponse, error) {
	var res types.ReverseSimulationResponse

	config, err := k.GetConfig(ctx)
	if err != nil {
		return res, err
	}
	assetInfos := config.PairInfo.AssetInfos

	var offerAssetInfo types.AssetInfo
	switch {
	case askAsset.Info.Equal(assetInfos[0]):
		offerAssetInfo = assetInfos[1]
	case askAsset.Info.Equal(assetInfos[1]):
		offerAssetInfo = assetInfos[0]
	default:
		return res, sdkerrors.Wrap(types.ErrAssetMismatch,
			"given ask asset does not belong in the pair")
	}

	askDenom := types.ToBackendDenom(askAsset.Info, config.Cw20AdapterAddr)
	offerDenom := types.ToBackendDenom(offerAssetInfo, config.Cw20AdapterAddr)

	underlyingPool, err := k.GetUnderlyingPool(ctx)
	if err != nil {
		return res, err
	}
	sim, err := k.simulateSwapExactOut(ctx, underlyingPool,
		sdk.NewCoin(askDenom, askAsset.Amount), offerDenom)
	if err != nil {
		return res, err
	}
	if len(sim.OfferAssets) == 0 {
		return res, sdkerrors.Wrap(types.ErrFailedToParseReply,
			"swap exact out simulation returned no offer assets")
	}

	return types.ReverseSimulationResponse{
		OfferAmount:      sim.OfferAssets[0].Amount,
		SpreadAmount:     sim.Slippage.MulInt(sim.OfferAssets[0].Amount).TruncateInt(),
		CommissionAmount: sim.Commission.Amount,
	}, nil
}

// QueryConfig reports the pair configuration with the owner sourced from
// the factory. The legacy last-update-time is fixed at zero and no stored
// parameters are exposed.
func (k Keeper) QueryConfig(ctx sdk.Context) (types.ConfigResponse, error) {
	var res types.ConfigResponse

	config, err := k.GetConfig(ctx)
	if err != nil {
		return res, err
	}
	factoryConfig, err := k.queryFactoryConfig(ctx, config.FactoryAddr)
	if err != nil {
		return res, err
	}

	return types.ConfigResponse{
		BlockTimeLast: 0,
		Owner:         factoryConfig.Owner,
		FactoryAddr:   config.FactoryAddr,
	}, nil
}
