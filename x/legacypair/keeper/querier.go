package keeper

import (
	"encoding/json"
	"fmt"
	"strings"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// querySmart marshals req, queries the contract and unmarshals into resp
func (k Keeper) querySmart(ctx sdk.Context, contractAddr string, req, resp any) error {
	bz, err := json.Marshal(req)
	if err != nil {
		return sdkerrors.Wrap(err, "marshal query")
	}
	out, err := k.querier.QuerySmart(ctx, contractAddr, bz)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(out, resp); err != nil {
		return sdkerrors.Wrapf(err, "unmarshal query response from %s", contractAddr)
	}
	return nil
}

// queryPairInfo looks up a pool registered in the factory for the asset pair
func (k Keeper) queryPairInfo(ctx sdk.Context, factoryAddr string, assetInfos []types.AssetInfo) (types.FactoryPairInfo, error) {
	var res types.FactoryPairInfo
	err := k.querySmart(ctx, factoryAddr,
		types.FactoryQueryMsg{Pair: &types.PairQuery{AssetInfos: assetInfos}}, &res)
	return res, err
}

// queryFactoryConfig reads the factory's owner and generator configuration
func (k Keeper) queryFactoryConfig(ctx sdk.Context, factoryAddr string) (types.FactoryConfigResponse, error) {
	var res types.FactoryConfigResponse
	err := k.querySmart(ctx, factoryAddr, types.FactoryQueryMsg{Config: &struct{}{}}, &res)
	return res, err
}

// queryTokenSymbol reads a CW20 token's symbol
func (k Keeper) queryTokenSymbol(ctx sdk.Context, contractAddr string) (string, error) {
	var res types.TokenInfoResponse
	if err := k.querySmart(ctx, contractAddr, types.Cw20QueryMsg{TokenInfo: &struct{}{}}, &res); err != nil {
		return "", err
	}
	return res.Symbol, nil
}

// simulateProvideLiquidity previews the LP coin minted for the given assets
func (k Keeper) simulateProvideLiquidity(ctx sdk.Context, poolAddr string, assets []sdk.Coin) (sdk.Coin, error) {
	var res sdk.Coin
	err := k.querySmart(ctx, poolAddr, types.PoolQueryMsg{
		SimulateProvideLiquidity: &types.SimulateProvideLiquidityQuery{Assets: assets},
	}, &res)
	return res, err
}

// simulateWithdrawLiquidity previews the assets returned for an LP amount
func (k Keeper) simulateWithdrawLiquidity(ctx sdk.Context, poolAddr string, amount math.Int) ([]sdk.Coin, error) {
	var res []sdk.Coin
	err := k.querySmart(ctx, poolAddr, types.PoolQueryMsg{
		SimulateWithdrawLiquidity: &types.SimulateWithdrawLiquidityQuery{Amount: amount},
	}, &res)
	return res, err
}

// simulateSwapExactIn previews an exact-in swap against the pool
func (k Keeper) simulateSwapExactIn(ctx sdk.Context, poolAddr, askDenom string, offerAssets []sdk.Coin) (types.SimulateSwapResponse, error) {
	var res types.SimulateSwapResponse
	err := k.querySmart(ctx, poolAddr, types.PoolQueryMsg{
		SimulateSwapExactIn: &types.SimulateSwapExactInQuery{AskDenom: askDenom, OfferAssets: offerAssets},
	}, &res)
	return res, err
}

// simulateSwapExactOut previews an exact-out swap against the pool
func (k Keeper) simulateSwapExactOut(ctx sdk.Context, poolAddr string, ask sdk.Coin, offerDenom string) (types.SimulateSwapResponse, error) {
	var res types.SimulateSwapResponse
	err := k.querySmart(ctx, poolAddr, types.PoolQueryMsg{
		SimulateSwapExactOut: &types.SimulateSwapExactOutQuery{Ask: ask, OfferDenom: offerDenom},
	}, &res)
	return res, err
}

// queryPoolState reads the pool's reserves and LP supply
func (k Keeper) queryPoolState(ctx sdk.Context, poolAddr string) (types.PoolStateResponse, error) {
	var res types.PoolStateResponse
	err := k.querySmart(ctx, poolAddr, types.PoolQueryMsg{PoolState: &struct{}{}}, &res)
	return res, err
}

// formatLPTokenName builds the LP token name from the pair's short symbols,
// querying CW20 contracts for their symbols.
func (k Keeper) formatLPTokenName(ctx sdk.Context, assetInfos []types.AssetInfo) (string, error) {
	shortSymbols := make([]string, 0, len(assetInfos))
	for _, info := range assetInfos {
		var symbol string
		if info.NativeToken != nil {
			symbol = info.NativeToken.Denom
		} else {
			var err error
			symbol, err = k.queryTokenSymbol(ctx, info.Token.ContractAddr)
			if err != nil {
				return "", err
			}
		}
		if len(symbol) > types.TokenSymbolMaxLength {
			symbol = symbol[:types.TokenSymbolMaxLength]
		}
		shortSymbols = append(shortSymbols, symbol)
	}
	return strings.ToUpper(fmt.Sprintf("%s-%s-LP", shortSymbols[0], shortSymbols[1])), nil
}

// backendAssetInfos projects the pair's assets onto the denoms the backend
// pool holds, representing CW20 tokens by their synthetic denom.
func backendAssetInfos(assetInfos []types.AssetInfo, adapterAddr string) []types.AssetInfo {
	projected := make([]types.AssetInfo, 0, len(assetInfos))
	for _, info := range assetInfos {
		if info.IsNativeToken() {
			projected = append(projected, info)
		} else {
			projected = append(projected, types.NewNativeAssetInfo(
				types.SyntheticDenom(adapterAddr, info.Token.ContractAddr)))
		}
	}
	return projected
}
