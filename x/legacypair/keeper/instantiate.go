package keeper

import (
	"encoding/json"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// Instantiate bootstraps a new adapter instance. It validates the asset
// pair, schedules creation of the LP representation token and either
// resolves the backend pool from the factory registry or schedules its
// creation. Both asynchronous halves complete through Reply.
func (k Keeper) Instantiate(ctx sdk.Context, contractAddr string, msg types.InstantiateMsg) (*types.Response, error) {
	if len(msg.AssetInfos) != 2 {
		return nil, types.ErrInvalidAssetCount
	}
	for _, info := range msg.AssetInfos {
		if err := info.Validate(); err != nil {
			return nil, err
		}
	}
	if msg.AssetInfos[0].Equal(msg.AssetInfos[1]) {
		return nil, types.ErrDoublingAssets
	}
	if _, err := sdk.AccAddressFromBech32(msg.FactoryAddr); err != nil {
		return nil, sdkerrors.Wrap(err, "invalid factory address")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Cw20AdapterAddr); err != nil {
		return nil, sdkerrors.Wrap(err, "invalid cw20 adapter address")
	}

	if err := k.SetContractInfo(ctx, types.ContractInfo{
		Contract: types.ContractName,
		Version:  types.ContractVersion,
	}); err != nil {
		return nil, err
	}

	config := types.Config{
		PairInfo: types.PairInfo{
			ContractAddr: contractAddr,
			// Sentinel: set exactly once when the LP token reply arrives
			LiquidityToken: "",
			AssetInfos:     msg.AssetInfos,
			PairType:       msg.PairType,
		},
		FactoryAddr:     msg.FactoryAddr,
		Cw20AdapterAddr: msg.Cw20AdapterAddr,
	}
	if err := k.SetConfig(ctx, config); err != nil {
		return nil, err
	}

	tokenName, err := k.formatLPTokenName(ctx, msg.AssetInfos)
	if err != nil {
		return nil, err
	}

	tokenInit, err := json.Marshal(types.TokenInstantiateMsg{
		Name:            tokenName,
		Symbol:          types.LPTokenSymbol,
		Decimals:        types.LPTokenDecimals,
		InitialBalances: []types.Cw20Coin{},
		Mint:            &types.MinterInfo{Minter: contractAddr},
	})
	if err != nil {
		return nil, sdkerrors.Wrap(err, "marshal token instantiate msg")
	}

	res := types.NewResponse()
	res.AddSubMsg(types.InstantiateTokenReplyID, types.CosmosMsg{
		Wasm: &types.WasmMsg{Instantiate: &types.WasmInstantiate{
			CodeID: msg.TokenCodeID,
			Msg:    tokenInit,
			Funds:  sdk.Coins{},
			Label:  types.LPTokenLabel,
		}},
	}, types.ReplyOnSuccess)

	// Project CW20 assets onto their synthetic native denoms and look for an
	// already registered backend pool. Any lookup error counts as absent.
	projected := backendAssetInfos(msg.AssetInfos, msg.Cw20AdapterAddr)
	pairInfo, err := k.queryPairInfo(ctx, config.FactoryAddr, projected)
	if err != nil {
		createPair, err := types.NewWasmExecuteMsg(config.FactoryAddr, types.FactoryExecuteMsg{
			CreatePair: &types.CreatePairMsg{
				PairType:   msg.PairType,
				AssetInfos: projected,
				InitParams: msg.InitParams,
			},
		}, sdk.Coins{})
		if err != nil {
			return nil, err
		}
		res.AddSubMsg(types.CreateUnderlyingPoolReplyID, createPair, types.ReplyOnSuccess)
	} else {
		k.SetUnderlyingPool(ctx, pairInfo.ContractAddr)
		k.SetUnderlyingLPDenom(ctx, pairInfo.LiquidityToken)
	}

	k.Logger(ctx).Info("instantiated legacy pair adapter",
		"pair_type", msg.PairType.String(),
		"asset_infos", fmt.Sprintf("%s, %s", msg.AssetInfos[0], msg.AssetInfos[1]),
		"pool_resolved", err == nil,
	)

	return res.
		AddAttribute(types.AttributeKeyAction, types.ActionInstantiate).
		AddAttribute(types.AttributeKeyPairType, msg.PairType.String()).
		AddAttribute(types.AttributeKeyAssetInfos,
			fmt.Sprintf("%s, %s", msg.AssetInfos[0], msg.AssetInfos[1])), nil
}
