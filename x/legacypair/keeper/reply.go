package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// Reply resumes the bootstrap after an asynchronous sub-call completes. Only
// the two bootstrap correlation ids are recognized; every other reply shape
// aborts the enclosing transaction.
func (k Keeper) Reply(ctx sdk.Context, reply types.Reply) (*types.Response, error) {
	if reply.Result.Ok == nil {
		return nil, types.ErrFailedToParseReply
	}

	switch reply.ID {
	case types.InstantiateTokenReplyID:
		return k.handleTokenInstantiated(ctx, reply.Result.Ok)
	case types.CreateUnderlyingPoolReplyID:
		return k.handlePoolCreated(ctx, reply.Result.Ok)
	default:
		return nil, types.ErrFailedToParseReply
	}
}

// handleTokenInstantiated records the LP representation token address. A
// reply is consumable exactly once: a second delivery is rejected.
func (k Keeper) handleTokenInstantiated(ctx sdk.Context, res *types.SubMsgResponse) (*types.Response, error) {
	if res.Data == nil {
		return nil, types.ErrFailedToParseReply
	}

	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config.PairInfo.LiquidityToken != "" {
		return nil, types.ErrUnauthorized
	}

	initRes, err := types.ParseInstantiateResponseData(res.Data)
	if err != nil {
		return nil, err
	}
	if _, err := sdk.AccAddressFromBech32(initRes.ContractAddress); err != nil {
		return nil, sdkerrors.Wrap(err, "invalid liquidity token address")
	}

	config.PairInfo.LiquidityToken = initRes.ContractAddress
	if err := k.SetConfig(ctx, config); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("liquidity token instantiated", "addr", initRes.ContractAddress)

	return types.NewResponse().
		AddAttribute(types.AttributeKeyLiquidityTokenAddr, config.PairInfo.LiquidityToken), nil
}

// handlePoolCreated resolves the freshly created backend pool from the
// factory registry and persists its address and native LP denom.
func (k Keeper) handlePoolCreated(ctx sdk.Context, res *types.SubMsgResponse) (*types.Response, error) {
	if res.Data == nil {
		return nil, types.ErrFailedToParseReply
	}

	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	projected := backendAssetInfos(config.PairInfo.AssetInfos, config.Cw20AdapterAddr)
	pairInfo, err := k.queryPairInfo(ctx, config.FactoryAddr, projected)
	if err != nil {
		return nil, err
	}

	k.SetUnderlyingPool(ctx, pairInfo.ContractAddr)
	k.SetUnderlyingLPDenom(ctx, pairInfo.LiquidityToken)

	k.Logger(ctx).Info("underlying pool created",
		"pool", pairInfo.ContractAddr,
		"lp_denom", pairInfo.LiquidityToken,
	)

	return types.NewResponse().
		AddAttribute(types.AttributeKeyLiquidityTokenAddr, config.PairInfo.LiquidityToken), nil
}
