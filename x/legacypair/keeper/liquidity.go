package keeper

import (
	"encoding/json"
	"fmt"
	"time"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// emptyHookPayload is the payload sent with CW20 wrap sends; the denom
// adapter needs no arguments to wrap.
var emptyHookPayload = json.RawMessage("{}")

// ProvideLiquidity translates a legacy liquidity provision into the backend
// pool's native operation. CW20 deposits are pulled from the caller and
// wrapped into synthetic denoms before the backend call; the minted LP
// amount is learned through a synchronous simulation and minted from the LP
// representation token.
func (k Keeper) ProvideLiquidity(ctx sdk.Context, info types.MessageInfo, msg types.ProvideLiquidityMsg) (res *types.Response, err error) {
	start := time.Now()
	defer func() {
		k.metrics.observeOp("provide_liquidity", err)
		k.metrics.TranslationLatency.Observe(time.Since(start).Seconds())
	}()

	if len(msg.Assets) != 2 {
		return nil, types.ErrInvalidAssetCount
	}
	for _, asset := range msg.Assets {
		if err := asset.Info.Validate(); err != nil {
			return nil, err
		}
	}

	autoStake := msg.AutoStake != nil && *msg.AutoStake

	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := types.AssertCoinsProperlySent(info.Funds, msg.Assets, config.PairInfo.AssetInfos); err != nil {
		return nil, err
	}

	// Match the supplied assets against the configured pair, order-independent
	assetInfos := config.PairInfo.AssetInfos
	deposits := make([]math.Int, 2)
	for i, configured := range assetInfos {
		found := false
		for _, asset := range msg.Assets {
			if asset.Info.Equal(configured) {
				deposits[i] = asset.Amount
				found = true
				break
			}
		}
		if !found {
			return nil, sdkerrors.Wrap(types.ErrAssetMismatch, "wrong asset info is given")
		}
	}
	if deposits[0].IsZero() && deposits[1].IsZero() {
		return nil, types.ErrInvalidZeroAmount
	}

	res = types.NewResponse()

	// Pull pre-approved CW20 deposits from the caller
	for i, assetInfo := range assetInfos {
		if assetInfo.Token != nil && deposits[i].IsPositive() {
			transferFrom, err := types.NewWasmExecuteMsg(assetInfo.Token.ContractAddr,
				types.Cw20ExecuteMsg{TransferFrom: &types.Cw20TransferFromMsg{
					Owner:     info.Sender,
					Recipient: config.PairInfo.ContractAddr,
					Amount:    deposits[i],
				}}, sdk.Coins{})
			if err != nil {
				return nil, err
			}
			res.AddMessage(transferFrom)
		}
	}

	// Wrap the CW20 deposits into their synthetic native denoms. Unlike the
	// pulls above, which follow the configured pair order, wraps follow the
	// caller's asset order.
	for _, asset := range msg.Assets {
		if !asset.IsNativeToken() && asset.Amount.IsPositive() {
			wrap, err := types.NewWasmExecuteMsg(asset.Info.Token.ContractAddr,
				types.Cw20ExecuteMsg{Send: &types.Cw20SendMsg{
					Contract: config.Cw20AdapterAddr,
					Amount:   asset.Amount,
					Msg:      emptyHookPayload,
				}}, sdk.Coins{})
			if err != nil {
				return nil, err
			}
			res.AddMessage(wrap)
		}
	}

	// Provide liquidity in the underlying pool with all deposits translated
	// to backend denoms. Auto-stake and slippage control are never forwarded;
	// the legacy belief-price model does not map onto the backend's.
	underlyingPool, err := k.GetUnderlyingPool(ctx)
	if err != nil {
		return nil, err
	}
	funds := make([]sdk.Coin, 0, 2)
	for _, asset := range msg.Assets {
		if asset.Amount.IsPositive() {
			funds = append(funds, sdk.NewCoin(
				types.ToBackendDenom(asset.Info, config.Cw20AdapterAddr), asset.Amount))
		}
	}
	noAutoStake := false
	provide, err := types.NewWasmExecuteMsg(underlyingPool, types.PoolExecuteMsg{
		ProvideLiquidity: &types.PoolProvideLiquidityMsg{AutoStake: &noAutoStake},
	}, funds)
	if err != nil {
		return nil, err
	}
	res.AddMessage(provide)

	// The backend call's own response is not inspectable before this response
	// is built, so the minted amount comes from a fresh simulation.
	mintedLP, err := k.simulateProvideLiquidity(ctx, underlyingPool, funds)
	if err != nil {
		return nil, err
	}
	k.metrics.SimulationsTotal.WithLabelValues("provide_liquidity").Inc()

	recipient := info.Sender
	if msg.Receiver != nil {
		if _, err := sdk.AccAddressFromBech32(*msg.Receiver); err != nil {
			return nil, sdkerrors.Wrap(err, "invalid receiver address")
		}
		recipient = *msg.Receiver
	}
	mintMsgs, err := k.mintLiquidityTokenMessages(ctx, config, recipient, mintedLP.Amount, autoStake)
	if err != nil {
		return nil, err
	}
	for _, m := range mintMsgs {
		res.AddMessage(m)
	}

	k.Logger(ctx).Info("provide liquidity translated",
		"sender", info.Sender,
		"receiver", recipient,
		"minted_lp", mintedLP.Amount.String(),
	)

	return res.
		AddAttribute(types.AttributeKeyAction, types.ActionProvideLiquidity).
		AddAttribute(types.AttributeKeySender, info.Sender).
		AddAttribute(types.AttributeKeyReceiver, recipient).
		AddAttribute(types.AttributeKeyAssets,
			fmt.Sprintf("%s, %s", msg.Assets[0], msg.Assets[1])), nil
}

// mintLiquidityTokenMessages mints LP representation tokens for a recipient.
// With auto-stake the tokens are minted to the adapter and forwarded to the
// generator with a deposit hook on behalf of the recipient.
func (k Keeper) mintLiquidityTokenMessages(ctx sdk.Context, config types.Config, recipient string, amount math.Int, autoStake bool) ([]types.CosmosMsg, error) {
	lpToken := config.PairInfo.LiquidityToken

	if !autoStake {
		mint, err := types.NewWasmExecuteMsg(lpToken, types.Cw20ExecuteMsg{
			Mint: &types.Cw20MintMsg{Recipient: recipient, Amount: amount},
		}, sdk.Coins{})
		if err != nil {
			return nil, err
		}
		return []types.CosmosMsg{mint}, nil
	}

	factoryConfig, err := k.queryFactoryConfig(ctx, config.FactoryAddr)
	if err != nil {
		return nil, err
	}
	if factoryConfig.GeneratorAddress == nil {
		return nil, types.ErrAutoStake
	}

	mint, err := types.NewWasmExecuteMsg(lpToken, types.Cw20ExecuteMsg{
		Mint: &types.Cw20MintMsg{Recipient: config.PairInfo.ContractAddr, Amount: amount},
	}, sdk.Coins{})
	if err != nil {
		return nil, err
	}
	hook, err := json.Marshal(types.GeneratorHookMsg{DepositFor: recipient})
	if err != nil {
		return nil, err
	}
	stake, err := types.NewWasmExecuteMsg(lpToken, types.Cw20ExecuteMsg{
		Send: &types.Cw20SendMsg{
			Contract: *factoryConfig.GeneratorAddress,
			Amount:   amount,
			Msg:      hook,
		},
	}, sdk.Coins{})
	if err != nil {
		return nil, err
	}
	return []types.CosmosMsg{mint, stake}, nil
}
