package keeper

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// WithdrawLiquidity translates a legacy liquidity withdrawal. Reached only
// through the LP representation token's send hook: the adapter burns the
// received LP tokens, withdraws share from the backend pool using its native
// LP denom, and fans the simulated proceeds out to the original sender,
// unwrapping synthetic denoms through the denom adapter.
func (k Keeper) WithdrawLiquidity(ctx sdk.Context, info types.MessageInfo, sender string, amount math.Int, assets []types.Asset) (res *types.Response, err error) {
	start := time.Now()
	defer func() {
		k.metrics.observeOp("withdraw_liquidity", err)
		k.metrics.TranslationLatency.Observe(time.Since(start).Seconds())
	}()

	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if info.Sender != config.PairInfo.LiquidityToken {
		return nil, types.ErrUnauthorized
	}
	if len(assets) != 0 {
		return nil, types.ErrImbalancedWithdraw
	}

	res = types.NewResponse()

	// Burn the received LP representation tokens
	burn, err := types.NewWasmExecuteMsg(config.PairInfo.LiquidityToken,
		types.Cw20ExecuteMsg{Burn: &types.Cw20BurnMsg{Amount: amount}}, sdk.Coins{})
	if err != nil {
		return nil, err
	}
	res.AddMessage(burn)

	// Withdraw share from the underlying pool in its native LP denom
	underlyingPool, err := k.GetUnderlyingPool(ctx)
	if err != nil {
		return nil, err
	}
	lpDenom, err := k.GetUnderlyingLPDenom(ctx)
	if err != nil {
		return nil, err
	}
	withdraw, err := types.NewWasmExecuteMsg(underlyingPool, types.PoolExecuteMsg{
		WithdrawLiquidity: &types.PoolWithdrawLiquidityMsg{MinOut: []sdk.Coin{}},
	}, sdk.Coins{sdk.NewCoin(lpDenom, amount)})
	if err != nil {
		return nil, err
	}
	res.AddMessage(withdraw)

	withdrawnAssets, err := k.simulateWithdrawLiquidity(ctx, underlyingPool, amount)
	if err != nil {
		return nil, err
	}
	k.metrics.SimulationsTotal.WithLabelValues("withdraw_liquidity").Inc()

	// Unwrap synthetic coins through the adapter, send the rest directly,
	// in the order the backend reports them.
	for _, coin := range withdrawnAssets {
		if types.IsSyntheticDenom(coin.Denom, config.Cw20AdapterAddr) {
			recipient := sender
			unwrap, err := types.NewWasmExecuteMsg(config.Cw20AdapterAddr,
				types.AdapterExecuteMsg{RedeemAndTransfer: &types.RedeemAndTransferMsg{
					Recipient: &recipient,
				}}, sdk.Coins{coin})
			if err != nil {
				return nil, err
			}
			res.AddMessage(unwrap)
		} else {
			res.AddMessage(types.NewBankSendMsg(sender, sdk.Coins{coin}))
		}
	}

	k.Logger(ctx).Info("withdraw liquidity translated",
		"sender", sender,
		"withdrawn_share", amount.String(),
		"assets", len(withdrawnAssets),
	)

	return res.
		AddAttribute(types.AttributeKeyAction, types.ActionWithdrawLiquidity).
		AddAttribute(types.AttributeKeySender, sender).
		AddAttribute(types.AttributeKeyWithdrawnShare, amount.String()), nil
}
