package keeper

import (
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// Execute dispatches the legacy execute verbs. Verbs outside the supported
// set fail as unsupported.
func (k Keeper) Execute(ctx sdk.Context, info types.MessageInfo, msg types.ExecuteMsg) (*types.Response, error) {
	switch {
	case msg.Receive != nil:
		return k.receiveCw20(ctx, info, *msg.Receive)
	case msg.ProvideLiquidity != nil:
		return k.ProvideLiquidity(ctx, info, *msg.ProvideLiquidity)
	case msg.Swap != nil:
		swapMsg := *msg.Swap
		if err := swapMsg.OfferAsset.Info.Validate(); err != nil {
			return nil, err
		}
		if !swapMsg.OfferAsset.IsNativeToken() {
			return nil, types.ErrCw20DirectSwap
		}
		to, err := validateOptionalAddr(swapMsg.To)
		if err != nil {
			return nil, err
		}
		return k.Swap(ctx, info, info.Sender, swapMsg.OfferAsset,
			swapMsg.BeliefPrice, swapMsg.MaxSpread, to)
	default:
		return nil, types.ErrNonSupported
	}
}

// receiveCw20 handles the token-send hook sub-dispatch: swap-via-token and
// withdraw-liquidity-via-token.
func (k Keeper) receiveCw20(ctx sdk.Context, info types.MessageInfo, received types.Cw20ReceiveMsg) (*types.Response, error) {
	var hook types.Cw20HookMsg
	if err := json.Unmarshal(received.Msg, &hook); err != nil {
		return nil, sdkerrors.Wrap(err, "unmarshal cw20 hook")
	}
	if received.Amount.IsNil() || !received.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInvalidZeroAmount, "received amount must be positive")
	}

	switch {
	case hook.Swap != nil:
		// Only one of the pair's token contracts may trigger a hook swap
		config, err := k.GetConfig(ctx)
		if err != nil {
			return nil, err
		}
		authorized := false
		for _, assetInfo := range config.PairInfo.AssetInfos {
			if assetInfo.Token != nil && assetInfo.Token.ContractAddr == info.Sender {
				authorized = true
			}
		}
		if !authorized {
			return nil, types.ErrUnauthorized
		}

		to, err := validateOptionalAddr(hook.Swap.To)
		if err != nil {
			return nil, err
		}
		offerAsset := types.NewAsset(types.NewTokenAssetInfo(info.Sender), received.Amount)
		return k.Swap(ctx, info, received.Sender, offerAsset,
			hook.Swap.BeliefPrice, hook.Swap.MaxSpread, to)

	case hook.WithdrawLiquidity != nil:
		return k.WithdrawLiquidity(ctx, info, received.Sender, received.Amount,
			hook.WithdrawLiquidity.Assets)

	default:
		return nil, types.ErrNonSupported
	}
}

// validateOptionalAddr bech32-validates an optional address argument
func validateOptionalAddr(addr *string) (*string, error) {
	if addr == nil {
		return nil, nil
	}
	if _, err := sdk.AccAddressFromBech32(*addr); err != nil {
		return nil, sdkerrors.Wrapf(err, "invalid address %s", *addr)
	}
	return addr, nil
}
