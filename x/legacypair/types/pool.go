package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Price quotes a base asset in terms of a quote asset
type Price struct {
	BaseAsset  string         `json:"base_asset"`
	QuoteAsset string         `json:"quote_asset"`
	Price      math.LegacyDec `json:"price"`
}

// SlippageControl reverts the backend action when the execution price moves
// more than SlippageTolerance away from BeliefPrice.
type SlippageControl struct {
	BeliefPrice       Price          `json:"belief_price"`
	SlippageTolerance math.LegacyDec `json:"slippage_tolerance"`
}

// PoolProvideLiquidityMsg provides the attached native funds to the pool
type PoolProvideLiquidityMsg struct {
	AutoStake       *bool            `json:"auto_stake,omitempty"`
	Recipient       *string          `json:"recipient,omitempty"`
	MinOut          *math.Int        `json:"min_out,omitempty"`
	SlippageControl *SlippageControl `json:"slippage_control,omitempty"`
}

// PoolWithdrawLiquidityMsg burns the attached LP denom for pool reserves
type PoolWithdrawLiquidityMsg struct {
	MinOut          []sdk.Coin       `json:"min_out"`
	SlippageControl *SlippageControl `json:"slippage_control,omitempty"`
}

// PoolSwapExactInMsg swaps the attached funds for the ask denom
type PoolSwapExactInMsg struct {
	AskDenom        string           `json:"ask_denom"`
	Recipient       *string          `json:"recipient,omitempty"`
	MinOut          *math.Int        `json:"min_out,omitempty"`
	SlippageControl *SlippageControl `json:"slippage_control,omitempty"`
}

// PoolExecuteMsg is the backend pool execute union
type PoolExecuteMsg struct {
	ProvideLiquidity  *PoolProvideLiquidityMsg  `json:"provide_liquidity,omitempty"`
	WithdrawLiquidity *PoolWithdrawLiquidityMsg `json:"withdraw_liquidity,omitempty"`
	SwapExactIn       *PoolSwapExactInMsg       `json:"swap_exact_in,omitempty"`
}

// SimulateProvideLiquidityQuery previews the LP amount minted for assets
type SimulateProvideLiquidityQuery struct {
	Assets   []sdk.Coin `json:"assets"`
	Reserves []sdk.Coin `json:"reserves,omitempty"`
}

// SimulateWithdrawLiquidityQuery previews the assets behind an LP amount
type SimulateWithdrawLiquidityQuery struct {
	Amount   math.Int   `json:"amount"`
	Reserves []sdk.Coin `json:"reserves,omitempty"`
}

// SimulateSwapExactInQuery previews an exact-in swap
type SimulateSwapExactInQuery struct {
	AskDenom    string     `json:"ask_denom"`
	OfferAssets []sdk.Coin `json:"offer_assets"`
	Reserves    []sdk.Coin `json:"reserves,omitempty"`
}

// SimulateSwapExactOutQuery previews an exact-out swap
type SimulateSwapExactOutQuery struct {
	Ask        sdk.Coin   `json:"ask"`
	OfferDenom string     `json:"offer_denom"`
	Reserves   []sdk.Coin `json:"reserves,omitempty"`
}

// PoolQueryMsg is the backend pool query union
type PoolQueryMsg struct {
	PoolState                 *struct{}                       `json:"pool_state,omitempty"`
	SimulateProvideLiquidity  *SimulateProvideLiquidityQuery  `json:"simulate_provide_liquidity,omitempty"`
	SimulateWithdrawLiquidity *SimulateWithdrawLiquidityQuery `json:"simulate_withdraw_liquidity,omitempty"`
	SimulateSwapExactIn       *SimulateSwapExactInQuery       `json:"simulate_swap_exact_in,omitempty"`
	SimulateSwapExactOut      *SimulateSwapExactOutQuery      `json:"simulate_swap_exact_out,omitempty"`
}

// PoolStateResponse reports the pool reserves and issued LP supply
type PoolStateResponse struct {
	PoolReserves  []sdk.Coin `json:"pool_reserves"`
	LPTokenSupply sdk.Coin   `json:"lp_token_supply"`
}

// SimulateSwapResponse is the backend swap simulation result
type SimulateSwapResponse struct {
	OfferAssets   []sdk.Coin     `json:"offer_assets"`
	ReturnAsset   sdk.Coin       `json:"return_asset"`
	PriceImpact   math.LegacyDec `json:"price_impact"`
	Commission    sdk.Coin       `json:"commission"`
	Slippage      math.LegacyDec `json:"slippage"`
	ReservesAfter []sdk.Coin     `json:"reserves_after,omitempty"`
}
