package types

import (
	"encoding/json"

	"cosmossdk.io/math"
)

// InstantiateMsg creates a new adapter instance for a legacy asset pair
type InstantiateMsg struct {
	// The type of pair to create, e.g. xyk or stable
	PairType PairType `json:"pair_type"`
	// Information about the two assets in the pair
	AssetInfos []AssetInfo `json:"asset_infos"`
	// Code id used to instantiate the LP representation token
	TokenCodeID uint64 `json:"token_code_id"`
	// The factory contract address
	FactoryAddr string `json:"factory_addr"`
	// The denom adapter contract address
	Cw20AdapterAddr string `json:"cw20_adapter_addr"`
	// Optional serialized parameters for custom pool types
	InitParams json.RawMessage `json:"init_params,omitempty"`
}

// ExecuteMsg dispatches the legacy execute verbs. Exactly one field is set.
// Unsupported legacy verbs arrive as UpdateConfig or leave every field nil.
type ExecuteMsg struct {
	Receive          *Cw20ReceiveMsg      `json:"receive,omitempty"`
	ProvideLiquidity *ProvideLiquidityMsg `json:"provide_liquidity,omitempty"`
	Swap             *SwapMsg             `json:"swap,omitempty"`
	UpdateConfig     json.RawMessage      `json:"update_config,omitempty"`
}

// ProvideLiquidityMsg supplies both pair assets in exchange for LP tokens
type ProvideLiquidityMsg struct {
	Assets            []Asset         `json:"assets"`
	SlippageTolerance *math.LegacyDec `json:"slippage_tolerance,omitempty"`
	AutoStake         *bool           `json:"auto_stake,omitempty"`
	Receiver          *string         `json:"receiver,omitempty"`
}

// SwapMsg swaps a native offer asset for the other pair asset
type SwapMsg struct {
	OfferAsset  Asset           `json:"offer_asset"`
	BeliefPrice *math.LegacyDec `json:"belief_price,omitempty"`
	MaxSpread   *math.LegacyDec `json:"max_spread,omitempty"`
	To          *string         `json:"to,omitempty"`
}

// Cw20ReceiveMsg is delivered by a CW20 contract when tokens are sent to the
// adapter with an embedded hook payload.
type Cw20ReceiveMsg struct {
	Sender string          `json:"sender"`
	Amount math.Int        `json:"amount"`
	Msg    json.RawMessage `json:"msg"`
}

// Cw20HookMsg dispatches the token-send hook verbs
type Cw20HookMsg struct {
	Swap              *HookSwapMsg          `json:"swap,omitempty"`
	WithdrawLiquidity *WithdrawLiquidityMsg `json:"withdraw_liquidity,omitempty"`
}

// HookSwapMsg swaps the CW20 tokens that arrived with the hook
type HookSwapMsg struct {
	BeliefPrice *math.LegacyDec `json:"belief_price,omitempty"`
	MaxSpread   *math.LegacyDec `json:"max_spread,omitempty"`
	To          *string         `json:"to,omitempty"`
}

// WithdrawLiquidityMsg burns the received LP tokens and returns the pair
// assets. Assets must be empty: imbalanced withdrawal is disabled.
type WithdrawLiquidityMsg struct {
	Assets []Asset `json:"assets,omitempty"`
}

// QueryMsg dispatches the legacy read verbs. Exactly one field is set.
type QueryMsg struct {
	Pair              *struct{}             `json:"pair,omitempty"`
	Pool              *struct{}             `json:"pool,omitempty"`
	Share             *ShareQuery           `json:"share,omitempty"`
	Simulation        *SimulationQuery      `json:"simulation,omitempty"`
	ReverseSimulation *ReverseSimulationQry `json:"reverse_simulation,omitempty"`
	CumulativePrices  *struct{}             `json:"cumulative_prices,omitempty"`
	Config            *struct{}             `json:"config,omitempty"`
	AssetBalanceAt    *AssetBalanceAtQuery  `json:"asset_balance_at,omitempty"`
}

// ShareQuery previews the assets withdrawable for an LP token amount
type ShareQuery struct {
	Amount math.Int `json:"amount"`
}

// SimulationQuery simulates a forward swap of the offer asset
type SimulationQuery struct {
	OfferAsset Asset `json:"offer_asset"`
}

// ReverseSimulationQry simulates the offer needed for a desired ask amount
type ReverseSimulationQry struct {
	AskAsset Asset `json:"ask_asset"`
}

// AssetBalanceAtQuery is accepted on the wire but not implemented
type AssetBalanceAtQuery struct {
	AssetInfo   AssetInfo `json:"asset_info"`
	BlockHeight math.Int  `json:"block_height"`
}

// PoolResponse reports the pair reserves and total LP supply in legacy shape
type PoolResponse struct {
	Assets     []Asset  `json:"assets"`
	TotalShare math.Int `json:"total_share"`
}

// SimulationResponse is the legacy forward swap simulation result
type SimulationResponse struct {
	ReturnAmount     math.Int `json:"return_amount"`
	SpreadAmount     math.Int `json:"spread_amount"`
	CommissionAmount math.Int `json:"commission_amount"`
}

// ReverseSimulationResponse is the legacy reverse swap simulation result
type ReverseSimulationResponse struct {
	OfferAmount      math.Int `json:"offer_amount"`
	SpreadAmount     math.Int `json:"spread_amount"`
	CommissionAmount math.Int `json:"commission_amount"`
}

// ConfigResponse is the legacy pair configuration shape
type ConfigResponse struct {
	BlockTimeLast uint64          `json:"block_time_last"`
	Params        json.RawMessage `json:"params,omitempty"`
	Owner         string          `json:"owner"`
	FactoryAddr   string          `json:"factory_addr"`
}

// MigrateMsg takes no arguments
type MigrateMsg struct{}
