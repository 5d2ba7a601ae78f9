package types

import (
	"encoding/json"

	"cosmossdk.io/math"
)

// Factory messages

// CreatePairMsg asks the factory to create a backend pool for the pair
type CreatePairMsg struct {
	PairType   PairType        `json:"pair_type"`
	AssetInfos []AssetInfo     `json:"asset_infos"`
	InitParams json.RawMessage `json:"init_params,omitempty"`
}

// FactoryExecuteMsg is the factory execute union
type FactoryExecuteMsg struct {
	CreatePair *CreatePairMsg `json:"create_pair,omitempty"`
}

// PairQuery looks up a registered pool by asset pair
type PairQuery struct {
	AssetInfos []AssetInfo `json:"asset_infos"`
}

// FactoryQueryMsg is the factory query union
type FactoryQueryMsg struct {
	Pair   *PairQuery `json:"pair,omitempty"`
	Config *struct{}  `json:"config,omitempty"`
}

// FactoryPairInfo is the factory's registry entry for a pool. LiquidityToken
// carries the native LP denom the backend issues for pool shares.
type FactoryPairInfo struct {
	ContractAddr   string      `json:"contract_addr"`
	LiquidityToken string      `json:"liquidity_token"`
	AssetInfos     []AssetInfo `json:"asset_infos"`
	PairType       PairType    `json:"pair_type"`
}

// FactoryConfigResponse is the factory's configuration
type FactoryConfigResponse struct {
	Owner            string  `json:"owner"`
	GeneratorAddress *string `json:"generator_address,omitempty"`
}

// CW20 token standard messages

// Cw20TransferFromMsg pulls pre-approved tokens from an owner
type Cw20TransferFromMsg struct {
	Owner     string   `json:"owner"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// Cw20SendMsg moves tokens to a contract and triggers its receive hook
type Cw20SendMsg struct {
	Contract string          `json:"contract"`
	Amount   math.Int        `json:"amount"`
	Msg      json.RawMessage `json:"msg"`
}

// Cw20MintMsg mints new tokens to a recipient
type Cw20MintMsg struct {
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// Cw20BurnMsg burns tokens held by the contract
type Cw20BurnMsg struct {
	Amount math.Int `json:"amount"`
}

// Cw20ExecuteMsg is the CW20 execute union used by the adapter
type Cw20ExecuteMsg struct {
	TransferFrom *Cw20TransferFromMsg `json:"transfer_from,omitempty"`
	Send         *Cw20SendMsg         `json:"send,omitempty"`
	Mint         *Cw20MintMsg         `json:"mint,omitempty"`
	Burn         *Cw20BurnMsg         `json:"burn,omitempty"`
}

// Cw20QueryMsg is the CW20 query union used by the adapter
type Cw20QueryMsg struct {
	TokenInfo *struct{} `json:"token_info,omitempty"`
}

// TokenInfoResponse is the CW20 token metadata
type TokenInfoResponse struct {
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Decimals    uint8    `json:"decimals"`
	TotalSupply math.Int `json:"total_supply"`
}

// MinterInfo configures the minter of a new CW20 token
type MinterInfo struct {
	Minter string    `json:"minter"`
	Cap    *math.Int `json:"cap,omitempty"`
}

// Cw20Coin is an initial balance entry for a new CW20 token
type Cw20Coin struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// TokenInstantiateMsg instantiates the LP representation token
type TokenInstantiateMsg struct {
	Name            string          `json:"name"`
	Symbol          string          `json:"symbol"`
	Decimals        uint8           `json:"decimals"`
	InitialBalances []Cw20Coin      `json:"initial_balances"`
	Mint            *MinterInfo     `json:"mint,omitempty"`
	Marketing       json.RawMessage `json:"marketing,omitempty"`
}

// Denom adapter messages

// RedeemAndTransferMsg redeems an attached synthetic coin back into the
// underlying CW20 token and transfers it to the recipient. When recipient is
// nil, the adapter sends to the caller.
type RedeemAndTransferMsg struct {
	Recipient *string `json:"recipient,omitempty"`
}

// AdapterExecuteMsg is the denom adapter execute union used by the adapter
type AdapterExecuteMsg struct {
	RedeemAndTransfer *RedeemAndTransferMsg `json:"redeem_and_transfer,omitempty"`
}

// Generator (staking) hook

// GeneratorHookMsg is the payload sent with LP tokens to the generator to
// stake them on behalf of a recipient.
type GeneratorHookMsg struct {
	DepositFor string `json:"deposit_for,omitempty"`
}
