package types

// Response attribute values and keys emitted by the adapter
const (
	ActionInstantiate       = "instantiate"
	ActionProvideLiquidity  = "provide_liquidity"
	ActionWithdrawLiquidity = "withdraw_liquidity"

	AttributeKeyAction             = "action"
	AttributeKeyPairType           = "pair_type"
	AttributeKeyAssetInfos         = "asset_infos"
	AttributeKeyLiquidityTokenAddr = "liquidity_token_addr"
	AttributeKeySender             = "sender"
	AttributeKeyReceiver           = "receiver"
	AttributeKeyAssets             = "assets"
	AttributeKeyWithdrawnShare     = "withdrawn_share"

	AttributeKeyPrevContractName    = "previous_contract_name"
	AttributeKeyPrevContractVersion = "previous_contract_version"
	AttributeKeyNewContractName     = "new_contract_name"
	AttributeKeyNewContractVersion  = "new_contract_version"
)
