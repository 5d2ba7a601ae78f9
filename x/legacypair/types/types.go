package types

const (
	// ModuleName defines the module name
	ModuleName = "legacypair"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// ContractName identifies this contract for migration gating
	ContractName = "astroport-legacy-pair-adapter"

	// ContractVersion is the version written at instantiation and migration
	ContractVersion = "1.0.0"
)

const (
	// InstantiateTokenReplyID correlates the LP token instantiation reply
	InstantiateTokenReplyID uint64 = 1

	// CreateUnderlyingPoolReplyID correlates the factory pool creation reply
	CreateUnderlyingPoolReplyID uint64 = 2
)

const (
	// DefaultSlippage is the max spread applied when the caller supplies none
	DefaultSlippage = "0.005"

	// TokenSymbolMaxLength caps each asset's short symbol in the LP token name
	TokenSymbolMaxLength = 4

	// LP token parameters for the representation contract
	LPTokenSymbol   = "uLP"
	LPTokenDecimals = 6
	LPTokenLabel    = "Astroport LP token"
)
