package types

// Config is the adapter's durable configuration. Created at instantiation
// and mutated only while consuming the LP token reply.
type Config struct {
	// General pair information exposed to legacy callers
	PairInfo PairInfo `json:"pair_info"`
	// The factory contract address
	FactoryAddr string `json:"factory_addr"`
	// The denom adapter contract address
	Cw20AdapterAddr string `json:"cw20_adapter_addr"`
}

// ContractInfo is the cw2-style identity record gating migrations
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

// Store keys for the module's durable records
var (
	ConfigKey            = []byte("config")
	UnderlyingPoolKey    = []byte("underlying_pool")
	UnderlyingLPDenomKey = []byte("lp_token_denom")
	ContractInfoKey      = []byte("contract_info")
)
