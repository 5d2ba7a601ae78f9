package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// WasmQuerier dispatches synchronous read-only smart queries against other
// contracts' committed state. Queries never span host transactions and have
// no side effects.
type WasmQuerier interface {
	QuerySmart(ctx sdk.Context, contractAddr string, req []byte) ([]byte, error)
}
