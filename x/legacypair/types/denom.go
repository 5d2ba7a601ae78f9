package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SyntheticDenomNamespace is the namespace under which the denom adapter
// issues native representations of CW20 tokens.
const SyntheticDenomNamespace = "factory"

// SyntheticDenom builds the native denom the adapter issues for an
// identifier: factory/<adapter>/<identifier>.
func SyntheticDenom(adapterAddr, identifier string) string {
	return fmt.Sprintf("%s/%s/%s", SyntheticDenomNamespace, adapterAddr, identifier)
}

// syntheticPrefix is the leading segment shared by all denoms the adapter owns
func syntheticPrefix(adapterAddr string) string {
	return fmt.Sprintf("%s/%s/", SyntheticDenomNamespace, adapterAddr)
}

// IsSyntheticDenom reports whether denom was issued by the given adapter
func IsSyntheticDenom(denom, adapterAddr string) bool {
	return strings.HasPrefix(denom, syntheticPrefix(adapterAddr))
}

// ToBackendDenom maps a legacy asset to the native denom the backend pool
// holds for it. Native assets pass through unchanged; token assets become
// the adapter's synthetic denom for the token contract.
func ToBackendDenom(info AssetInfo, adapterAddr string) string {
	if info.NativeToken != nil {
		return info.NativeToken.Denom
	}
	return SyntheticDenom(adapterAddr, info.Token.ContractAddr)
}

// FromBackendCoin reconstructs the legacy asset behind a backend coin. A
// denom carrying the adapter's synthetic prefix is decoded as a token asset
// using the trailing path segment; anything else is a native asset verbatim.
// The reversal assumes no genuine native denom starts with the adapter's
// prefix.
func FromBackendCoin(coin sdk.Coin, adapterAddr string) Asset {
	if IsSyntheticDenom(coin.Denom, adapterAddr) {
		segments := strings.Split(coin.Denom, "/")
		// An empty trailing segment cannot name a token contract
		if identifier := segments[len(segments)-1]; identifier != "" {
			return Asset{
				Info:   NewTokenAssetInfo(identifier),
				Amount: coin.Amount,
			}
		}
	}
	return Asset{
		Info:   NewNativeAssetInfo(coin.Denom),
		Amount: coin.Amount,
	}
}
