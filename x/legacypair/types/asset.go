package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetInfo describes a legacy asset: either a native coin denom or a CW20
// token contract. Exactly one of the two variants must be set.
type AssetInfo struct {
	NativeToken *NativeTokenInfo `json:"native_token,omitempty"`
	Token       *TokenInfo       `json:"token,omitempty"`
}

// NativeTokenInfo identifies a native coin by denom
type NativeTokenInfo struct {
	Denom string `json:"denom"`
}

// TokenInfo identifies a CW20 token by contract address
type TokenInfo struct {
	ContractAddr string `json:"contract_addr"`
}

// NewNativeAssetInfo returns an AssetInfo for a native denom
func NewNativeAssetInfo(denom string) AssetInfo {
	return AssetInfo{NativeToken: &NativeTokenInfo{Denom: denom}}
}

// NewTokenAssetInfo returns an AssetInfo for a CW20 token contract
func NewTokenAssetInfo(contractAddr string) AssetInfo {
	return AssetInfo{Token: &TokenInfo{ContractAddr: contractAddr}}
}

// IsNativeToken reports whether the asset is a native coin
func (a AssetInfo) IsNativeToken() bool {
	return a.NativeToken != nil
}

// Equal compares two asset infos by kind and identifier only
func (a AssetInfo) Equal(other AssetInfo) bool {
	if a.NativeToken != nil && other.NativeToken != nil {
		return a.NativeToken.Denom == other.NativeToken.Denom
	}
	if a.Token != nil && other.Token != nil {
		return a.Token.ContractAddr == other.Token.ContractAddr
	}
	return false
}

// Validate checks that exactly one variant is set and that the identifier is
// a well-formed denom or bech32 address.
func (a AssetInfo) Validate() error {
	switch {
	case a.NativeToken != nil && a.Token != nil:
		return sdkerrors.Wrap(ErrInvalidAsset, "asset info cannot be both native and token")
	case a.NativeToken != nil:
		if err := sdk.ValidateDenom(a.NativeToken.Denom); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAsset, "invalid native denom: %s", err)
		}
	case a.Token != nil:
		if _, err := sdk.AccAddressFromBech32(a.Token.ContractAddr); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAsset, "invalid token contract address: %s", err)
		}
	default:
		return sdkerrors.Wrap(ErrInvalidAsset, "asset info must be native or token")
	}
	return nil
}

// String returns the asset identifier: the denom for native assets, the
// contract address for token assets.
func (a AssetInfo) String() string {
	if a.NativeToken != nil {
		return a.NativeToken.Denom
	}
	if a.Token != nil {
		return a.Token.ContractAddr
	}
	return ""
}

// Asset pairs an asset info with an amount
type Asset struct {
	Info   AssetInfo `json:"info"`
	Amount math.Int  `json:"amount"`
}

// NewAsset returns an Asset with the given info and amount
func NewAsset(info AssetInfo, amount math.Int) Asset {
	return Asset{Info: info, Amount: amount}
}

// IsNativeToken reports whether the asset is a native coin
func (a Asset) IsNativeToken() bool {
	return a.Info.IsNativeToken()
}

func (a Asset) String() string {
	return fmt.Sprintf("%s%s", a.Amount, a.Info)
}

// AssertSentNativeTokenBalance verifies that a native offer asset was
// actually attached to the call in the declared amount. Token assets carry
// no funds and always pass.
func (a Asset) AssertSentNativeTokenBalance(funds sdk.Coins) error {
	if a.Info.NativeToken == nil {
		return nil
	}
	sent := funds.AmountOf(a.Info.NativeToken.Denom)
	if !sent.Equal(a.Amount) {
		return sdkerrors.Wrap(ErrInvalidFunds,
			"native token balance mismatch between the argument and the transferred")
	}
	return nil
}

// AssertCoinsProperlySent verifies that the attached funds exactly cover the
// declared native deposits and contain nothing outside the pair's assets.
func AssertCoinsProperlySent(funds sdk.Coins, assets []Asset, pairAssets []AssetInfo) error {
	for _, coin := range funds {
		inPair := false
		for _, info := range pairAssets {
			if info.NativeToken != nil && info.NativeToken.Denom == coin.Denom {
				inPair = true
				break
			}
		}
		if !inPair {
			return sdkerrors.Wrapf(ErrInvalidFunds,
				"supplied coins contain %s that is not in the input asset vector", coin.Denom)
		}
	}
	for _, asset := range assets {
		if asset.Info.NativeToken == nil {
			continue
		}
		sent := funds.AmountOf(asset.Info.NativeToken.Denom)
		if !sent.Equal(asset.Amount) {
			return sdkerrors.Wrap(ErrInvalidFunds,
				"native token balance mismatch between the argument and the transferred")
		}
	}
	return nil
}

// PairType tags the kind of pair the underlying pool implements
type PairType struct {
	Xyk    *struct{} `json:"xyk,omitempty"`
	Stable *struct{} `json:"stable,omitempty"`
	Custom string    `json:"custom,omitempty"`
}

// XykPairType returns the constant product pair type tag
func XykPairType() PairType {
	return PairType{Xyk: &struct{}{}}
}

// StablePairType returns the stableswap pair type tag
func StablePairType() PairType {
	return PairType{Stable: &struct{}{}}
}

func (p PairType) String() string {
	switch {
	case p.Xyk != nil:
		return "xyk"
	case p.Stable != nil:
		return "stable"
	default:
		return p.Custom
	}
}

// PairInfo describes the legacy pair exposed by this adapter. LiquidityToken
// is the empty string until the LP token instantiation reply is consumed.
type PairInfo struct {
	ContractAddr   string      `json:"contract_addr"`
	LiquidityToken string      `json:"liquidity_token"`
	AssetInfos     []AssetInfo `json:"asset_infos"`
	PairType       PairType    `json:"pair_type"`
}
