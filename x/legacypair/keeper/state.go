package keeper

import (
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// SetConfig persists the adapter configuration
func (k Keeper) SetConfig(ctx sdk.Context, config types.Config) error {
	bz, err := json.Marshal(config)
	if err != nil {
		return sdkerrors.Wrap(err, "marshal config")
	}
	k.getStore(ctx).Set(types.ConfigKey, bz)
	return nil
}

// GetConfig loads the adapter configuration
func (k Keeper) GetConfig(ctx sdk.Context) (types.Config, error) {
	var config types.Config
	bz := k.getStore(ctx).Get(types.ConfigKey)
	if bz == nil {
		return config, sdkerrors.Wrap(types.ErrStateNotFound, "config")
	}
	if err := json.Unmarshal(bz, &config); err != nil {
		return config, sdkerrors.Wrap(err, "unmarshal config")
	}
	return config, nil
}

// SetUnderlyingPool stores the backend pool address backing this pair
func (k Keeper) SetUnderlyingPool(ctx sdk.Context, addr string) {
	k.getStore(ctx).Set(types.UnderlyingPoolKey, []byte(addr))
}

// GetUnderlyingPool loads the backend pool address; it is absent until the
// bootstrap completes.
func (k Keeper) GetUnderlyingPool(ctx sdk.Context) (string, error) {
	bz := k.getStore(ctx).Get(types.UnderlyingPoolKey)
	if bz == nil {
		return "", sdkerrors.Wrap(types.ErrStateNotFound, "underlying pool")
	}
	return string(bz), nil
}

// SetUnderlyingLPDenom stores the backend's native LP share denom
func (k Keeper) SetUnderlyingLPDenom(ctx sdk.Context, denom string) {
	k.getStore(ctx).Set(types.UnderlyingLPDenomKey, []byte(denom))
}

// GetUnderlyingLPDenom loads the backend's native LP share denom
func (k Keeper) GetUnderlyingLPDenom(ctx sdk.Context) (string, error) {
	bz := k.getStore(ctx).Get(types.UnderlyingLPDenomKey)
	if bz == nil {
		return "", sdkerrors.Wrap(types.ErrStateNotFound, "underlying lp denom")
	}
	return string(bz), nil
}

// SetContractInfo writes the cw2-style identity record
func (k Keeper) SetContractInfo(ctx sdk.Context, info types.ContractInfo) error {
	bz, err := json.Marshal(info)
	if err != nil {
		return sdkerrors.Wrap(err, "marshal contract info")
	}
	k.getStore(ctx).Set(types.ContractInfoKey, bz)
	return nil
}

// GetContractInfo loads the cw2-style identity record
func (k Keeper) GetContractInfo(ctx sdk.Context) (types.ContractInfo, error) {
	var info types.ContractInfo
	bz := k.getStore(ctx).Get(types.ContractInfoKey)
	if bz == nil {
		return info, sdkerrors.Wrap(types.ErrStateNotFound, "contract info")
	}
	if err := json.Unmarshal(bz, &info); err != nil {
		return info, sdkerrors.Wrap(err, "unmarshal contract info")
	}
	return info, nil
}
