package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

// Migrate bumps the stored contract version. It requires the stored record
// to carry this contract's name and a strictly different version; bootstrap
// state is never touched.
func (k Keeper) Migrate(ctx sdk.Context, _ types.MigrateMsg) (*types.Response, error) {
	stored, err := k.GetContractInfo(ctx)
	if err != nil {
		return nil, err
	}

	if stored.Contract != types.ContractName {
		return nil, sdkerrors.Wrapf(types.ErrMigration,
			"contract name mismatch: %s", stored.Contract)
	}
	if stored.Version == types.ContractVersion {
		return nil, sdkerrors.Wrapf(types.ErrMigration,
			"already at version %s", stored.Version)
	}

	if err := k.SetContractInfo(ctx, types.ContractInfo{
		Contract: types.ContractName,
		Version:  types.ContractVersion,
	}); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("contract migrated",
		"from", stored.Version, "to", types.ContractVersion)

	return types.NewResponse().
		AddAttribute(types.AttributeKeyPrevContractName, stored.Contract).
		AddAttribute(types.AttributeKeyPrevContractVersion, stored.Version).
		AddAttribute(types.AttributeKeyNewContractName, types.ContractName).
		AddAttribute(types.AttributeKeyNewContractVersion, types.ContractVersion), nil
}
