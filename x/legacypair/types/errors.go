package types

import (
	"cosmossdk.io/errors"
)

// Legacy pair adapter sentinel errors
var (
	ErrDoublingAssets     = errors.Register(ModuleName, 2, "doubling assets in asset infos")
	ErrUnauthorized       = errors.Register(ModuleName, 3, "unauthorized")
	ErrFailedToParseReply = errors.Register(ModuleName, 4, "failed to parse reply")
	ErrNonSupported       = errors.Register(ModuleName, 5, "operation is not supported")
	ErrCw20DirectSwap     = errors.Register(ModuleName, 6, "cw20 tokens can be swapped via cw20 send hook only")
	ErrAssetMismatch      = errors.Register(ModuleName, 7, "asset mismatch between the requested and the stored asset in contract")
	ErrInvalidZeroAmount  = errors.Register(ModuleName, 8, "event of zero transfer")
	ErrAutoStake          = errors.Register(ModuleName, 9, "the pool has no generator to auto stake into")
	ErrMigration          = errors.Register(ModuleName, 10, "failed to migrate the contract")
	ErrNotImplemented     = errors.Register(ModuleName, 11, "query is not implemented")
	ErrInvalidAsset       = errors.Register(ModuleName, 12, "invalid asset")
	ErrInvalidFunds       = errors.Register(ModuleName, 13, "invalid funds")
	ErrImbalancedWithdraw = errors.Register(ModuleName, 14, "imbalanced withdraw is currently disabled")
	ErrStateNotFound      = errors.Register(ModuleName, 15, "state record not found")
	ErrInvalidAssetCount  = errors.Register(ModuleName, 16, "asset_infos must contain exactly two elements")
)
