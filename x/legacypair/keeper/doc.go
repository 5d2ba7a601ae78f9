// Package keeper implements the legacy pair adapter's translation core.
//
// The adapter exposes the legacy two-asset pair interface (CW20/native
// hybrid) on top of a native-token-only backend pool. Each entry point
// loads the records it needs from the module store, translates the legacy
// operation into an ordered list of wrap/unwrap/backend-call effects, and
// returns that list for the host to dispatch atomically. Amounts sent
// on-chain are always derived from a fresh synchronous simulation against
// the backend, never from locally cached state.
//
// Bootstrap is the only operation spanning two host transactions: the LP
// representation token and, when needed, the backend pool itself are created
// through reply-correlated sub-calls. Until both replies have been consumed,
// every other operation fails because the underlying pool reference is
// absent.
package keeper
