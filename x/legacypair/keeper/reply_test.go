package keeper_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apollo-sturdy/astroport-core/x/legacypair/types"
)

func lpTokenReply(t *testing.T, addr string) types.Reply {
	return types.Reply{
		ID: types.InstantiateTokenReplyID,
		Result: types.SubMsgResult{Ok: &types.SubMsgResponse{
			Data: mustJSON(t, types.InstantiateResponseData{ContractAddress: addr}),
		}},
	}
}

func TestReplyTokenInstantiated(t *testing.T) {
	k, ctx, _ := setupReady(t)

	// Reset the LP token to the pre-reply sentinel
	config, err := k.GetConfig(ctx)
	require.NoError(t, err)
	config.PairInfo.LiquidityToken = ""
	require.NoError(t, k.SetConfig(ctx, config))

	res, err := k.Reply(ctx, lpTokenReply(t, lpTokenAddr))
	require.NoError(t, err)
	require.Empty(t, res.Messages)
	require.Contains(t, res.Attributes,
		types.Attribute{Key: types.AttributeKeyLiquidityTokenAddr, Value: lpTokenAddr})

	config, err = k.GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, lpTokenAddr, config.PairInfo.LiquidityToken)
}

func TestReplyTokenInstantiatedReplay(t *testing.T) {
	k, ctx, _ := setupReady(t)

	config, err := k.GetConfig(ctx)
	require.NoError(t, err)
	config.PairInfo.LiquidityToken = ""
	require.NoError(t, k.SetConfig(ctx, config))

	_, err = k.Reply(ctx, lpTokenReply(t, lpTokenAddr))
	require.NoError(t, err)

	// A reply is consumable exactly once
	_, err = k.Reply(ctx, lpTokenReply(t, otherAddr))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	config, err = k.GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, lpTokenAddr, config.PairInfo.LiquidityToken)
}

func TestReplyPoolCreated(t *testing.T) {
	k, ctx, q := setupReady(t)

	q.Respond(factoryAddr, types.FactoryPairInfo{
		ContractAddr:   poolAddr,
		LiquidityToken: lpDenom(),
	})

	_, err := k.Reply(ctx, types.Reply{
		ID:     types.CreateUnderlyingPoolReplyID,
		Result: types.SubMsgResult{Ok: &types.SubMsgResponse{Data: []byte("{}")}},
	})
	require.NoError(t, err)

	pool, err := k.GetUnderlyingPool(ctx)
	require.NoError(t, err)
	require.Equal(t, poolAddr, pool)
	denom, err := k.GetUnderlyingLPDenom(ctx)
	require.NoError(t, err)
	require.Equal(t, lpDenom(), denom)
}

func TestReplyRejectedShapes(t *testing.T) {
	tests := []struct {
		name  string
		reply types.Reply
	}{
		{
			name:  "unknown id",
			reply: types.Reply{ID: 99, Result: types.SubMsgResult{Ok: &types.SubMsgResponse{Data: []byte("{}")}}},
		},
		{
			name:  "failed result",
			reply: types.Reply{ID: types.InstantiateTokenReplyID, Result: types.SubMsgResult{Err: "boom"}},
		},
		{
			name:  "missing payload",
			reply: types.Reply{ID: types.InstantiateTokenReplyID, Result: types.SubMsgResult{Ok: &types.SubMsgResponse{}}},
		},
		{
			name:  "missing pool payload",
			reply: types.Reply{ID: types.CreateUnderlyingPoolReplyID, Result: types.SubMsgResult{Ok: &types.SubMsgResponse{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ctx, _ := setupReady(t)

			config, err := k.GetConfig(ctx)
			require.NoError(t, err)
			config.PairInfo.LiquidityToken = ""
			require.NoError(t, k.SetConfig(ctx, config))

			_, err = k.Reply(ctx, tt.reply)
			require.ErrorIs(t, err, types.ErrFailedToParseReply)
		})
	}
}

func TestReplyTokenInstantiatedBadPayload(t *testing.T) {
	k, ctx, _ := setupReady(t)

	config, err := k.GetConfig(ctx)
	require.NoError(t, err)
	config.PairInfo.LiquidityToken = ""
	require.NoError(t, k.SetConfig(ctx, config))

	_, err = k.Reply(ctx, types.Reply{
		ID:     types.InstantiateTokenReplyID,
		Result: types.SubMsgResult{Ok: &types.SubMsgResponse{Data: []byte("not json")}},
	})
	require.ErrorIs(t, err, types.ErrFailedToParseReply)
}

func TestReplyPoolCreatedFactoryUnavailable(t *testing.T) {
	k, ctx, q := setupReady(t)
	q.Fail(factoryAddr, errors.New("factory unavailable"))

	_, err := k.Reply(ctx, types.Reply{
		ID:     types.CreateUnderlyingPoolReplyID,
		Result: types.SubMsgResult{Ok: &types.SubMsgResponse{Data: []byte("{}")}},
	})
	require.Error(t, err)
}
