package storage

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/party-tag/internal/game/player"
	"github.com/palemoky/party-tag/internal/game/round"
)

func TestHistoryStore_SeedsFollowingSession(t *testing.T) {
	t.Parallel()

	store, _ := newTestHistoryStore(t, "tag")
	ctx := context.Background()
	settings := round.Settings{Mode: round.ModeTag, ActivePlayers: 3, RoundDuration: 5, NextRoundDelay: 0}

	// 第一局：P3 在历史中领先，首轮由 P3 当抓人者
	require.NoError(t, store.AddWins(ctx, []player.ID{3, 3}))

	m, err := round.New(settings, round.WithHistory(store), round.WithObserver(NewRecorder(store, zerolog.Nop())))
	require.NoError(t, err)
	require.NoError(t, m.Start(ctx))
	assert.Equal(t, player.ID(3), m.Snapshot().Distinguished)

	// 超时两次：P3、P1 依次被淘汰，P2 获胜
	m.Tick(5)
	m.Tick(0)
	m.Tick(5)
	snap := m.Snapshot()
	require.Equal(t, round.PhaseFinished, snap.Phase)
	require.Equal(t, []player.ID{2}, snap.Winners)

	totals, err := store.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[player.ID]uint32{2: 1, 3: 2}, totals)

	result, err := store.LoadResult(ctx, m.SessionID())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []int{3, 1}, result.EliminationOrder)
}

func TestRecorder_EarlyFinalizeDoesNotCreditWins(t *testing.T) {
	t.Parallel()

	store, _ := newTestHistoryStore(t, "congelados")
	ctx := context.Background()
	settings := round.Settings{Mode: round.ModeCongelados, ActivePlayers: 4, RoundDuration: 5, TotalRounds: 3}

	m, err := round.New(settings, round.WithHistory(store), round.WithObserver(NewRecorder(store, zerolog.Nop())))
	require.NoError(t, err)
	require.NoError(t, m.Start(ctx))

	// 开局立即退出：所有人 0 分并列
	winners := m.Finalize()
	assert.Equal(t, []player.ID{1, 2, 3, 4}, winners)

	totals, err := store.Totals(ctx)
	require.NoError(t, err)
	assert.Empty(t, totals)

	result, err := store.LoadResult(ctx, m.SessionID())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Aborted)
	assert.Equal(t, []int{1, 2, 3, 4}, result.Winners)
}
