package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/party-tag/internal/game/player"
)

func scoresOf(values ...uint32) map[player.ID]uint32 {
	m := make(map[player.ID]uint32, len(values))
	for i, v := range values {
		m[player.ID(i+1)] = v
	}
	return m
}

func TestDetermineWinners_Tie(t *testing.T) {
	t.Parallel()

	winners := DetermineWinners(scoresOf(3, 5, 5, 2), []player.ID{1, 2, 3, 4})
	assert.Equal(t, []player.ID{2, 3}, winners)
}

func TestDetermineWinners_InactiveExcluded(t *testing.T) {
	t.Parallel()

	winners := DetermineWinners(scoresOf(3, 5, 5, 2), []player.ID{1, 2})
	assert.Equal(t, []player.ID{2}, winners)

	// 不在场玩家的高分不影响最高分
	winners = DetermineWinners(scoresOf(3, 1, 9, 2), []player.ID{1, 2})
	assert.Equal(t, []player.ID{1}, winners)
}

func TestDetermineWinners_AllZero(t *testing.T) {
	t.Parallel()

	winners := DetermineWinners(nil, []player.ID{3, 1})
	assert.Equal(t, []player.ID{1, 3}, winners)
}

func TestDetermineWinners_NoActivePlayers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []player.ID{FallbackWinner}, DetermineWinners(scoresOf(1, 2), nil))
}

func TestScorer_Accumulates(t *testing.T) {
	t.Parallel()

	s := NewScorer()
	s.AddPoint(2)
	s.AddPoints([]player.ID{1, 2, 3})
	assert.Equal(t, uint32(1), s.Score(1))
	assert.Equal(t, uint32(2), s.Score(2))
	assert.Equal(t, uint32(1), s.Score(3))
	assert.Equal(t, uint32(0), s.Score(4))

	// 越界编号被限制到有效范围
	s.AddPoint(9)
	s.AddPoint(0)
	assert.Equal(t, uint32(1), s.Score(4))
	assert.Equal(t, uint32(2), s.Score(1))

	snapshot := s.Scores()
	snapshot[1] = 100
	assert.Equal(t, uint32(2), s.Score(1))

	s.Reset()
	assert.Empty(t, s.Scores())
}
