package round

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/palemoky/party-tag/internal/game/event"
	"github.com/palemoky/party-tag/internal/game/player"
)

// Snapshot 状态机的只读副本，供外部协作者读取
type Snapshot struct {
	SessionID         uuid.UUID
	Mode              Mode
	Phase             Phase
	TimeRemaining     float64
	RoundDuration     float64
	Distinguished     player.ID
	RoundIndex        uint32
	RoundsPlayed      uint32
	TotalRounds       uint32
	EliminationStage  uint32
	Players           []player.Player // 当前名单，按编号升序
	EliminationOrder  []player.ID
	Scores            map[player.ID]uint32
	Outcome           event.Outcome
	Winners           []player.ID
	Finalized         bool
	Aborted           bool
	Paused            bool
	ReadyForNextRound bool
}

// Snapshot 返回当前状态的副本
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	players := make([]player.Player, 0, len(m.players))
	for _, id := range player.SortedIDs(m.players) {
		p := *m.players[id]
		p.Score = m.scorer.Score(id)
		players = append(players, p)
	}

	return Snapshot{
		SessionID:         m.sessionID,
		Mode:              m.settings.Mode,
		Phase:             m.phase,
		TimeRemaining:     m.clock.Remaining(),
		RoundDuration:     m.settings.RoundDuration,
		Distinguished:     m.distinguished,
		RoundIndex:        m.roundIndex,
		RoundsPlayed:      m.roundsPlayed,
		TotalRounds:       m.settings.TotalRounds,
		EliminationStage:  m.eliminationStage,
		Players:           players,
		EliminationOrder:  slices.Clone(m.eliminationOrder),
		Scores:            m.scorer.Scores(),
		Outcome:           m.outcome,
		Winners:           slices.Clone(m.winners),
		Finalized:         m.finalized,
		Aborted:           m.aborted,
		Paused:            m.paused,
		ReadyForNextRound: m.phase == PhaseResolved && m.awaitingNext,
	}
}

// Standings 排名。
// Tag 模式：剩余玩家在前，随后按淘汰顺序倒序（越晚被淘汰排名越高）。
// 冰冻模式：按积分降序，同分按编号升序。
func (s Snapshot) Standings() []player.ID {
	if s.Mode == ModeTag {
		out := make([]player.ID, 0, len(s.Players)+len(s.EliminationOrder))
		for _, p := range s.Players {
			out = append(out, p.ID)
		}
		for i := len(s.EliminationOrder) - 1; i >= 0; i-- {
			if id := s.EliminationOrder[i]; !slices.Contains(out, id) {
				out = append(out, id)
			}
		}
		return out
	}

	out := make([]player.ID, 0, len(s.Players))
	for _, p := range s.Players {
		out = append(out, p.ID)
	}
	slices.SortStableFunc(out, func(a, b player.ID) int {
		if c := cmp.Compare(s.Scores[b], s.Scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return out
}

// Player 按编号查找当前名单中的玩家
func (s Snapshot) Player(id player.ID) (player.Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return player.Player{}, false
}
