package round

import (
	"slices"

	"github.com/palemoky/party-tag/internal/apperrors"
	"github.com/palemoky/party-tag/internal/game/event"
	"github.com/palemoky/party-tag/internal/game/player"
	"github.com/palemoky/party-tag/internal/game/role"
	"github.com/palemoky/party-tag/internal/game/score"
)

// beginRound 选择本回合特殊角色，重置玩家状态并开始倒计时
func (m *Machine) beginRound() error {
	active := m.activeIDs()
	if len(active) == 0 {
		return apperrors.ErrNoPlayers
	}

	next, ok := m.pickDistinguished(active)
	if !ok {
		return apperrors.ErrNoPlayers
	}

	for _, p := range m.players {
		p.ResetForRound()
	}
	m.players[next].Role = player.RoleDistinguished
	m.distinguished = next

	m.debounce.Reset()
	m.clock.Arm(m.settings.RoundDuration)
	m.roundIndex++
	m.phase = PhaseActive
	m.outcome = event.OutcomeNone
	m.awaitingNext = false
	m.waitElapsed = 0

	m.emit(event.Event{Kind: event.KindRoundStarted, Player: next})
	m.log.Info().
		Uint32("round", m.roundIndex).
		Stringer("distinguished", next).
		Ints("players", idsToInts(active)).
		Msg("🎮 回合开始")
	return nil
}

func (m *Machine) pickDistinguished(active []player.ID) (player.ID, bool) {
	if m.roundIndex == 0 {
		return m.assigner.ChooseInitial(active, m.seed)
	}
	next, ok := role.Rotate(m.distinguished, active, m.settings.ActivePlayers)
	if !ok {
		m.log.Warn().Stringer("current", m.distinguished).Msg("轮换没有找到下一名玩家，使用第一名在场玩家")
		return active[0], true
	}
	return next, true
}

// expire 倒计时到期。Tag 模式淘汰抓人者；冰冻模式其余玩家各得 1 分。
func (m *Machine) expire() {
	switch m.settings.Mode {
	case ModeTag:
		m.eliminate(m.distinguished)
		m.resolve(event.OutcomeTimeout)
	case ModeCongelados:
		m.scorer.AddPoints(m.othersOf(m.distinguished))
		m.resolve(event.OutcomeOthersWin)
	}
}

func (m *Machine) eliminate(id player.ID) {
	p, ok := m.players[id]
	if !ok {
		return
	}
	p.Eliminated = true
	p.Active = false
	p.ResetForRound()
	delete(m.players, id)

	m.eliminationOrder = append(m.eliminationOrder, id)
	m.eliminationStage++
	m.emit(event.Event{Kind: event.KindPlayerEliminated, Player: id, Stage: m.eliminationStage})
	m.log.Info().Stringer("player", id).Uint32("stage", m.eliminationStage).Msg("❌ 玩家被淘汰")
}

// resolve 结束当前回合。只能由进行中阶段调用一次，
// 倒计时到期和冻住所有人两种触发先到者生效。
func (m *Machine) resolve(outcome event.Outcome) {
	if m.phase != PhaseActive {
		return
	}
	m.clock.Disarm()
	m.phase = PhaseResolved
	m.outcome = outcome
	m.syncScores()

	m.emit(event.Event{
		Kind:    event.KindRoundResolved,
		Player:  m.distinguished,
		Outcome: outcome,
		Scores:  m.scorer.Scores(),
	})
	m.log.Info().Uint32("round", m.roundIndex).Stringer("outcome", outcome).Msg("回合结算")

	m.roundsPlayed++
	if m.terminated() {
		m.finish(false)
		return
	}
	m.awaitingNext = true
	m.waitElapsed = 0
}

func (m *Machine) terminated() bool {
	if m.settings.Mode == ModeTag {
		return len(m.players) <= 1
	}
	return m.roundsPlayed >= m.settings.TotalRounds
}

// advance 回合间等待结束，轮换角色开始下一回合
func (m *Machine) advance() {
	m.awaitingNext = false
	if err := m.beginRound(); err != nil {
		m.log.Error().Err(err).Msg("开始下一回合失败，结束会话")
		m.finish(true)
	}
}

// finish 结算会话，只生效一次。aborted 表示终止条件尚未到达。
func (m *Machine) finish(aborted bool) {
	if m.finalized {
		return
	}
	m.finalized = true
	m.aborted = aborted
	m.phase = PhaseFinished
	m.awaitingNext = false
	m.clock.Disarm()
	m.syncScores()

	m.winners = m.computeWinners()
	m.emit(event.Event{
		Kind:    event.KindSessionFinished,
		Winners: slices.Clone(m.winners),
		Tie:     len(m.winners) > 1,
		Aborted: aborted,
		Scores:  m.scorer.Scores(),
	})
	m.log.Info().
		Ints("winners", idsToInts(m.winners)).
		Bool("tie", len(m.winners) > 1).
		Bool("aborted", aborted).
		Uint32("rounds", m.roundsPlayed).
		Msg("🏆 会话结束")
}

func (m *Machine) computeWinners() []player.ID {
	if m.settings.Mode == ModeCongelados {
		return score.DetermineWinners(m.scorer.Scores(), m.activeIDs())
	}

	remaining := m.activeIDs()
	if len(remaining) > 0 {
		return remaining
	}
	if n := len(m.eliminationOrder); n > 0 {
		return []player.ID{m.eliminationOrder[n-1]}
	}
	return nil
}

// allOthersFrozen 除冰冻者外的在场玩家是否全部被冻住
func (m *Machine) allOthersFrozen() bool {
	others := m.othersOf(m.distinguished)
	if len(others) == 0 {
		return false
	}
	for _, id := range others {
		if !m.players[id].Frozen {
			return false
		}
	}
	return true
}

func (m *Machine) othersOf(id player.ID) []player.ID {
	others := make([]player.ID, 0, len(m.players))
	for _, pid := range m.activeIDs() {
		if pid != id {
			others = append(others, pid)
		}
	}
	return others
}

// activeIDs 在场玩家编号（升序）
func (m *Machine) activeIDs() []player.ID {
	ids := make([]player.ID, 0, len(m.players))
	for _, id := range player.SortedIDs(m.players) {
		if p := m.players[id]; p.Active && !p.Eliminated {
			ids = append(ids, id)
		}
	}
	return ids
}

func (m *Machine) syncScores() {
	for id, p := range m.players {
		p.Score = m.scorer.Score(id)
	}
}

func idsToInts(ids []player.ID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
