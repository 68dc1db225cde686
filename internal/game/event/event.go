// Package event 定义状态机向外部协作者发布的通知
package event

import (
	"github.com/google/uuid"

	"github.com/palemoky/party-tag/internal/game/player"
)

// Kind 通知类型
type Kind int

const (
	KindRoundStarted    Kind = iota + 1 // 回合开始，移动层复位玩家与障碍计时
	KindRoleChanged                     // 特殊角色易主
	KindPlayerFrozen                    // 玩家被冻住
	KindPlayerUnfrozen                  // 玩家被解冻
	KindPlayerEliminated                // 玩家被淘汰
	KindRoundResolved                   // 回合结算
	KindSessionFinished                 // 会话结束
)

func (k Kind) String() string {
	switch k {
	case KindRoundStarted:
		return "round_started"
	case KindRoleChanged:
		return "role_changed"
	case KindPlayerFrozen:
		return "player_frozen"
	case KindPlayerUnfrozen:
		return "player_unfrozen"
	case KindPlayerEliminated:
		return "player_eliminated"
	case KindRoundResolved:
		return "round_resolved"
	case KindSessionFinished:
		return "session_finished"
	default:
		return "unknown"
	}
}

// Outcome 回合结算类型
type Outcome int

const (
	OutcomeNone              Outcome = iota
	OutcomeDistinguishedWins         // 冰冻者冻住了所有人
	OutcomeOthersWin                 // 冰冻模式超时，其余玩家得分
	OutcomeTimeout                   // Tag 模式超时，抓人者被淘汰
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDistinguishedWins:
		return "distinguished_wins"
	case OutcomeOthersWin:
		return "others_win"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "none"
	}
}

// Event 一条通知。按 Kind 使用不同字段：
//   - RoleChanged: From 旧持有者, To 新持有者
//   - PlayerFrozen / PlayerUnfrozen: From 发起者, To 目标
//   - PlayerEliminated: Player, Stage
//   - RoundResolved: Outcome, Player 为本回合特殊角色
//   - SessionFinished: Winners, Tie, Scores, Aborted（终止条件到达前被提前结束）
type Event struct {
	Kind      Kind
	SessionID uuid.UUID
	Round     uint32
	From      player.ID
	To        player.ID
	Player    player.ID
	Stage     uint32
	Outcome   Outcome
	Winners   []player.ID
	Tie       bool
	Aborted   bool
	Scores    map[player.ID]uint32
}
