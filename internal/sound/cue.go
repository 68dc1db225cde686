package sound

import "github.com/palemoky/party-tag/internal/game/event"

// 音效文件名（不含扩展名）
const (
	CueRoundStart = "round_start"
	CueTag        = "tag"
	CueFreeze     = "freeze"
	CueUnfreeze   = "unfreeze"
	CueEliminated = "eliminated"
	CueRoundEnd   = "round_end"
	CueVictory    = "victory"
)

// Cues 启动时预加载的全部音效
var Cues = []string{
	CueRoundStart, CueTag, CueFreeze, CueUnfreeze,
	CueEliminated, CueRoundEnd, CueVictory,
}

// Player 能按名称播放音效
type Player interface {
	Play(name string)
}

// CuePlayer 订阅状态机通知并播放对应音效
type CuePlayer struct {
	player Player
}

func NewCuePlayer(p Player) *CuePlayer {
	return &CuePlayer{player: p}
}

// Notify 实现 event.Observer
func (c *CuePlayer) Notify(ev event.Event) {
	if name, ok := CueFor(ev); ok {
		c.player.Play(name)
	}
}

// CueFor 通知对应的音效
func CueFor(ev event.Event) (string, bool) {
	switch ev.Kind {
	case event.KindRoundStarted:
		return CueRoundStart, true
	case event.KindRoleChanged:
		return CueTag, true
	case event.KindPlayerFrozen:
		return CueFreeze, true
	case event.KindPlayerUnfrozen:
		return CueUnfreeze, true
	case event.KindPlayerEliminated:
		return CueEliminated, true
	case event.KindRoundResolved:
		// Tag 模式的淘汰已经有音效
		if ev.Outcome == event.OutcomeTimeout {
			return "", false
		}
		return CueRoundEnd, true
	case event.KindSessionFinished:
		return CueVictory, true
	}
	return "", false
}
