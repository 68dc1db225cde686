package ui

import (
	"fmt"
	"strings"

	"github.com/palemoky/party-tag/internal/game/event"
	"github.com/palemoky/party-tag/internal/game/player"
)

const feedSize = 6

// feed 把状态机通知转成最近几条文字记录
type feed struct {
	lines []string
}

func (f *feed) Notify(ev event.Event) {
	line := describe(ev)
	if line == "" {
		return
	}
	f.lines = append(f.lines, line)
	if len(f.lines) > feedSize {
		f.lines = f.lines[len(f.lines)-feedSize:]
	}
}

func describe(ev event.Event) string {
	switch ev.Kind {
	case event.KindRoundStarted:
		return fmt.Sprintf("第 %d 回合开始，%s 持有角色", ev.Round, ev.Player)
	case event.KindRoleChanged:
		return fmt.Sprintf("%s 抓到了 %s", ev.From, ev.To)
	case event.KindPlayerFrozen:
		return fmt.Sprintf("%s 冻住了 %s", ev.From, ev.To)
	case event.KindPlayerUnfrozen:
		return fmt.Sprintf("%s 解冻了 %s", ev.From, ev.To)
	case event.KindPlayerEliminated:
		return fmt.Sprintf("%s 被淘汰（第 %d 阶段）", ev.Player, ev.Stage)
	case event.KindRoundResolved:
		switch ev.Outcome {
		case event.OutcomeDistinguishedWins:
			return fmt.Sprintf("%s 冻住了所有人！", ev.Player)
		case event.OutcomeOthersWin:
			return "时间到，其余玩家得分"
		case event.OutcomeTimeout:
			return "时间到"
		}
	case event.KindSessionFinished:
		if ev.Tie {
			return "平局！获胜者: " + joinIDs(ev.Winners)
		}
		return "获胜者: " + joinIDs(ev.Winners)
	}
	return ""
}

func joinIDs(ids []player.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}
