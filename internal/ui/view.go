package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/party-tag/internal/game/player"
	"github.com/palemoky/party-tag/internal/game/round"
)

func (m *Model) View() string {
	snap := m.machine.Snapshot()

	var sb strings.Builder
	sb.WriteString(titleStyle(fmt.Sprintf("%s · 第 %d 回合", modeTitle(snap.Mode), snap.RoundIndex)))
	sb.WriteString("\n\n")
	sb.WriteString(renderStatus(snap))
	sb.WriteString("\n\n")
	sb.WriteString(renderPlayers(snap))
	sb.WriteString("\n")

	if m.pending != player.None {
		sb.WriteString(promptStyle.Render(fmt.Sprintf("已选择 %s，再按一名玩家", m.pending)))
		sb.WriteString("\n")
	}

	for _, line := range m.feed.lines {
		sb.WriteString(grayStyle.Render("· " + line))
		sb.WriteString("\n")
	}

	sb.WriteString(promptStyle.Render(m.help.View(m.keys)))
	return docStyle.Render(sb.String())
}

func modeTitle(mode round.Mode) string {
	if mode == round.ModeCongelados {
		return "冰冻人"
	}
	return "抓人游戏"
}

func renderStatus(s round.Snapshot) string {
	switch s.Phase {
	case round.PhaseIdle:
		return grayStyle.Render("等待开始")
	case round.PhaseAwaitingGate:
		return grayStyle.Render("准备中...")
	case round.PhaseActive:
		status := timerStyle.Render(fmt.Sprintf("⏱ %.1fs", s.TimeRemaining))
		if s.Paused {
			status += " " + warnStyle.Render("已暂停")
		}
		return status
	case round.PhaseResolved:
		return "回合结束，按空格继续"
	case round.PhaseFinished:
		names := make([]string, len(s.Winners))
		for i, id := range s.Winners {
			names[i] = id.String()
		}
		return warnStyle.Render(TrophyIcon + " " + strings.Join(names, ", "))
	}
	return ""
}

func renderPlayers(s round.Snapshot) string {
	boxes := make([]string, 0, len(s.Players)+len(s.EliminationOrder))
	for _, p := range s.Players {
		icon := RunnerIcon
		switch {
		case p.IsDistinguished() && s.Mode == round.ModeCongelados:
			icon = FreezerIcon
		case p.IsDistinguished():
			icon = TaggedIcon
		case p.Frozen:
			icon = FrozenIcon
		}

		body := fmt.Sprintf("%s %s", icon, p.ID)
		if s.Mode == round.ModeCongelados {
			body += fmt.Sprintf("\n%d 分", p.Score)
		}
		style := boxStyle
		if p.IsDistinguished() {
			style = activeBoxStyle
		}
		boxes = append(boxes, style.Render(body))
	}
	for _, id := range s.EliminationOrder {
		boxes = append(boxes, boxStyle.Render(grayStyle.Render(fmt.Sprintf("%s %s", OutIcon, id))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
