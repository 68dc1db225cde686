package round

import (
	"strings"

	"github.com/palemoky/party-tag/internal/apperrors"
)

// Phase 回合阶段
type Phase int

const (
	PhaseIdle         Phase = iota // 会话尚未开始
	PhaseAwaitingGate              // 等待外部开场信号
	PhaseActive                    // 回合进行中
	PhaseResolved                  // 回合已结算，等待进入下一回合
	PhaseFinished                  // 会话结束
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingGate:
		return "awaiting_gate"
	case PhaseActive:
		return "active"
	case PhaseResolved:
		return "resolved"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Mode 游戏模式
type Mode int

const (
	ModeTag        Mode = iota // 抓人：超时时抓人者被淘汰
	ModeCongelados             // 冰冻：固定回合数，按积分决出胜者
)

func (m Mode) String() string {
	if m == ModeCongelados {
		return "congelados"
	}
	return "tag"
}

// ParseMode 解析模式名称，支持 tag / congelados / frozen
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tag":
		return ModeTag, nil
	case "congelados", "frozen":
		return ModeCongelados, nil
	default:
		return ModeTag, apperrors.ErrInvalidMode
	}
}
