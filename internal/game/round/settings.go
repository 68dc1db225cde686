package round

import (
	"github.com/palemoky/party-tag/internal/apperrors"
	"github.com/palemoky/party-tag/internal/config"
	"github.com/palemoky/party-tag/internal/game/contact"
	"github.com/palemoky/party-tag/internal/game/player"
)

// 默认值（秒）
const (
	defaultRoundDuration  = 30.0
	defaultTotalRounds    = 3
	defaultGateTimeout    = 5.0
	defaultNextRoundDelay = 3.0
)

// Settings 会话参数，构造后不可修改
type Settings struct {
	Mode           Mode
	ActivePlayers  int
	RoundDuration  float64 // 秒
	TotalRounds    uint32  // 仅冰冻模式
	GateTimeout    float64 // 秒
	DebounceWindow float64 // 秒
	NextRoundDelay float64 // 秒
}

// SettingsFrom 由配置文件的 game 段生成会话参数
func SettingsFrom(gc config.GameConfig) (Settings, error) {
	mode, err := ParseMode(gc.Mode)
	if err != nil {
		return Settings{}, err
	}
	s := Settings{
		Mode:           mode,
		ActivePlayers:  gc.ActivePlayers,
		RoundDuration:  gc.RoundDurationSeconds(),
		TotalRounds:    uint32(max(gc.TotalRounds, 0)),
		GateTimeout:    gc.GateTimeoutSeconds(),
		DebounceWindow: gc.DebounceWindowSeconds(),
		NextRoundDelay: gc.NextRoundDelaySeconds(),
	}
	return s.withDefaults(), s.validate()
}

func (s Settings) validate() error {
	if s.ActivePlayers < 0 || s.ActivePlayers > player.MaxPlayers {
		return apperrors.ErrInvalidPlayerCount
	}
	if s.Mode != ModeTag && s.Mode != ModeCongelados {
		return apperrors.ErrInvalidMode
	}
	return nil
}

func (s Settings) withDefaults() Settings {
	if s.RoundDuration <= 0 {
		s.RoundDuration = defaultRoundDuration
	}
	if s.TotalRounds == 0 {
		s.TotalRounds = defaultTotalRounds
	}
	if s.GateTimeout <= 0 {
		s.GateTimeout = defaultGateTimeout
	}
	if s.DebounceWindow <= 0 {
		s.DebounceWindow = contact.DefaultWindow
	}
	if s.NextRoundDelay < 0 {
		s.NextRoundDelay = defaultNextRoundDelay
	}
	return s
}
