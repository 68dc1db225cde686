package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// 默认值
const (
	defaultMode           = "tag"
	defaultActivePlayers  = 4
	defaultRoundDuration  = 30
	defaultTotalRounds    = 3
	defaultGateTimeout    = 5
	defaultDebounceMs     = 20
	defaultNextRoundDelay = 3
	defaultRedisAddr      = "localhost:6379"
	defaultSoundDir       = "assets/sounds"
	defaultLogLevel       = "info"
)

// Config 配置
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Redis RedisConfig `yaml:"redis"`
	Sound SoundConfig `yaml:"sound"`
	Log   LogConfig   `yaml:"log"`
}

// GameConfig 游戏配置，会话开始后不可修改
type GameConfig struct {
	Mode             string  `yaml:"mode"`               // tag / congelados
	ActivePlayers    int     `yaml:"active_players"`     // 在场玩家数 1-4
	RoundDuration    float64 `yaml:"round_duration"`     // 回合时长（秒）
	TotalRounds      int     `yaml:"total_rounds"`       // 冰冻模式总回合数
	GateTimeout      float64 `yaml:"gate_timeout"`       // 开场等待上限（秒）
	DebounceWindowMs int     `yaml:"debounce_window_ms"` // 接触去抖窗口（毫秒）
	NextRoundDelay   float64 `yaml:"next_round_delay"`   // 回合间等待（秒）
}

// RedisConfig 历史积分存储
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"` // 为空时使用 ~/.party-tag
}

// RoundDurationSeconds 回合时长（秒）
func (c *GameConfig) RoundDurationSeconds() float64 {
	return c.RoundDuration
}

// GateTimeoutSeconds 开场等待上限（秒）
func (c *GameConfig) GateTimeoutSeconds() float64 {
	return c.GateTimeout
}

// DebounceWindowSeconds 去抖窗口（秒）
func (c *GameConfig) DebounceWindowSeconds() float64 {
	return float64(c.DebounceWindowMs) / 1000
}

// NextRoundDelaySeconds 回合间等待（秒）
func (c *GameConfig) NextRoundDelaySeconds() float64 {
	return c.NextRoundDelay
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Sound.Enabled = true
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Game.Mode == "" {
		c.Game.Mode = defaultMode
	}
	if c.Game.ActivePlayers == 0 {
		c.Game.ActivePlayers = defaultActivePlayers
	}
	if c.Game.RoundDuration == 0 {
		c.Game.RoundDuration = defaultRoundDuration
	}
	if c.Game.TotalRounds == 0 {
		c.Game.TotalRounds = defaultTotalRounds
	}
	if c.Game.GateTimeout == 0 {
		c.Game.GateTimeout = defaultGateTimeout
	}
	if c.Game.DebounceWindowMs == 0 {
		c.Game.DebounceWindowMs = defaultDebounceMs
	}
	if c.Game.NextRoundDelay == 0 {
		c.Game.NextRoundDelay = defaultNextRoundDelay
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = defaultRedisAddr
	}
	if c.Sound.Dir == "" {
		c.Sound.Dir = defaultSoundDir
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
}

// applyEnv 环境变量覆盖配置文件
func (c *Config) applyEnv() {
	if v := os.Getenv("GAME_MODE"); v != "" {
		c.Game.Mode = v
	}
	if v, ok := envInt("GAME_ACTIVE_PLAYERS"); ok {
		c.Game.ActivePlayers = v
	}
	if v, ok := envInt("GAME_TOTAL_ROUNDS"); ok {
		c.Game.TotalRounds = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate 校验配置
func (c *Config) Validate() error {
	g := c.Game
	switch strings.ToLower(g.Mode) {
	case "tag", "congelados", "frozen":
	default:
		return fmt.Errorf("未知的游戏模式: %q", g.Mode)
	}
	if g.ActivePlayers < 1 || g.ActivePlayers > 4 {
		return fmt.Errorf("active_players 必须在 1 到 4 之间: %d", g.ActivePlayers)
	}
	if g.RoundDuration <= 0 {
		return fmt.Errorf("round_duration 必须大于 0: %v", g.RoundDuration)
	}
	if g.TotalRounds < 1 {
		return fmt.Errorf("total_rounds 必须大于 0: %d", g.TotalRounds)
	}
	if g.GateTimeout < 0 || g.NextRoundDelay < 0 || g.DebounceWindowMs < 0 {
		return fmt.Errorf("等待时间不能为负数")
	}
	return nil
}
