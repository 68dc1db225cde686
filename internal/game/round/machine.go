// Package round 驱动 Tag / 冰冻模式的回合状态机。
//
// 状态机只在外部调用 Tick(dt) 和 Contact(a, b) 时推进，不启动任何协程。
// 开场等待和回合间等待都由 Tick 轮询推进，使用调用方传入的真实时间，
// 不受展示层暂停的影响。
package round

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/palemoky/party-tag/internal/apperrors"
	"github.com/palemoky/party-tag/internal/game/clock"
	"github.com/palemoky/party-tag/internal/game/contact"
	"github.com/palemoky/party-tag/internal/game/event"
	"github.com/palemoky/party-tag/internal/game/player"
	"github.com/palemoky/party-tag/internal/game/role"
	"github.com/palemoky/party-tag/internal/game/score"
)

// ScoreHistory 历史积分来源，用于首轮角色选择
type ScoreHistory interface {
	Totals(ctx context.Context) (map[player.ID]uint32, error)
}

// Gate 外部开场信号，Active 返回 true 时首轮需要等待
type Gate interface {
	Active() bool
}

// GateFunc 函数适配器
type GateFunc func() bool

func (f GateFunc) Active() bool { return f() }

// Option 构造选项
type Option func(*Machine)

// WithLogger 设置日志
func WithLogger(l zerolog.Logger) Option {
	return func(m *Machine) { m.log = l }
}

// WithHistory 设置历史积分来源
func WithHistory(h ScoreHistory) Option {
	return func(m *Machine) { m.history = h }
}

// WithGate 设置开场信号
func WithGate(g Gate) Option {
	return func(m *Machine) { m.gate = g }
}

// WithAssigner 设置角色分配器
func WithAssigner(a *role.Assigner) Option {
	return func(m *Machine) {
		if a != nil {
			m.assigner = a
		}
	}
}

// WithObserver 构造时订阅通知
func WithObserver(o event.Observer) Option {
	return func(m *Machine) { m.bus.Subscribe(o) }
}

// Machine 回合状态机，独占会话内的所有可变状态
type Machine struct {
	settings Settings
	log      zerolog.Logger
	history  ScoreHistory
	gate     Gate
	assigner *role.Assigner
	resolver contact.Resolver
	debounce *contact.Debouncer
	clock    *clock.RoundClock
	scorer   *score.Scorer
	bus      event.Bus

	// 会话状态
	sessionID        uuid.UUID
	players          map[player.ID]*player.Player
	seed             map[player.ID]uint32
	roundsPlayed     uint32
	eliminationOrder []player.ID
	finalized        bool
	aborted          bool
	winners          []player.ID

	// 回合状态
	phase            Phase
	distinguished    player.ID
	roundIndex       uint32
	eliminationStage uint32
	outcome          event.Outcome

	gateElapsed  float64
	waitElapsed  float64
	awaitingNext bool
	paused       bool
	now          float64
	step         uint64

	pending []event.Event
	mu      sync.Mutex
}

// New 创建状态机
func New(s Settings, opts ...Option) (*Machine, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	s = s.withDefaults()

	m := &Machine{
		settings:  s,
		log:       zerolog.Nop(),
		assigner:  role.NewAssigner(),
		debounce:  contact.NewDebouncer(s.DebounceWindow),
		clock:     clock.New(s.RoundDuration),
		scorer:    score.NewScorer(),
		sessionID: uuid.New(),
		players:   make(map[player.ID]*player.Player),
	}
	if s.Mode == ModeCongelados {
		m.resolver = contact.FrozenResolver{}
	} else {
		m.resolver = contact.TagResolver{}
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With().Str("session", m.sessionID.String()).Stringer("mode", s.Mode).Logger()
	return m, nil
}

// Subscribe 订阅通知。通知在状态更新完成、锁释放之后发出，
// 订阅者可以在回调中调用 Resume 等方法，回调中产生的通知排在当前通知之后送出。
func (m *Machine) Subscribe(o event.Observer) (unsubscribe func()) {
	return m.bus.Subscribe(o)
}

// Start 开始会话：建立玩家名单，读取历史积分，然后进入开场等待或直接开始首轮。
// 没有玩家时返回 ErrNoPlayers，状态机保持 Idle。
func (m *Machine) Start(ctx context.Context) error {
	m.mu.Lock()
	err := m.start(ctx)
	m.drain()
	m.mu.Unlock()

	m.bus.Flush()
	return err
}

func (m *Machine) start(ctx context.Context) error {
	switch m.phase {
	case PhaseIdle:
	case PhaseFinished:
		return apperrors.ErrSessionFinished
	default:
		return apperrors.ErrAlreadyStarted
	}

	ids := player.IDs(m.settings.ActivePlayers)
	if len(ids) == 0 {
		m.log.Error().Msg("没有在场玩家，无法开始会话")
		return apperrors.ErrNoPlayers
	}

	clear(m.players)
	for _, id := range ids {
		m.players[id] = &player.Player{ID: id, Active: true}
	}
	m.seed = m.loadHistory(ctx)

	if m.gate == nil {
		m.log.Debug().Msg("未设置开场信号，直接开始")
		return m.beginRound()
	}
	if !m.gate.Active() {
		return m.beginRound()
	}

	m.phase = PhaseAwaitingGate
	m.gateElapsed = 0
	m.log.Info().Float64("timeout", m.settings.GateTimeout).Msg("⏳ 等待开场信号")
	return nil
}

func (m *Machine) loadHistory(ctx context.Context) map[player.ID]uint32 {
	if m.history == nil {
		m.log.Warn().Msg("没有历史积分，首轮随机选择")
		return nil
	}
	totals, err := m.history.Totals(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("读取历史积分失败，首轮随机选择")
		return nil
	}
	return totals
}

// Tick 推进 dt 秒（真实时间）。负数视为 0。
func (m *Machine) Tick(dt float64) {
	m.mu.Lock()
	m.tick(dt)
	m.drain()
	m.mu.Unlock()

	m.bus.Flush()
}

func (m *Machine) tick(dt float64) {
	if !(dt > 0) {
		dt = 0
	}
	m.step++
	m.now += dt

	switch m.phase {
	case PhaseAwaitingGate:
		m.gateElapsed += dt
		if m.gate.Active() {
			if m.gateElapsed < m.settings.GateTimeout {
				return
			}
			m.log.Warn().Float64("waited", m.gateElapsed).Msg("等待开场信号超时，继续开始")
		}
		if err := m.beginRound(); err != nil {
			m.log.Error().Err(err).Msg("开始回合失败")
		}

	case PhaseActive:
		if m.paused {
			return
		}
		if m.clock.Tick(dt) {
			m.expire()
		}

	case PhaseResolved:
		if !m.awaitingNext {
			return
		}
		m.waitElapsed += dt
		if m.waitElapsed >= m.settings.NextRoundDelay {
			m.advance()
		}
	}
}

// Contact 处理两名玩家的接触，返回实际生效的效果。
// 非进行中阶段、未知玩家、去抖期内的接触都返回 contact.None。
func (m *Machine) Contact(a, b player.ID) contact.Result {
	m.mu.Lock()
	res := m.contact(a, b)
	m.drain()
	m.mu.Unlock()

	m.bus.Flush()
	return res
}

func (m *Machine) contact(a, b player.ID) contact.Result {
	if m.phase != PhaseActive || a == b {
		return contact.None
	}
	pa, pb := m.players[a], m.players[b]
	if pa == nil || pb == nil {
		return contact.None
	}
	if m.debounce.Suppressed(a, b, m.now, m.step) {
		m.log.Debug().Stringer("a", a).Stringer("b", b).Msg("接触被去抖丢弃")
		return contact.None
	}

	res := m.resolver.Resolve(pa, pb)
	if res.Effect == contact.EffectNone {
		return res
	}
	m.debounce.Mark(a, b, m.now, m.step)

	by, target := m.players[res.By], m.players[res.Target]
	switch res.Effect {
	case contact.EffectTransfer:
		by.Role = player.RoleNormal
		target.Role = player.RoleDistinguished
		m.distinguished = target.ID
		m.emit(event.Event{Kind: event.KindRoleChanged, From: by.ID, To: target.ID})
		m.log.Debug().Stringer("from", by.ID).Stringer("to", target.ID).Msg("🏃 转移抓人者")

	case contact.EffectFreeze:
		target.Frozen = true
		m.emit(event.Event{Kind: event.KindPlayerFrozen, From: by.ID, To: target.ID})
		if m.allOthersFrozen() {
			m.scorer.AddPoint(m.distinguished)
			m.resolve(event.OutcomeDistinguishedWins)
		}

	case contact.EffectUnfreeze:
		target.Frozen = false
		m.emit(event.Event{Kind: event.KindPlayerUnfrozen, From: by.ID, To: target.ID})
	}
	return res
}

// Resume 展示层回调：结束回合间等待，立即开始下一回合。
// 不在等待中时返回 false。
func (m *Machine) Resume() bool {
	m.mu.Lock()
	ok := m.phase == PhaseResolved && m.awaitingNext
	if ok {
		m.advance()
	}
	m.drain()
	m.mu.Unlock()

	m.bus.Flush()
	return ok
}

// ReadyForNextRound 是否正在等待进入下一回合
func (m *Machine) ReadyForNextRound() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase == PhaseResolved && m.awaitingNext
}

// SetPaused 展示层暂停。暂停只冻结回合倒计时，开场等待和回合间等待照常推进。
func (m *Machine) SetPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = paused
}

// Finalize 结束会话并返回胜者。重复调用返回相同结果，不会重复结算。
// 在终止条件到达前调用时按当前名单和积分提前结束，通知中 Aborted 为 true。
func (m *Machine) Finalize() []player.ID {
	m.mu.Lock()
	m.finish(true)
	winners := append([]player.ID(nil), m.winners...)
	m.drain()
	m.mu.Unlock()

	m.bus.Flush()
	return winners
}

// Phase 当前阶段
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// SessionID 会话编号
func (m *Machine) SessionID() uuid.UUID {
	return m.sessionID
}

// Settings 会话参数
func (m *Machine) Settings() Settings {
	return m.settings
}

func (m *Machine) emit(ev event.Event) {
	ev.SessionID = m.sessionID
	ev.Round = m.roundIndex
	m.pending = append(m.pending, ev)
}

// drain 在持锁时把本次调用产生的通知按顺序交给总线
func (m *Machine) drain() {
	m.bus.Enqueue(m.pending...)
	m.pending = nil
}
