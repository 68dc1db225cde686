// Package ui 提供本地终端驱动：按固定帧率推进状态机，键盘模拟玩家接触
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/party-tag/internal/game/player"
	"github.com/palemoky/party-tag/internal/game/round"
)

// DefaultFrame 默认帧间隔
const DefaultFrame = 50 * time.Millisecond

// frameMsg 帧信号，携带当前时间
type frameMsg time.Time

// Model 终端驱动
type Model struct {
	machine *round.Machine
	keys    keyMap
	help    help.Model
	feed    *feed

	frame   time.Duration
	last    time.Time
	pending player.ID // 已按下的第一名玩家
	width   int
}

// New 创建驱动并订阅状态机通知
func New(m *round.Machine, frame time.Duration) *Model {
	if frame <= 0 {
		frame = DefaultFrame
	}
	f := &feed{}
	m.Subscribe(f)
	return &Model{
		machine: m,
		keys:    defaultKeyMap(),
		help:    help.New(),
		feed:    f,
		frame:   frame,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		var dt float64
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.machine.Tick(dt)
		return m, m.nextFrame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.machine.Finalize()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Player):
		id := player.ID(msg.String()[0] - '0')
		if m.pending == player.None {
			m.pending = id
			return m, nil
		}
		m.machine.Contact(m.pending, id)
		m.pending = player.None

	case key.Matches(msg, m.keys.Cancel):
		m.pending = player.None

	case key.Matches(msg, m.keys.Resume):
		m.machine.Resume()

	case key.Matches(msg, m.keys.Pause):
		m.machine.SetPaused(!m.machine.Snapshot().Paused)
	}
	return m, nil
}

// Pending 已选择但尚未配对的玩家
func (m *Model) Pending() player.ID {
	return m.pending
}

// Feed 最近的通知记录
func (m *Model) Feed() []string {
	return append([]string(nil), m.feed.lines...)
}
