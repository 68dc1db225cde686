package contact

import "github.com/palemoky/party-tag/internal/game/player"

// DefaultWindow 默认去抖窗口（秒）
const DefaultWindow = 0.020

type mark struct {
	at   float64
	step uint64
}

// Debouncer 按玩家记录最近一次生效的接触。
// 同一物理接触可能在同一帧被触发器和碰撞两条路径各报告一次，
// 因此在窗口期内或同一帧内再次涉及任一参与者的接触都会被丢弃。
type Debouncer struct {
	window float64
	marks  map[player.ID]mark
}

// NewDebouncer 创建去抖器，window 为秒，非正数时使用 DefaultWindow
func NewDebouncer(window float64) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window, marks: make(map[player.ID]mark)}
}

// Window 去抖窗口（秒）
func (d *Debouncer) Window() float64 {
	return d.window
}

// Suppressed 判断 a、b 之间在时刻 now、第 step 帧的接触是否应被丢弃
func (d *Debouncer) Suppressed(a, b player.ID, now float64, step uint64) bool {
	return d.recent(a, now, step) || d.recent(b, now, step)
}

func (d *Debouncer) recent(id player.ID, now float64, step uint64) bool {
	m, ok := d.marks[id]
	if !ok {
		return false
	}
	return m.step == step || now-m.at < d.window
}

// Mark 在接触生效后刷新两名参与者的记录
func (d *Debouncer) Mark(a, b player.ID, now float64, step uint64) {
	d.marks[a] = mark{at: now, step: step}
	d.marks[b] = mark{at: now, step: step}
}

// Reset 清空所有记录，每回合开始时调用
func (d *Debouncer) Reset() {
	clear(d.marks)
}
