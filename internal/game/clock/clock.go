// Package clock 提供回合倒计时
package clock

// RoundClock 回合倒计时。时钟本身不记录是否已经触发过到期，
// 由调用方在收到到期信号后立即切换阶段来防止重复触发。
type RoundClock struct {
	duration  float64
	remaining float64
	armed     bool
}

// New 创建指定时长（秒）的倒计时，尚未开始计时
func New(duration float64) *RoundClock {
	return &RoundClock{duration: max(duration, 0)}
}

// Arm 重置剩余时间并开始计时
func (c *RoundClock) Arm(duration float64) {
	c.duration = max(duration, 0)
	c.remaining = c.duration
	c.armed = true
}

// Disarm 停止计时，剩余时间保持不变
func (c *RoundClock) Disarm() {
	c.armed = false
}

// Armed 是否正在计时
func (c *RoundClock) Armed() bool {
	return c.armed
}

// Duration 本回合时长
func (c *RoundClock) Duration() float64 {
	return c.duration
}

// Remaining 剩余时间，永远不小于 0
func (c *RoundClock) Remaining() float64 {
	return c.remaining
}

// Tick 推进 dt 秒，剩余时间被限制在 0。剩余时间为 0 时返回 true。
// 负的 dt 视为 0，未计时时什么也不做。
func (c *RoundClock) Tick(dt float64) (expired bool) {
	if !c.armed {
		return false
	}
	if dt > 0 {
		c.remaining -= dt
	}
	if c.remaining <= 0 {
		c.remaining = 0
		return true
	}
	return false
}
