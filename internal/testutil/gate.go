//go:build !production

package testutil

import "sync/atomic"

// SwitchGate 可手动关闭的开场信号
type SwitchGate struct {
	active atomic.Bool
}

// NewSwitchGate 创建处于激活状态的开场信号
func NewSwitchGate() *SwitchGate {
	g := &SwitchGate{}
	g.active.Store(true)
	return g
}

func (g *SwitchGate) Active() bool { return g.active.Load() }

// Clear 关闭开场信号
func (g *SwitchGate) Clear() { g.active.Store(false) }
