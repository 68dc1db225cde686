// Package player 定义本地玩家及其回合内的角色状态
package player

import (
	"fmt"
	"slices"
)

// MaxPlayers 本地最多 4 名玩家
const MaxPlayers = 4

// ID 玩家编号，取值 1 到 4，整个会话中保持不变
type ID int

// None 表示没有玩家
const None ID = 0

// Valid 判断编号是否在 1..=MaxPlayers 范围内
func (id ID) Valid() bool {
	return id >= 1 && id <= MaxPlayers
}

// Clamp 将编号限制在 1..=MaxPlayers 范围内
func (id ID) Clamp() ID {
	return min(max(id, 1), MaxPlayers)
}

func (id ID) String() string {
	return fmt.Sprintf("P%d", int(id))
}

// Role 回合角色
type Role int

const (
	RoleNormal        Role = iota // 普通玩家
	RoleDistinguished             // 抓人者 / 冰冻者
)

func (r Role) String() string {
	if r == RoleDistinguished {
		return "distinguished"
	}
	return "normal"
}

// Player 玩家状态
type Player struct {
	ID         ID
	Active     bool
	Eliminated bool // 仅 Tag 模式
	Role       Role
	Frozen     bool   // 仅冰冻模式，与 RoleDistinguished 互斥
	Score      uint32 // 仅冰冻模式
}

// IsDistinguished 是否持有特殊角色
func (p *Player) IsDistinguished() bool {
	return p.Role == RoleDistinguished
}

// ResetForRound 回合开始时恢复默认的角色与冰冻状态
func (p *Player) ResetForRound() {
	p.Role = RoleNormal
	p.Frozen = false
}

// IDs 返回 1..=count 的玩家编号，count 会被限制在 0..=MaxPlayers
func IDs(count int) []ID {
	count = min(max(count, 0), MaxPlayers)
	ids := make([]ID, count)
	for i := range count {
		ids[i] = ID(i + 1)
	}
	return ids
}

// SortedIDs 返回 map 中玩家编号的升序列表
func SortedIDs[V any](m map[ID]V) []ID {
	ids := make([]ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
