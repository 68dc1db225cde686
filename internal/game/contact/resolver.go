// Package contact 判定两名玩家接触时产生的效果
package contact

import "github.com/palemoky/party-tag/internal/game/player"

// Effect 接触效果
type Effect int

const (
	EffectNone     Effect = iota // 无效果
	EffectTransfer               // Tag：转移抓人者身份
	EffectFreeze                 // 冰冻：冰冻者冻住目标
	EffectUnfreeze               // 冰冻：队友解冻目标
)

func (e Effect) String() string {
	switch e {
	case EffectTransfer:
		return "transfer"
	case EffectFreeze:
		return "freeze"
	case EffectUnfreeze:
		return "unfreeze"
	default:
		return "none"
	}
}

// Result 接触判定结果
type Result struct {
	Effect Effect
	By     player.ID // 发起者
	Target player.ID // 被作用者
}

// None 空结果
var None = Result{}

// Resolver 接触判定器，只做判定，不修改玩家状态
type Resolver interface {
	Resolve(a, b *player.Player) Result
}

// TagResolver Tag 模式：抓人者碰到普通玩家时转移身份
type TagResolver struct{}

func (TagResolver) Resolve(a, b *player.Player) Result {
	if !eligible(a, b) {
		return None
	}
	switch {
	case a.IsDistinguished() && !b.IsDistinguished():
		return Result{Effect: EffectTransfer, By: a.ID, Target: b.ID}
	case b.IsDistinguished() && !a.IsDistinguished():
		return Result{Effect: EffectTransfer, By: b.ID, Target: a.ID}
	}
	return None
}

// FrozenResolver 冰冻模式：冰冻者冻住未冻结的玩家，未冻结的队友解冻被冻住的玩家
type FrozenResolver struct{}

func (FrozenResolver) Resolve(a, b *player.Player) Result {
	if !eligible(a, b) {
		return None
	}
	if r, ok := freezeOrThaw(a, b); ok {
		return r
	}
	if r, ok := freezeOrThaw(b, a); ok {
		return r
	}
	return None
}

func freezeOrThaw(by, target *player.Player) (Result, bool) {
	switch {
	case by.IsDistinguished() && !target.IsDistinguished() && !target.Frozen:
		return Result{Effect: EffectFreeze, By: by.ID, Target: target.ID}, true
	case !by.IsDistinguished() && !by.Frozen && target.Frozen && !target.IsDistinguished():
		return Result{Effect: EffectUnfreeze, By: by.ID, Target: target.ID}, true
	}
	return None, false
}

// eligible 过滤无效的接触：空玩家、同一玩家、不在场或已淘汰的玩家
func eligible(a, b *player.Player) bool {
	if a == nil || b == nil || a.ID == b.ID {
		return false
	}
	return a.Active && b.Active && !a.Eliminated && !b.Eliminated
}
