// Package role 负责特殊角色（抓人者 / 冰冻者）的首轮选择和后续轮换
package role

import (
	"math/rand/v2"
	"slices"

	"github.com/palemoky/party-tag/internal/game/player"
)

// Assigner 角色分配器
type Assigner struct {
	intN func(n int) int
}

// NewAssigner 使用全局随机源创建分配器
func NewAssigner() *Assigner {
	return &Assigner{intN: rand.IntN}
}

// NewSeededAssigner 使用固定种子创建分配器，结果可复现
func NewSeededAssigner(seed uint64) *Assigner {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Assigner{intN: r.IntN}
}

// ChooseInitial 选择会话首轮的特殊角色。
// 历史积分中只有一名在场玩家独占最高分时选择该玩家；
// 出现并列或没有历史数据时在所有在场玩家中均匀随机（不限于并列的玩家）。
func (a *Assigner) ChooseInitial(active []player.ID, scores map[player.ID]uint32) (player.ID, bool) {
	if len(active) == 0 {
		return player.None, false
	}

	if leader, ok := soleLeader(active, scores); ok {
		return leader, true
	}

	candidates := slices.Clone(active)
	slices.Sort(candidates)
	return candidates[a.intN(len(candidates))], true
}

// soleLeader 返回在场玩家中唯一的最高分者
func soleLeader(active []player.ID, scores map[player.ID]uint32) (player.ID, bool) {
	if len(scores) == 0 {
		return player.None, false
	}

	leader := player.None
	var best uint32
	tie := false
	for _, id := range active {
		s := scores[id]
		switch {
		case leader == player.None || s > best:
			leader, best, tie = id, s, false
		case s == best:
			tie = true
		}
	}
	if tie {
		return player.None, false
	}
	return leader, true
}

// Rotate 从 current 的下一个编号开始在 1..=maxActive 之间循环查找，
// 跳过不在场的编号。current 本身可以已经离场（例如刚被淘汰）。
// 没有在场玩家时返回 false。
func Rotate(current player.ID, active []player.ID, maxActive int) (player.ID, bool) {
	if len(active) == 0 {
		return player.None, false
	}

	present := make(map[player.ID]bool, len(active))
	highest := player.None
	for _, id := range active {
		present[id] = true
		highest = max(highest, id)
	}
	maxActive = max(maxActive, int(highest))

	start := int(current)
	if start < 0 || start > maxActive {
		start = 0
	}
	for step := 1; step <= maxActive; step++ {
		next := player.ID((start-1+step+maxActive)%maxActive + 1)
		if present[next] {
			return next, true
		}
	}
	return player.None, false
}
