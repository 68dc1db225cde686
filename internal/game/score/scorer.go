// Package score 累计会话积分并判定胜者
package score

import (
	"slices"

	"github.com/palemoky/party-tag/internal/game/player"
)

// Scorer 会话积分表
type Scorer struct {
	points map[player.ID]uint32
}

// NewScorer 创建空积分表
func NewScorer() *Scorer {
	return &Scorer{points: make(map[player.ID]uint32)}
}

// AddPoint 为玩家加 1 分，编号被限制在 1..=4
func (s *Scorer) AddPoint(id player.ID) {
	s.points[id.Clamp()]++
}

// AddPoints 为多名玩家各加 1 分
func (s *Scorer) AddPoints(ids []player.ID) {
	for _, id := range ids {
		s.AddPoint(id)
	}
}

// Score 玩家当前积分
func (s *Scorer) Score(id player.ID) uint32 {
	return s.points[id]
}

// Scores 返回积分表副本
func (s *Scorer) Scores() map[player.ID]uint32 {
	out := make(map[player.ID]uint32, len(s.points))
	for id, p := range s.points {
		out[id] = p
	}
	return out
}

// Reset 清空积分
func (s *Scorer) Reset() {
	clear(s.points)
}

// FallbackWinner 没有在场玩家时返回的胜者
const FallbackWinner player.ID = 1

// DetermineWinners 在场玩家中积分最高的全部玩家（升序），并列时返回多人。
// 不在场玩家既不参与最高分计算也不会出现在结果中。
// 没有在场玩家时返回 {FallbackWinner}。
func DetermineWinners(scores map[player.ID]uint32, active []player.ID) []player.ID {
	if len(active) == 0 {
		return []player.ID{FallbackWinner}
	}

	var best uint32
	for _, id := range active {
		best = max(best, scores[id])
	}

	winners := make([]player.ID, 0, len(active))
	for _, id := range active {
		if scores[id] == best && !slices.Contains(winners, id) {
			winners = append(winners, id)
		}
	}
	slices.Sort(winners)
	return winners
}
