// Package storage 在 Redis 中保存跨会话的历史积分与会话结果
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/party-tag/internal/game/player"
)

const (
	// Redis key 前缀
	totalsKeyPrefix = "party:totals:"
	resultKeyPrefix = "party:result:"

	// 会话结果过期时间
	resultExpiration = 7 * 24 * time.Hour
)

// ErrNoClient 未配置 Redis 客户端
var ErrNoClient = errors.New("storage: redis client not configured")

// SessionResult 会话结果（用于 Redis 序列化）
type SessionResult struct {
	SessionID        string         `json:"session_id"`
	Mode             string         `json:"mode"`
	Winners          []int          `json:"winners"`
	Tie              bool           `json:"tie"`
	Aborted          bool           `json:"aborted,omitempty"`
	Scores           map[string]int `json:"scores,omitempty"`
	EliminationOrder []int          `json:"elimination_order,omitempty"`
	Rounds           uint32         `json:"rounds"`
	FinishedAt       int64          `json:"finished_at"`
}

// HistoryStore 历史积分存储。每个模式一个有序集合，成员为玩家编号，分值为累计胜场。
type HistoryStore struct {
	client *redis.Client
	mode   string
}

// NewHistoryStore 创建历史积分存储
func NewHistoryStore(client *redis.Client, mode string) *HistoryStore {
	return &HistoryStore{client: client, mode: strings.ToLower(mode)}
}

func (hs *HistoryStore) totalsKey() string {
	return totalsKeyPrefix + hs.mode
}

func member(id player.ID) string {
	return strconv.Itoa(int(id))
}

// Totals 读取所有玩家的累计胜场
func (hs *HistoryStore) Totals(ctx context.Context) (map[player.ID]uint32, error) {
	if hs.client == nil {
		return nil, ErrNoClient
	}

	results, err := hs.client.ZRangeWithScores(ctx, hs.totalsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取历史积分失败: %w", err)
	}

	totals := make(map[player.ID]uint32, len(results))
	for _, z := range results {
		name, ok := z.Member.(string)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(name)
		if err != nil || !player.ID(n).Valid() {
			continue
		}
		totals[player.ID(n)] = uint32(max(z.Score, 0))
	}
	return totals, nil
}

// AddWins 为每名胜者累计 1 场胜利
func (hs *HistoryStore) AddWins(ctx context.Context, winners []player.ID) error {
	if hs.client == nil {
		return ErrNoClient
	}
	if len(winners) == 0 {
		return nil
	}

	pipe := hs.client.TxPipeline()
	for _, id := range winners {
		pipe.ZIncrBy(ctx, hs.totalsKey(), 1, member(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("更新历史积分失败: %w", err)
	}
	return nil
}

// SaveResult 保存会话结果
func (hs *HistoryStore) SaveResult(ctx context.Context, result *SessionResult) error {
	if hs.client == nil {
		return ErrNoClient
	}
	if result == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("序列化会话结果失败: %w", err)
	}
	return hs.client.Set(ctx, resultKeyPrefix+result.SessionID, data, resultExpiration).Err()
}

// LoadResult 读取会话结果，不存在时返回 nil
func (hs *HistoryStore) LoadResult(ctx context.Context, sessionID uuid.UUID) (*SessionResult, error) {
	if hs.client == nil {
		return nil, ErrNoClient
	}

	data, err := hs.client.Get(ctx, resultKeyPrefix+sessionID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var result SessionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("反序列化会话结果失败: %w", err)
	}
	return &result, nil
}

// Reset 清空当前模式的历史积分
func (hs *HistoryStore) Reset(ctx context.Context) error {
	if hs.client == nil {
		return ErrNoClient
	}
	return hs.client.Del(ctx, hs.totalsKey()).Err()
}
