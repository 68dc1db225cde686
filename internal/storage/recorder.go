package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/palemoky/party-tag/internal/game/event"
	"github.com/palemoky/party-tag/internal/game/player"
)

// Recorder 订阅会话结束通知，把胜者写入历史积分
type Recorder struct {
	store   *HistoryStore
	log     zerolog.Logger
	timeout time.Duration

	eliminated []player.ID
	rounds     uint32
}

// NewRecorder 创建记录器
func NewRecorder(store *HistoryStore, log zerolog.Logger) *Recorder {
	return &Recorder{store: store, log: log, timeout: 2 * time.Second}
}

// Notify 实现 event.Observer
func (r *Recorder) Notify(ev event.Event) {
	switch ev.Kind {
	case event.KindRoundStarted:
		if ev.Round == 1 {
			r.eliminated = nil
		}
		r.rounds = ev.Round
	case event.KindPlayerEliminated:
		r.eliminated = append(r.eliminated, ev.Player)
	case event.KindSessionFinished:
		r.record(ev)
	}
}

func (r *Recorder) record(ev event.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	// 提前结束的会话只保存结果，不计入历史胜场
	if ev.Aborted {
		r.log.Info().Str("session", ev.SessionID.String()).Uint32("rounds", r.rounds).Msg("会话提前结束，不记录胜场")
	} else if err := r.store.AddWins(ctx, ev.Winners); err != nil {
		r.log.Error().Err(err).Msg("记录胜者失败")
		return
	}

	result := &SessionResult{
		SessionID:        ev.SessionID.String(),
		Mode:             r.store.mode,
		Winners:          toInts(ev.Winners),
		Tie:              ev.Tie,
		Aborted:          ev.Aborted,
		Scores:           make(map[string]int, len(ev.Scores)),
		EliminationOrder: toInts(r.eliminated),
		Rounds:           r.rounds,
		FinishedAt:       time.Now().Unix(),
	}
	for id, s := range ev.Scores {
		result.Scores[strconv.Itoa(int(id))] = int(s)
	}
	if err := r.store.SaveResult(ctx, result); err != nil {
		r.log.Error().Err(err).Msg("保存会话结果失败")
		return
	}
	r.log.Info().Str("session", result.SessionID).Ints("winners", result.Winners).Msg("💾 会话结果已保存")
}

func toInts(ids []player.ID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
