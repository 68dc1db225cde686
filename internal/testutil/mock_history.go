//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/party-tag/internal/game/player"
)

// MockHistory 历史积分 mock
type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) Totals(ctx context.Context) (map[player.ID]uint32, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[player.ID]uint32), args.Error(1)
}

// StaticHistory 固定的历史积分
type StaticHistory map[player.ID]uint32

func (h StaticHistory) Totals(context.Context) (map[player.ID]uint32, error) {
	out := make(map[player.ID]uint32, len(h))
	for id, s := range h {
		out[id] = s
	}
	return out, nil
}
