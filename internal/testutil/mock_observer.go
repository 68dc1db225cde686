//go:build !production

package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/party-tag/internal/game/event"
)

// MockObserver 实现 event.Observer 的 mock
type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) Notify(ev event.Event) {
	m.Called(ev)
}

// EventRecorder 简单的通知记录器，不使用 testify（用于只检查通知序列的测试）
type EventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func NewEventRecorder() *EventRecorder { return &EventRecorder{} }

func (r *EventRecorder) Notify(ev event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events 返回已记录通知的副本
func (r *EventRecorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Event(nil), r.events...)
}

// Kinds 返回已记录通知的类型序列
func (r *EventRecorder) Kinds() []event.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]event.Kind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// OfKind 返回指定类型的通知
func (r *EventRecorder) OfKind(kind event.Kind) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// Reset 清空记录
func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
