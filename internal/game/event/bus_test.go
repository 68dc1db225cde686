package event

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishInOrder(t *testing.T) {
	t.Parallel()

	var b Bus
	var got []string
	b.Subscribe(ObserverFunc(func(ev Event) { got = append(got, "a:"+ev.Kind.String()) }))
	b.Subscribe(ObserverFunc(func(ev Event) { got = append(got, "b:"+ev.Kind.String()) }))

	b.Publish(Event{Kind: KindRoundStarted}, Event{Kind: KindRoundResolved})

	assert.Equal(t, []string{
		"a:round_started", "b:round_started",
		"a:round_resolved", "b:round_resolved",
	}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	var b Bus
	calls := 0
	unsubscribe := b.Subscribe(ObserverFunc(func(Event) { calls++ }))
	assert.Equal(t, 1, b.Len())

	b.Publish(Event{Kind: KindRoleChanged})
	unsubscribe()
	unsubscribe()
	b.Publish(Event{Kind: KindRoleChanged})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.Len())
}

func TestBus_NilObserver(t *testing.T) {
	t.Parallel()

	var b Bus
	assert.NotPanics(t, func() {
		b.Subscribe(nil)()
		b.Publish()
	})
	assert.Equal(t, 0, b.Len())
}

func TestKindAndOutcomeStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "player_eliminated", KindPlayerEliminated.String())
	assert.Equal(t, "session_finished", KindSessionFinished.String())
	assert.Equal(t, "unknown", Kind(0).String())
	assert.Equal(t, "distinguished_wins", OutcomeDistinguishedWins.String())
	assert.Equal(t, "timeout", OutcomeTimeout.String())
}

func TestBus_NestedPublishDeliveredAfterCurrent(t *testing.T) {
	t.Parallel()

	var b Bus
	var got []string
	b.Subscribe(ObserverFunc(func(ev Event) {
		if ev.Kind == KindRoundResolved && ev.Round == 1 {
			b.Publish(Event{Kind: KindRoundStarted, Round: 2})
		}
	}))
	b.Subscribe(ObserverFunc(func(ev Event) {
		got = append(got, fmt.Sprintf("%d:%s", ev.Round, ev.Kind))
	}))

	b.Publish(
		Event{Kind: KindRoundResolved, Round: 1},
		Event{Kind: KindSessionFinished, Round: 1},
	)

	assert.Equal(t, []string{
		"1:round_resolved",
		"1:session_finished",
		"2:round_started",
	}, got)
}

func TestBus_EnqueueWaitsForFlush(t *testing.T) {
	t.Parallel()

	var b Bus
	calls := 0
	b.Subscribe(ObserverFunc(func(Event) { calls++ }))

	b.Enqueue(Event{Kind: KindRoleChanged}, Event{Kind: KindPlayerFrozen})
	assert.Zero(t, calls)

	b.Flush()
	assert.Equal(t, 2, calls)
	b.Flush()
	assert.Equal(t, 2, calls)
}
