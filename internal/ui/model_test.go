package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/party-tag/internal/game/player"
	"github.com/palemoky/party-tag/internal/game/round"
	"github.com/palemoky/party-tag/internal/testutil"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, s round.Settings) (*Model, *round.Machine) {
	t.Helper()
	m, err := round.New(s, round.WithHistory(testutil.StaticHistory{1: 5}))
	require.NoError(t, err)
	require.NoError(t, m.Start(context.Background()))
	return New(m, 10*time.Millisecond), m
}

func tagSettings() round.Settings {
	return round.Settings{Mode: round.ModeTag, ActivePlayers: 3, RoundDuration: 2, NextRoundDelay: 1}
}

func TestModel_KeyPairTriggersContact(t *testing.T) {
	t.Parallel()

	model, machine := newTestModel(t, tagSettings())

	model.Update(runes("1"))
	assert.Equal(t, player.ID(1), model.Pending())
	assert.Contains(t, model.View(), "已选择 P1")

	model.Update(runes("2"))
	assert.Equal(t, player.None, model.Pending())
	assert.Equal(t, player.ID(2), machine.Snapshot().Distinguished)
	assert.Contains(t, model.Feed(), "P1 抓到了 P2")
}

func TestModel_CancelSelection(t *testing.T) {
	t.Parallel()

	model, machine := newTestModel(t, tagSettings())

	model.Update(runes("3"))
	model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, player.None, model.Pending())
	assert.Equal(t, player.ID(1), machine.Snapshot().Distinguished)
}

func TestModel_FramesDriveClock(t *testing.T) {
	t.Parallel()

	model, machine := newTestModel(t, tagSettings())
	t0 := time.Unix(1000, 0)

	_, cmd := model.Update(frameMsg(t0))
	assert.NotNil(t, cmd)
	assert.Equal(t, 2.0, machine.Snapshot().TimeRemaining)

	model.Update(frameMsg(t0.Add(500 * time.Millisecond)))
	assert.InDelta(t, 1.5, machine.Snapshot().TimeRemaining, 1e-9)

	model.Update(frameMsg(t0.Add(3 * time.Second)))
	snap := machine.Snapshot()
	assert.Equal(t, round.PhaseResolved, snap.Phase)
	assert.Contains(t, model.View(), "按空格继续")

	// 空格键进入下一回合
	model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	snap = machine.Snapshot()
	assert.Equal(t, round.PhaseActive, snap.Phase)
	assert.Equal(t, player.ID(2), snap.Distinguished)
}

func TestModel_PauseToggle(t *testing.T) {
	t.Parallel()

	model, machine := newTestModel(t, tagSettings())

	model.Update(runes("p"))
	assert.True(t, machine.Snapshot().Paused)
	assert.Contains(t, model.View(), "已暂停")

	model.Update(runes("p"))
	assert.False(t, machine.Snapshot().Paused)
}

func TestModel_QuitFinalizes(t *testing.T) {
	t.Parallel()

	model, machine := newTestModel(t, tagSettings())

	_, cmd := model.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, round.PhaseFinished, machine.Phase())
}

func TestModel_CongeladosView(t *testing.T) {
	t.Parallel()

	s := round.Settings{Mode: round.ModeCongelados, ActivePlayers: 2, RoundDuration: 2, TotalRounds: 1}
	model, _ := newTestModel(t, s)

	model.Update(runes("1"))
	model.Update(runes("2"))

	view := model.View()
	assert.Contains(t, view, "冰冻人")
	assert.Contains(t, view, TrophyIcon)
	assert.Contains(t, model.Feed(), "P1 冻住了所有人！")
}
