package main

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/playback"
	"github.com/katalvlaran/gridwalk/search"
)

func newTestModel(t *testing.T, layout string, delay time.Duration) *playModel {
	t.Helper()
	cache, err := search.NewCache(8, nil)
	require.NoError(t, err)
	player := playback.NewPlayer(playback.WithStepDelay(delay))
	t.Cleanup(player.Stop)
	return newPlayModel(context.Background(), grid.MustParse(layout), search.BFS, cache, player)
}

// press feeds key presses through Update, the way bubbletea would.
func press(t *testing.T, m *playModel, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var model tea.Model
		model, cmd = m.Update(msg)
		require.Same(t, m, model)
	}
	return cmd
}

func TestPlayModel_RunDrawsSearch(t *testing.T) {
	m := newTestModel(t, "S..\n.#.\n..E", 0)
	press(t, m, "r")
	require.NotNil(t, m.run)
	require.NoError(t, m.run.Wait())

	res, err := search.Search(m.board, search.BFS)
	require.NoError(t, err)
	want, err := res.Mark(m.board)
	require.NoError(t, err)
	assert.True(t, want.Equal(m.canvas.Snapshot()), "got\n%s\nwant\n%s", m.canvas.Snapshot(), want)
	assert.Contains(t, m.View(), "bfs: visited=")
	assert.Contains(t, m.View(), "path=4")
}

func TestPlayModel_NoPathIsReported(t *testing.T) {
	m := newTestModel(t, "S#E", 0)
	press(t, m, "r")
	require.NoError(t, m.run.Wait())
	assert.Contains(t, m.View(), "visited=1 no path")
}

func TestPlayModel_EditStopsPlayback(t *testing.T) {
	m := newTestModel(t, "S....\n.....\n....E", 50*time.Millisecond)
	press(t, m, "r")
	run := m.run
	require.NotNil(t, run)

	press(t, m, "l", " ")
	assert.ErrorIs(t, run.Wait(), playback.ErrStopped)
	assert.Equal(t, []grid.Position{grid.Pos(0, 1)}, m.board.Walls())

	visited, pathShown := m.canvas.Progress()
	assert.Zero(t, visited)
	assert.False(t, pathShown)
	assert.Nil(t, m.last)
	assert.Contains(t, m.View(), "ready")
}

func TestPlayModel_RestartSupersedes(t *testing.T) {
	m := newTestModel(t, "S....\n.....\n....E", 50*time.Millisecond)
	press(t, m, "r")
	first := m.run
	press(t, m, "tab", "r")
	second := m.run

	assert.ErrorIs(t, first.Wait(), playback.ErrStopped)
	assert.Greater(t, second.Generation(), first.Generation())
	assert.Equal(t, search.DFS, m.last.Algorithm)
	m.player.Stop()
}

func TestPlayModel_Keys(t *testing.T) {
	m := newTestModel(t, "S..\n...\n..E", 0)
	assert.Equal(t, grid.Pos(0, 0), m.cursor)

	press(t, m, "up", "left")
	assert.Equal(t, grid.Pos(0, 0), m.cursor, "cursor stays on the board")

	press(t, m, "j", "l", "down", "right")
	assert.Equal(t, grid.Pos(2, 2), m.cursor)
	press(t, m, "k", "h", "h")
	assert.Equal(t, grid.Pos(1, 0), m.cursor)

	press(t, m, "s", "enter")
	assert.Equal(t, grid.ModeStart, m.mode)
	assert.Equal(t, grid.Pos(1, 0), m.board.Start())

	press(t, m, "e", "right", " ")
	assert.Equal(t, grid.Pos(1, 1), m.board.End())

	press(t, m, "w", "right", " ")
	assert.Equal(t, []grid.Position{grid.Pos(1, 2)}, m.board.Walls())

	press(t, m, "x")
	assert.Empty(t, m.board.Walls())
	assert.Equal(t, grid.Pos(1, 0), m.board.Start())

	press(t, m, "tab")
	assert.Equal(t, search.DFS, m.algo)
	press(t, m, "tab")
	assert.Equal(t, search.BFS, m.algo)
}

func TestPlayModel_EditErrorShown(t *testing.T) {
	m := newTestModel(t, "S.E", 0)
	press(t, m, "e", " ")
	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, grid.ErrInvalidLayout)
	assert.Equal(t, "S.E", m.board.String())

	press(t, m, "w", "l", " ")
	assert.NoError(t, m.err)
}

func TestPlayModel_FailedEditClearsPlayback(t *testing.T) {
	m := newTestModel(t, "S..\n...\n..E", 0)
	press(t, m, "r")
	require.NoError(t, m.run.Wait())
	visited, _ := m.canvas.Progress()
	require.NotZero(t, visited)

	press(t, m, "e", " ")
	assert.ErrorIs(t, m.err, grid.ErrInvalidLayout)
	assert.Nil(t, m.last)
	visited, pathShown := m.canvas.Progress()
	assert.Zero(t, visited)
	assert.False(t, pathShown)
	assert.True(t, m.board.Equal(m.canvas.Snapshot()))
}

func TestPlayModel_Quit(t *testing.T) {
	m := newTestModel(t, "S.E", 0)
	cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPlayModel_FrameTicks(t *testing.T) {
	m := newTestModel(t, "S.E", 0)
	require.NotNil(t, m.Init())
	_, cmd := m.Update(frameMsg(time.Now()))
	assert.NotNil(t, cmd)
}
