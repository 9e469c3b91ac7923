package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/playback"
	"github.com/katalvlaran/gridwalk/search"
)

// frameInterval paces redraws while a playback is running.
const frameInterval = 33 * time.Millisecond

var (
	borderColor  = lipgloss.Color("#b3d9ff")
	emptyStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#1b3440"))
	wallStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#b3d9ff"))
	startStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#4FC3F7"))
	endStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#FFB300"))
	visitedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#3d5a6b"))
	pathStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#43a047"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)
	titleStyle  = lipgloss.NewStyle().Foreground(borderColor).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9e9e9e"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

const helpText = "←↓↑→/hjkl move · w/s/e mode · space edit · tab algorithm · r run · x reset · q quit"

func newPlayCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Edit the board and animate searches in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.play(cmd)
		},
	}
	addBoardFlags(cmd.Flags())
	cmd.Flags().Duration("delay", 0, "delay between playback steps (default 20ms)")
	cmd.Flags().Int("cache-size", 0, "number of search results to keep")
	return cmd
}

// play runs the interactive board until the user quits or ctx ends.
func (a *app) play(cmd *cobra.Command) error {
	g, err := a.cfg.Grid()
	if err != nil {
		return err
	}
	algo, err := a.cfg.SearchAlgorithm()
	if err != nil {
		return err
	}
	cache, err := search.NewCache(a.cfg.CacheSize, a.logger)
	if err != nil {
		return err
	}
	player := playback.NewPlayer(
		playback.WithStepDelay(a.cfg.StepDelay),
		playback.WithLogger(a.logger),
	)
	defer player.Stop()

	m := newPlayModel(cmd.Context(), g, algo, cache, player)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	hits, misses := cache.Stats()
	a.logger.Debug("play finished", slog.Int64("cache_hits", hits), slog.Int64("cache_misses", misses))
	return nil
}

// frameMsg asks for a redraw so playback progress shows up.
type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// playModel is the bubbletea model behind the interactive board. The board
// is edited on the UI goroutine only; playback callbacks draw onto canvas.
type playModel struct {
	ctx    context.Context
	cache  *search.Cache
	player *playback.Player
	canvas *playback.Canvas

	board  *grid.Grid
	algo   search.Algorithm
	mode   grid.EditMode
	cursor grid.Position

	run  *playback.Run
	last *search.Result
	err  error
}

func newPlayModel(ctx context.Context, g *grid.Grid, algo search.Algorithm, cache *search.Cache, player *playback.Player) *playModel {
	if ctx == nil {
		ctx = context.Background()
	}
	g = g.ClearMarks()
	return &playModel{
		ctx:    ctx,
		cache:  cache,
		player: player,
		canvas: playback.NewCanvas(g),
		board:  g,
		algo:   algo,
		mode:   grid.ModeWall,
		cursor: g.Start(),
	}
}

func (m *playModel) Init() tea.Cmd {
	return tick()
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case frameMsg:
		return m, tick()
	}
	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.player.Stop()
		return tea.Quit
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "w":
		m.mode = grid.ModeWall
	case "s":
		m.mode = grid.ModeStart
	case "e":
		m.mode = grid.ModeEnd
	case " ", "enter":
		m.edit()
	case "tab":
		m.toggleAlgorithm()
	case "r":
		m.start()
	case "x":
		m.reset()
	}
	return nil
}

func (m *playModel) moveCursor(dr, dc int) {
	next := m.cursor.Add(dr, dc)
	if m.board.InBounds(next) {
		m.cursor = next
	}
}

// edit applies the current mode at the cursor. Any playback in flight is
// stopped first so it cannot draw over the new board.
func (m *playModel) edit() {
	m.player.Stop()
	next, err := grid.Apply(m.board, m.cursor, m.mode)
	if err != nil {
		m.setBoard(m.board)
		m.err = err
		return
	}
	m.setBoard(next)
}

func (m *playModel) reset() {
	m.player.Stop()
	m.setBoard(grid.Reset(m.board))
}

func (m *playModel) setBoard(g *grid.Grid) {
	m.board = g
	m.canvas.Load(g)
	m.run, m.last, m.err = nil, nil, nil
}

func (m *playModel) toggleAlgorithm() {
	if m.algo == search.BFS {
		m.algo = search.DFS
	} else {
		m.algo = search.BFS
	}
}

// start searches the current board and replays the result onto the canvas.
func (m *playModel) start() {
	m.player.Stop()
	res, err := m.cache.Search(m.ctx, m.board, m.algo)
	if err != nil {
		m.err = err
		return
	}
	m.canvas.Load(m.board)
	onVisit, onPath := m.canvas.Bind()
	run, err := m.player.Play(m.ctx, res, onVisit, onPath)
	if err != nil {
		m.err = err
		return
	}
	m.run, m.last, m.err = run, res, nil
}

func (m *playModel) View() string {
	snap := m.canvas.Snapshot()

	var b strings.Builder
	for r := 0; r < snap.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < snap.Cols(); c++ {
			p := grid.Pos(r, c)
			cell, _ := snap.CellAt(p)
			b.WriteString(m.renderCell(cell, p == m.cursor))
		}
	}

	header := titleStyle.Render("gridwalk") + "  " +
		statusStyle.Render(fmt.Sprintf("algorithm %s · mode %s · cursor %s", m.algo, m.mode, m.cursor))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		boardStyle.Render(b.String()),
		m.status(),
		statusStyle.Render(helpText),
	)
}

func (m *playModel) renderCell(c grid.Cell, cursor bool) string {
	style := emptyStyle
	switch {
	case c.Role == grid.Start:
		style = startStyle
	case c.Role == grid.End:
		style = endStyle
	case c.Role == grid.Wall:
		style = wallStyle
	case c.OnPath:
		style = pathStyle
	case c.Visited:
		style = visitedStyle
	}
	if cursor {
		return style.Inherit(cursorStyle).Render("[]")
	}
	return style.Render("  ")
}

// status describes the last edit error or the playback progress.
func (m *playModel) status() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	if m.last == nil {
		return statusStyle.Render("ready")
	}
	visited, pathShown := m.canvas.Progress()
	switch {
	case visited < m.last.Steps() || (m.last.Found() && !pathShown):
		return statusStyle.Render(fmt.Sprintf("%s searching… %d/%d", m.last.Algorithm, visited, m.last.Steps()))
	case m.last.Found():
		return statusStyle.Render(fmt.Sprintf("%s: visited=%d path=%d", m.last.Algorithm, m.last.Steps(), m.last.PathLength()))
	}
	return statusStyle.Render(fmt.Sprintf("%s: visited=%d no path", m.last.Algorithm, m.last.Steps()))
}
