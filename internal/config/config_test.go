package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// chdir moves into a fresh directory so no stray gridwalk.yaml is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, 12, g.Rows())
	assert.Equal(t, 24, g.Cols())
	assert.Equal(t, grid.Pos(2, 2), g.Start())
	assert.Equal(t, grid.Pos(9, 20), g.End())

	algo, err := cfg.SearchAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, search.BFS, algo)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rows: 4
cols: 5
start: "0,0"
end: "3,4"
walls: ["1,1", "2,2"]
algorithm: dfs
step_delay: 5ms
log:
  level: debug
`), 0o600))
	t.Setenv("GRIDWALK_COLS", "6")
	t.Setenv("GRIDWALK_LOG_FORMAT", "json")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, 6, cfg.Cols, "env overrides file")
	assert.Equal(t, []string{"1,1", "2,2"}, cfg.Walls)
	assert.Equal(t, 5*time.Millisecond, cfg.StepDelay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 1, Col: 1}, {Row: 2, Col: 2}}, g.Walls())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := chdir(t)
	_, err := Load(viper.New(), filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t)
	t.Setenv("GRIDWALK_ALGORITHM", "astar")
	_, err := Load(viper.New(), "")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestConfig_ValidateBoardSize(t *testing.T) {
	cfg := Default()
	cfg.Rows, cfg.Cols = 1<<62, 4
	assert.ErrorIs(t, cfg.Validate(), grid.ErrInvalidLayout)

	cfg.Rows, cfg.Cols = grid.MaxCells/4, 4
	assert.NoError(t, cfg.Validate())
}

func TestConfig_MapFile(t *testing.T) {
	dir := chdir(t)
	mapPath := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(mapPath, []byte("S.#\n..E\n"), 0o600))

	cfg := Default()
	cfg.Map = mapPath
	require.NoError(t, cfg.Validate())
	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, "S.#\n..E", g.String())
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	dir := chdir(t)
	cfg := Default()
	cfg.Walls = []string{"0,1"}

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))
	path := filepath.Join(dir, "gridwalk.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	loaded, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestParsePosition(t *testing.T) {
	p, err := ParsePosition(" 3, 14 ")
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(3, 14), p)
	assert.Equal(t, "3,14", FormatPosition(p))

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := ParsePosition(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
