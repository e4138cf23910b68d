package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/internal/config"
	"github.com/katalvlaran/npuzzle/solve"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_FullScenario(t *testing.T) {
	path := writeScenario(t, `
dimension: 3
strategy: uniform-cost
heuristic: misplaced
board:
  - [1, 2, 3]
  - [4, 5, 0]
  - [7, 8, 6]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Dimension)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 0}, {7, 8, 6}}, cfg.Board)

	s, err := cfg.StrategyKind()
	require.NoError(t, err)
	assert.Equal(t, solve.UniformCost, s)

	h, err := cfg.HeuristicKind()
	require.NoError(t, err)
	assert.Equal(t, solve.MisplacedTile, h)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeScenario(t, "shuffle: 15\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Dimension)
	assert.Equal(t, "astar", cfg.Strategy)
	assert.Equal(t, "manhattan", cfg.Heuristic)
	assert.Equal(t, 15, cfg.Shuffle)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "board: [not, closed\n")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want error
	}{
		{"tiny dimension", config.Config{Dimension: 1, Strategy: "astar", Heuristic: "manhattan", Shuffle: 5}, config.ErrBadDimension},
		{"negative shuffle", config.Config{Dimension: 3, Strategy: "astar", Heuristic: "manhattan", Shuffle: -1}, config.ErrBadShuffle},
		{"no start", config.Config{Dimension: 3, Strategy: "astar", Heuristic: "manhattan"}, config.ErrNoStart},
		{"bad strategy", config.Config{Dimension: 3, Strategy: "bfs", Heuristic: "manhattan", Shuffle: 5}, config.ErrBadStrategy},
		{"bad heuristic", config.Config{Dimension: 3, Strategy: "astar", Heuristic: "euclid", Shuffle: 5}, config.ErrBadHeuristic},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.cfg.Validate(), tc.want, tc.name)
	}
}

func TestStrategyAliases(t *testing.T) {
	for name, want := range map[string]solve.Strategy{
		"ucs":          solve.UniformCost,
		"uniform-cost": solve.UniformCost,
		"a*":           solve.AStar,
		"astar":        solve.AStar,
	} {
		cfg := config.Config{Strategy: name}
		got, err := cfg.StrategyKind()
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}
