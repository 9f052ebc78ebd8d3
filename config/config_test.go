package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
mcts:
  iterations: 200
  exploration: 0.9
expert:
  name: minimax
  cache: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 200, cfg.GetInt("mcts.iterations", 400))
	require.InDelta(t, 0.9, cfg.GetFloat("mcts.exploration", 1.4), 1e-9)
	require.Equal(t, "minimax", cfg.GetString("expert.name", "alphabeta"))
	require.True(t, cfg.GetBool("expert.cache", false))
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "mcts: [unclosed")
		_, err := Load(path)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to parse config file")
	})
}

func TestGetFallsBack(t *testing.T) {
	cfg := New()
	cfg.Set("mcts.iterations", 50)

	require.Equal(t, 400, cfg.GetInt("mcts.rollout_limit", 400),
		"A missing leaf should fall back")
	require.Equal(t, 3, cfg.GetInt("expert.depth", 3),
		"A missing subtree should fall back")
	require.Equal(t, 7, cfg.GetInt("mcts.iterations.deeper", 7),
		"Descending through a scalar should fall back")
	require.Equal(t, "x", cfg.GetString("mcts.iterations", "x"),
		"A type mismatch should fall back")
}

func TestSetCreatesIntermediateMaps(t *testing.T) {
	cfg := New()
	cfg.Set("a.b.c", 1)
	require.Equal(t, 1, cfg.GetInt("a.b.c", 0))

	cfg.Set("a.b.c", 2)
	require.Equal(t, 2, cfg.GetInt("a.b.c", 0), "Set should overwrite")

	cfg.Set("a.b", "flat")
	require.Equal(t, "flat", cfg.GetString("a.b", ""),
		"Set should replace a subtree with a scalar")
	require.Equal(t, 9, cfg.GetInt("a.b.c", 9))
}

func TestDiscover(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()

	t.Run("without a config file", func(t *testing.T) {
		cfg, err := Discover()
		require.NoError(t, err)
		require.Equal(t, 400, cfg.GetInt("mcts.iterations", 400),
			"An absent file should behave like an empty config")
	})

	t.Run("with a config file", func(t *testing.T) {
		dir := filepath.Join(home, "othello")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
			[]byte("mcts:\n  iterations: 123\n"), 0644))

		cfg, err := Discover()
		require.NoError(t, err)
		require.Equal(t, 123, cfg.GetInt("mcts.iterations", 400))
	})
}
