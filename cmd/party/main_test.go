package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealMain_InvalidPlayersReturnsExitCode(t *testing.T) {
	// Not parallel because it replaces os.Args and the global flag set
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
game:
  mode: tag
  active_players: 2
sound:
  enabled: false
log:
  level: info
  dir: `+logDir+`
`), 0o644))

	oldArgs, oldFlags := os.Args, flag.CommandLine
	t.Cleanup(func() { os.Args, flag.CommandLine = oldArgs, oldFlags })
	os.Args = []string{"party", "-config", cfgPath, "-players", "7"}
	flag.CommandLine = flag.NewFlagSet("party", flag.ContinueOnError)

	assert.Equal(t, 1, realMain())

	data, err := os.ReadFile(filepath.Join(logDir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "运行失败")
}
