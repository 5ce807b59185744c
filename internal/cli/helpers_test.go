package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/drillchart/internal/cli"
	"github.com/rshade/drillchart/internal/config"
)

const thingsChart = `
version: 1.0.0
title: Things
type: column
categories: [[Animals, Fruits, Cars]]
series:
  - id: things
    name: Things
    data:
      - {name: Animals, y: 5, drilldown: animals}
      - {name: Fruits, y: 2, drilldown: fruits}
      - {name: Cars, y: 4}
drilldown:
  animation: 0s
  targets_dir: targets
  series:
    - id: animals
      name: Animals
      data:
        - {name: Cats, y: 4, drilldown: cats}
        - {name: Dogs, y: 2}
`

const fruitsTarget = `
name: Fruits
data:
  - {name: Apples, y: 4}
  - {name: Pears, y: 1}
`

// setupCLITest isolates the home directory, the working directory and the
// environment overrides, and resets global state afterwards.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvProject, "")
	t.Setenv(config.EnvAnimation, "")
	t.Setenv("DRILLCHART_CACHE_ENABLED", "false")
	t.Setenv("DRILLCHART_CACHE_DIR", "")
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
	})
	return home
}

// writeThingsChart writes the chart and its targets directory, returning the
// chart path.
func writeThingsChart(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "targets"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "targets", "fruits.yaml"), []byte(fruitsTarget), 0o600))
	path := filepath.Join(dir, "things.yaml")
	require.NoError(t, os.WriteFile(path, []byte(thingsChart), 0o600))
	return path
}

// execute runs the root command with args and returns the combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
