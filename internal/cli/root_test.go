package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/drillchart/internal/cli"
)

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd("1.2.3")

	assert.Equal(t, "drillchart", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("project-dir"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"view", "drill", "scatter", "cache", "config"})
}

func TestRootCmd_Help(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "drill")
	assert.Contains(t, out, "scatter")
}

func TestRootCmd_Version(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}

func TestExitCode(t *testing.T) {
	notFound := &cli.ExitError{ExitCode: cli.ExitCodeNotFound, Reason: "no point named \"x\""}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "exit error", err: notFound, want: cli.ExitCodeNotFound},
		{name: "wrapped exit error", err: fmt.Errorf("drill: %w", notFound), want: cli.ExitCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
	assert.Contains(t, notFound.Error(), "exit code 2")
}
