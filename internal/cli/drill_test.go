package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/drillchart/internal/cli"
)

func TestDrill_Table(t *testing.T) {
	setupCLITest(t)
	chartPath := writeThingsChart(t)

	out, err := execute(t, "drill", chartPath, "--path", "Animals")
	require.NoError(t, err)

	assert.Contains(t, out, "Level 1: Things / Animals")
	assert.Contains(t, out, "Cats")
	assert.Contains(t, out, "4.00")
	assert.Contains(t, out, "cats")
	assert.Contains(t, out, "2 points across 1 series")
}

func TestDrill_NoPathPrintsRoot(t *testing.T) {
	setupCLITest(t)
	chartPath := writeThingsChart(t)

	out, err := execute(t, "drill", chartPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Level 0: Things")
	assert.Contains(t, out, "3 points across 1 series")
}

func TestDrill_JSON(t *testing.T) {
	setupCLITest(t)
	chartPath := writeThingsChart(t)

	out, err := execute(t, "drill", chartPath, "--path", "Animals", "--output", "json")
	require.NoError(t, err)

	var view cli.LevelView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, 1, view.Level)
	assert.Equal(t, []string{"Things", "Animals"}, view.Trail)
	require.Len(t, view.Series, 1)
	assert.Equal(t, "Animals", view.Series[0].Name)
	require.Len(t, view.Series[0].Points, 2)
	assert.Equal(t, "Cats", view.Series[0].Points[0].Name)
	require.NotNil(t, view.Series[0].Points[0].Value)
	assert.InDelta(t, 4.0, *view.Series[0].Points[0].Value, 1e-9)
	assert.Equal(t, "cats", view.Series[0].Points[0].Drilldown)
	assert.Empty(t, view.Series[0].Points[1].Drilldown)
}

func TestDrill_LoadsTargetFromDirectory(t *testing.T) {
	setupCLITest(t)
	chartPath := writeThingsChart(t)

	out, err := execute(t, "drill", chartPath, "--path", "Fruits")
	require.NoError(t, err)
	assert.Contains(t, out, "Things / Fruits")
	assert.Contains(t, out, "Apples")
	assert.Contains(t, out, "Pears")
}

func TestDrill_Up(t *testing.T) {
	setupCLITest(t)
	chartPath := writeThingsChart(t)

	out, err := execute(t, "drill", chartPath, "--path", "Animals", "--up", "1", "--output", "json")
	require.NoError(t, err)

	var view cli.LevelView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, 0, view.Level)
	require.Len(t, view.Series, 1)
	assert.Equal(t, "Things", view.Series[0].Name)
	assert.Len(t, view.Series[0].Points, 3)
}

func TestDrill_Category(t *testing.T) {
	setupCLITest(t)
	chartPath := writeThingsChart(t)

	out, err := execute(t, "drill", chartPath, "--path", "Animals", "--category", "--output", "json")
	require.NoError(t, err)

	var view cli.LevelView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, 1, view.Level)
	require.Len(t, view.Series, 1)
	assert.Equal(t, "Animals", view.Series[0].Name)
}

func TestDrill_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unknown point", path: "Plants"},
		{name: "point without drilldown", path: "Cars"},
		{name: "target missing everywhere", path: "Animals/Cats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			chartPath := writeThingsChart(t)

			_, err := execute(t, "drill", chartPath, "--path", tt.path)
			require.Error(t, err)
			assert.Equal(t, cli.ExitCodeNotFound, cli.ExitCode(err))
		})
	}
}

func TestDrill_InvalidFlags(t *testing.T) {
	setupCLITest(t)
	chartPath := writeThingsChart(t)

	_, err := execute(t, "drill", chartPath, "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")

	_, err = execute(t, "drill", chartPath, "--up", "-1")
	require.Error(t, err)

	_, err = execute(t, "drill", "/does/not/exist.yaml")
	require.Error(t, err)
	assert.Equal(t, 1, cli.ExitCode(err))
}

func TestView_Plain(t *testing.T) {
	setupCLITest(t)
	chartPath := writeThingsChart(t)

	out, err := execute(t, "view", chartPath, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Level 0: Things")
	assert.Contains(t, out, "Animals")
	assert.Contains(t, out, "Fruits")
}
