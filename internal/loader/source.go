package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/drillchart/internal/chart"
)

// ErrTargetNotFound is returned when a source has no series for an id.
var ErrTargetNotFound = errors.New("drill target not found")

// Source resolves a drill target id to series options.
type Source interface {
	Load(ctx context.Context, id string) (chart.SeriesOptions, error)
}

// DirSource reads targets from <dir>/<id>.yaml.
type DirSource struct {
	Dir string
}

// Load reads and parses the target file for id. The series ID defaults to
// id when the file leaves it empty.
func (d DirSource) Load(ctx context.Context, id string) (chart.SeriesOptions, error) {
	if err := ctx.Err(); err != nil {
		return chart.SeriesOptions{}, err
	}
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return chart.SeriesOptions{}, fmt.Errorf("invalid target id %q: %w", id, ErrTargetNotFound)
	}

	path := filepath.Join(d.Dir, id+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return chart.SeriesOptions{}, fmt.Errorf("target %q: %w", id, ErrTargetNotFound)
		}
		return chart.SeriesOptions{}, fmt.Errorf("reading target %q: %w", id, err)
	}

	var opts chart.SeriesOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return chart.SeriesOptions{}, fmt.Errorf("parsing target %s: %w", path, err)
	}
	if opts.ID == "" {
		opts.ID = id
	}
	return opts, nil
}

// MapSource serves targets from memory.
type MapSource map[string]chart.SeriesOptions

// Load returns the target for id.
func (m MapSource) Load(ctx context.Context, id string) (chart.SeriesOptions, error) {
	if err := ctx.Err(); err != nil {
		return chart.SeriesOptions{}, err
	}
	opts, ok := m[id]
	if !ok {
		return chart.SeriesOptions{}, fmt.Errorf("target %q: %w", id, ErrTargetNotFound)
	}
	return opts.Clone(), nil
}
