package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rshade/drillchart/internal/logging"
)

// ProjectDirName is the directory that marks a drillchart project.
const ProjectDirName = ".drillchart"

// resolvedProjectDir holds the project directory resolved at startup.
var (
	resolvedProjectDir   string       //nolint:gochecknoglobals // Set once at startup, read by config loaders
	resolvedProjectDirMu sync.RWMutex //nolint:gochecknoglobals // Protects resolvedProjectDir
)

// SetResolvedProjectDir stores the resolved project directory.
func SetResolvedProjectDir(dir string) {
	resolvedProjectDirMu.Lock()
	defer resolvedProjectDirMu.Unlock()
	resolvedProjectDir = dir
}

// GetResolvedProjectDir returns the stored resolved project directory.
func GetResolvedProjectDir() string {
	resolvedProjectDirMu.RLock()
	defer resolvedProjectDirMu.RUnlock()
	return resolvedProjectDir
}

// ResolveProjectDir determines the project-local .drillchart directory.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. DRILLCHART_PROJECT_DIR env var
//  3. the nearest ancestor of startDir holding a .drillchart directory
//
// Returns an absolute path, or "" if no project was found. The directory is
// never created.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProject); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	root, ok := findProjectRoot(startDir)
	if !ok {
		return ""
	}
	return toAbsProjectDir(ctx, root)
}

// findProjectRoot walks up from dir until it finds a directory containing
// .drillchart.
func findProjectRoot(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		info, statErr := os.Stat(filepath.Join(current, ProjectDirName))
		if statErr == nil && info.IsDir() {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// NewWithProjectDir creates a Config by loading global config then
// shallow-merging project-local config on top. If projectDir is empty,
// behaves identically to New().
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()

	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	cfgCopy := New()
	if err := ShallowMergeYAML(cfgCopy, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global defaults")
		return cfg
	}
	// Env overrides win over the project file too.
	cfgCopy.applyEnvOverrides()
	return cfgCopy
}

// toAbsProjectDir converts dir to an absolute path ending in .drillchart.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == ProjectDirName {
		return abs
	}

	return filepath.Join(abs, ProjectDirName)
}
