// Package config loads drillchart settings and chart definitions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/drillchart/internal/drilldown"
	"github.com/rshade/drillchart/internal/loader"
)

// Environment overrides applied on top of the config file.
const (
	EnvHome      = "DRILLCHART_HOME"
	EnvLogLevel  = "DRILLCHART_LOG_LEVEL"
	EnvProject   = "DRILLCHART_PROJECT_DIR"
	EnvAnimation = "DRILLCHART_ANIMATION"
)

// Output formats accepted by commands that print navigation state.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const configFileName = "config.yaml"

// Config is the drillchart configuration.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Drilldown DrilldownConfig `yaml:"drilldown"`
	Cache     CacheConfig     `yaml:"cache"`

	configPath string
}

// OutputConfig controls command output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// BreadcrumbsConfig controls the breadcrumb trail.
type BreadcrumbsConfig struct {
	Separator    string `yaml:"separator"`
	ShowFullPath *bool  `yaml:"show_full_path,omitempty"`
}

// DrilldownConfig holds navigator defaults. Chart definitions may override
// any field.
type DrilldownConfig struct {
	AllowPointDrilldown *bool             `yaml:"allow_point_drilldown,omitempty"`
	Animation           string            `yaml:"animation,omitempty"`
	MapZooming          *bool             `yaml:"map_zooming,omitempty"`
	Breadcrumbs         BreadcrumbsConfig `yaml:"breadcrumbs"`

	// TargetsDir holds drill targets that are loaded on demand.
	TargetsDir string `yaml:"targets_dir,omitempty"`
	// Latency delays on-demand loads, to make asynchronous drills visible.
	Latency string `yaml:"latency,omitempty"`
}

// CacheConfig controls the on-demand target cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	Directory  string `yaml:"directory,omitempty"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	showFull := true
	return &Config{
		Output:  OutputConfig{DefaultFormat: FormatTable},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Drilldown: DrilldownConfig{
			Animation:   drilldown.DefaultAnimation.String(),
			Breadcrumbs: BreadcrumbsConfig{Separator: "/", ShowFullPath: &showFull},
		},
		Cache: CacheConfig{Enabled: true, TTLSeconds: loader.DefaultTTLSeconds},
	}
}

// New returns the configuration from $DRILLCHART_HOME/config.yaml layered on
// the defaults, with environment overrides applied. A missing or unreadable
// file leaves the defaults in place.
func New() *Config {
	cfg := Default()
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		if _, statErr := os.Stat(cfg.configPath); statErr == nil {
			_ = cfg.Load(cfg.configPath)
		}
	}
	cfg.applyEnvOverrides()
	return cfg
}

// Load reads path over the current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.configPath = path
	return nil
}

// Save writes the configuration to its path, creating the directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return err
		}
		c.configPath = filepath.Join(dir, configFileName)
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Path returns the file the configuration was loaded from or saves to.
func (c *Config) Path() string { return c.configPath }

// SetPath sets the file Save writes to.
func (c *Config) SetPath(path string) { c.configPath = path }

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains([]string{FormatTable, FormatJSON}, c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format: unsupported format %q", c.Output.DefaultFormat))
	}
	if _, err := c.Drilldown.NavigatorOptions(); err != nil {
		errs = append(errs, err)
	}
	if c.Cache.Enabled && (c.Cache.TTLSeconds < loader.MinTTLSeconds || c.Cache.TTLSeconds > loader.MaxTTLSeconds) {
		errs = append(errs, fmt.Errorf("cache.ttl_seconds: %w: got %d", loader.ErrInvalidTTL, c.Cache.TTLSeconds))
	}
	return errors.Join(errs...)
}

// NavigatorOptions converts the settings into navigator options without
// drill targets.
func (d DrilldownConfig) NavigatorOptions() (drilldown.Options, error) {
	opts := drilldown.DefaultOptions()
	if d.AllowPointDrilldown != nil {
		opts.AllowPointDrilldown = *d.AllowPointDrilldown
	}
	if d.Animation != "" {
		anim, err := time.ParseDuration(d.Animation)
		if err != nil || anim < 0 {
			return opts, fmt.Errorf("drilldown.animation: invalid duration %q", d.Animation)
		}
		opts.Animation = anim
	}
	opts.MapZooming = d.MapZooming
	if d.Breadcrumbs.Separator != "" {
		opts.Breadcrumbs.Separator = d.Breadcrumbs.Separator
	}
	if d.Breadcrumbs.ShowFullPath != nil {
		opts.Breadcrumbs.ShowFullPath = *d.Breadcrumbs.ShowFullPath
	}
	if _, err := d.LatencyDuration(); err != nil {
		return opts, err
	}
	return opts, nil
}

// LatencyDuration parses Latency; empty means none.
func (d DrilldownConfig) LatencyDuration() (time.Duration, error) {
	if d.Latency == "" {
		return 0, nil
	}
	lat, err := time.ParseDuration(d.Latency)
	if err != nil || lat < 0 {
		return 0, fmt.Errorf("drilldown.latency: invalid duration %q", d.Latency)
	}
	return lat, nil
}

// Overlay returns d with every field set in o replacing its counterpart.
func (d DrilldownConfig) Overlay(o DrilldownConfig) DrilldownConfig {
	if o.AllowPointDrilldown != nil {
		d.AllowPointDrilldown = o.AllowPointDrilldown
	}
	if o.Animation != "" {
		d.Animation = o.Animation
	}
	if o.MapZooming != nil {
		d.MapZooming = o.MapZooming
	}
	if o.Breadcrumbs.Separator != "" {
		d.Breadcrumbs.Separator = o.Breadcrumbs.Separator
	}
	if o.Breadcrumbs.ShowFullPath != nil {
		d.Breadcrumbs.ShowFullPath = o.Breadcrumbs.ShowFullPath
	}
	if o.TargetsDir != "" {
		d.TargetsDir = o.TargetsDir
	}
	if o.Latency != "" {
		d.Latency = o.Latency
	}
	return d
}

func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
	c.Cache.Enabled = loader.CacheEnabledFromEnv(c.Cache.Enabled)
	c.Cache.TTLSeconds = loader.TTLFromEnv(c.Cache.TTLSeconds)
	c.Cache.Directory = loader.CacheDirFromEnv(c.Cache.Directory)
	if v := os.Getenv(EnvAnimation); v != "" {
		if _, err := time.ParseDuration(v); err == nil {
			c.Drilldown.Animation = v
		} else if ms, atoiErr := strconv.Atoi(v); atoiErr == nil {
			c.Drilldown.Animation = (time.Duration(ms) * time.Millisecond).String()
		}
	}
}
