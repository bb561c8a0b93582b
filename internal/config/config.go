// Package config loads the optional present.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/presentation"
)

// FileName is the name of the configuration file.
const FileName = "present.yaml"

// Config represents the optional present.yaml configuration.
type Config struct {
	Project     ProjectConfig     `yaml:"project"`
	Log         LogConfig         `yaml:"log"`
	Interaction InteractionConfig `yaml:"interaction"`
	Preview     PreviewConfig     `yaml:"preview"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name string `yaml:"name,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// InteractionConfig tunes the interactive dismissal model.
type InteractionConfig struct {
	DecelerationRate   float64      `yaml:"deceleration_rate,omitempty"`
	DismissThreshold   float64      `yaml:"dismiss_threshold,omitempty"`
	InverseResistance  float64      `yaml:"inverse_resistance,omitempty"`
	ScrollTopTolerance float64      `yaml:"scroll_top_tolerance,omitempty"`
	MaxPreheatPasses   int          `yaml:"max_preheat_passes,omitempty"`
	DismissSpring      SpringConfig `yaml:"dismiss_spring,omitempty"`
	SettleSpring       SpringConfig `yaml:"settle_spring,omitempty"`
}

// SpringConfig describes a spring. Response is a Go duration string.
type SpringConfig struct {
	DampingRatio float64 `yaml:"damping_ratio,omitempty"`
	Response     string  `yaml:"response,omitempty"`
}

// PreviewConfig sizes the terminal preview.
type PreviewConfig struct {
	// Width and Height are the simulated screen size in points.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	// FrameRate is the number of animation frames per second.
	FrameRate int `yaml:"frame_rate,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	ModulePath  string
	ProjectName string
	LogLevel    slog.Level

	tuning  presentation.Tuning
	preview PreviewConfig
}

// LoadOptional reads present.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads present.yaml (if present) and resolves defaults. The
// project name defaults to the last element of the module path in dir's
// go.mod, or to the directory name when there is no go.mod.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Project.Name)
	if name == "" {
		name = defaultProjectName(modulePath, dir)
	}

	level := slog.LevelInfo
	if s := strings.TrimSpace(cfg.Log.Level); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
	}

	tuning, err := resolveTuning(cfg.Interaction)
	if err != nil {
		return nil, err
	}

	preview, err := resolvePreview(cfg.Preview)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:        dir,
		ModulePath:  modulePath,
		ProjectName: name,
		LogLevel:    level,
		tuning:      tuning,
		preview:     preview,
	}, nil
}

// Tuning returns the resolved interactive model.
func (r *Resolved) Tuning() presentation.Tuning {
	return r.tuning
}

// Preview returns the resolved preview settings.
func (r *Resolved) Preview() PreviewConfig {
	return r.preview
}

// Config returns the resolved values as a Config with every default filled
// in, suitable for writing back out.
func (r *Resolved) Config() Config {
	t := r.tuning
	return Config{
		Project: ProjectConfig{Name: r.ProjectName},
		Log:     LogConfig{Level: strings.ToLower(r.LogLevel.String())},
		Interaction: InteractionConfig{
			DecelerationRate:   t.DecelerationRate,
			DismissThreshold:   t.DismissThreshold,
			InverseResistance:  t.InverseResistance,
			ScrollTopTolerance: t.ScrollTopTolerance,
			MaxPreheatPasses:   t.MaxPreheatPasses,
			DismissSpring:      springConfig(t.DismissSpring),
			SettleSpring:       springConfig(t.SettleSpring),
		},
		Preview: r.preview,
	}
}

// Marshal encodes the resolved configuration as YAML.
func (r *Resolved) Marshal() ([]byte, error) {
	return yaml.Marshal(r.Config())
}

// FindProjectRoot walks up from the current directory to find present.yaml
// or go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found", FileName)
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultProjectName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		prefix, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "present"
	}
	return base
}

func resolveTuning(c InteractionConfig) (presentation.Tuning, error) {
	if c.DecelerationRate != 0 && !(c.DecelerationRate > 0 && c.DecelerationRate < 1) {
		return presentation.Tuning{}, fmt.Errorf("interaction.deceleration_rate must be between 0 and 1 (got %v)", c.DecelerationRate)
	}
	if c.DismissThreshold < 0 {
		return presentation.Tuning{}, fmt.Errorf("interaction.dismiss_threshold cannot be negative (got %v)", c.DismissThreshold)
	}
	if c.MaxPreheatPasses < 0 {
		return presentation.Tuning{}, fmt.Errorf("interaction.max_preheat_passes cannot be negative (got %d)", c.MaxPreheatPasses)
	}

	dismiss, err := resolveSpring("interaction.dismiss_spring", c.DismissSpring)
	if err != nil {
		return presentation.Tuning{}, err
	}
	settle, err := resolveSpring("interaction.settle_spring", c.SettleSpring)
	if err != nil {
		return presentation.Tuning{}, err
	}

	t := presentation.Tuning{
		DecelerationRate:   c.DecelerationRate,
		DismissThreshold:   c.DismissThreshold,
		InverseResistance:  c.InverseResistance,
		ScrollTopTolerance: c.ScrollTopTolerance,
		MaxPreheatPasses:   c.MaxPreheatPasses,
		DismissSpring:      dismiss,
		SettleSpring:       settle,
	}
	return t.Normalized(), nil
}

func resolveSpring(key string, c SpringConfig) (animation.SpringDescription, error) {
	var s animation.SpringDescription
	if c.DampingRatio < 0 {
		return s, fmt.Errorf("%s.damping_ratio cannot be negative (got %v)", key, c.DampingRatio)
	}
	s.DampingRatio = c.DampingRatio
	if c.Response != "" {
		d, err := time.ParseDuration(c.Response)
		if err != nil {
			return s, fmt.Errorf("%s.response: %w", key, err)
		}
		if d <= 0 {
			return s, fmt.Errorf("%s.response must be positive (got %s)", key, c.Response)
		}
		s.Response = d
	}
	if s.Response == 0 {
		// A damping ratio alone keeps the default response.
		s.Response = animation.InteractiveSpring().Response
		if s.DampingRatio == 0 {
			return animation.SpringDescription{}, nil
		}
	}
	return s, nil
}

func springConfig(s animation.SpringDescription) SpringConfig {
	return SpringConfig{DampingRatio: s.DampingRatio, Response: s.Response.String()}
}

func resolvePreview(c PreviewConfig) (PreviewConfig, error) {
	if c.Width < 0 || c.Height < 0 {
		return c, fmt.Errorf("preview size cannot be negative (got %vx%v)", c.Width, c.Height)
	}
	if c.Width == 0 {
		c.Width = 390
	}
	if c.Height == 0 {
		c.Height = 844
	}
	if c.FrameRate <= 0 {
		c.FrameRate = 30
	}
	return c, nil
}
