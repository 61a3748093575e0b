// Package cliconfig assembles the run configuration for vinascreen from
// defaults, an optional TOML file, VINASCREEN_* environment variables,
// command-line flags, and interactive grid prompts, in ascending precedence
// (flags win; prompts only fill grid parameters nothing else resolved).
package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/moldock/vinascreen/internal/domain"
)

// Defaults for the fixed filesystem layout, relative to the working directory.
const (
	DefaultReceptor   = "receptor.pdbqt"
	DefaultLigandDir  = "./ligands"
	DefaultOutputDir  = "./docked_ligands"
	DefaultScores     = "docking_scores.csv"
	DefaultTranscript = "docking_console_output.txt"
	DefaultAuditLog   = "debug_log.txt"

	// DefaultExhaustiveness is the tool's fixed search-effort parameter.
	DefaultExhaustiveness = 8
)

// Config holds the full run configuration.
type Config struct {
	Receptor       string
	LigandDir      string
	OutputDir      string
	ScoresPath     string
	TranscriptPath string
	AuditLogPath   string

	VinaBin        string
	Exhaustiveness int

	// ToolTimeout bounds one tool invocation. Zero disables the bound,
	// preserving the historical behavior where a hung tool blocks the batch.
	ToolTimeout time.Duration

	// Watch keeps the run alive after the initial sweep, docking ligand
	// files as they appear in the ligand directory.
	Watch bool

	Grid domain.GridBox

	// GridResolved tracks which grid parameters were supplied by flag, env,
	// or file. Unresolved parameters are prompted for interactively.
	GridResolved map[string]bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Receptor:       DefaultReceptor,
		LigandDir:      DefaultLigandDir,
		OutputDir:      DefaultOutputDir,
		ScoresPath:     DefaultScores,
		TranscriptPath: DefaultTranscript,
		AuditLogPath:   DefaultAuditLog,
		VinaBin:        "vina",
		Exhaustiveness: DefaultExhaustiveness,
		GridResolved:   make(map[string]bool),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Receptor == "" {
		return fmt.Errorf("%w: receptor is required", domain.ErrInvalidConfig)
	}
	if c.LigandDir == "" {
		return fmt.Errorf("%w: ligand-dir is required", domain.ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output-dir is required", domain.ErrInvalidConfig)
	}
	if c.ScoresPath == "" {
		return fmt.Errorf("%w: scores is required", domain.ErrInvalidConfig)
	}
	if c.VinaBin == "" {
		return fmt.Errorf("%w: vina-bin is required", domain.ErrInvalidConfig)
	}
	if c.Exhaustiveness <= 0 {
		return fmt.Errorf("%w: exhaustiveness must be positive", domain.ErrInvalidConfig)
	}
	if c.ToolTimeout < 0 {
		return fmt.Errorf("%w: tool-timeout must not be negative", domain.ErrInvalidConfig)
	}
	return c.Grid.Validate()
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not
// changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// setGrid resolves one grid parameter unless a flag already did. Zero is a
// legitimate value here, so presence, not magnitude, decides. Like the
// scalar setters, later stages overwrite earlier ones (env over file);
// GridResolved only records that no prompt is needed.
func (s *configSetter) setGrid(cfg *Config, name string, value *float64) error {
	if value == nil || s.changed[gridFlagName(name)] {
		return nil
	}
	if err := cfg.Grid.Set(name, *value); err != nil {
		return err
	}
	cfg.GridResolved[name] = true
	return nil
}

// setGridFromString is setGrid for environment variables.
func (s *configSetter) setGridFromString(cfg *Config, name, value string) error {
	if value == "" {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", gridFlagName(name), err)
	}
	return s.setGrid(cfg, name, &v)
}

// gridFlagName maps a grid parameter name to its flag name,
// e.g. "center_x" -> "center-x".
func gridFlagName(param string) string {
	out := []byte(param)
	for i, c := range out {
		if c == '_' {
			out[i] = '-'
		}
	}
	return string(out)
}
