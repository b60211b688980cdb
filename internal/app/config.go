package app

import (
	"fmt"

	"github.com/oplcutils/gluegen/internal/config"
)

// Config holds everything one generator invocation needs. Paths and tuning
// fields left at their zero value fall back to the settings file (if any)
// and then to the built-in defaults.
type Config struct {
	// InputPath and OutputPath override the settings file when non-empty.
	InputPath  string
	OutputPath string

	// ConfigPath optionally names an HCL settings file, or a directory
	// containing one.
	ConfigPath string

	// BufferSize overrides the runtime buffer capacity when positive.
	BufferSize int
	// OnSlotCollision and OnMinorOverflow override the diagnostic
	// policies when non-empty.
	OnSlotCollision config.Policy
	OnMinorOverflow config.Policy

	LogFormat string
	LogLevel  string

	// Dump prints the aggregated declaration list and boolean groups to
	// the log writer before emitting.
	Dump bool
}

// NewConfig validates the parts of a Config that do not depend on the
// merged settings model.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.OnSlotCollision != "" {
		if err := cfg.OnSlotCollision.Validate(); err != nil {
			return nil, fmt.Errorf("on_slot_collision: %w", err)
		}
	}
	if cfg.OnMinorOverflow != "" {
		if err := cfg.OnMinorOverflow.Validate(); err != nil {
			return nil, fmt.Errorf("on_minor_overflow: %w", err)
		}
	}
	return &cfg, nil
}
