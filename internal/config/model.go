package config

import "fmt"

// Policy selects how a tolerated-by-default diagnostic is treated.
type Policy string

const (
	// PolicyWarn logs the condition and keeps generating.
	PolicyWarn Policy = "warn"
	// PolicyError aborts the run on the first occurrence.
	PolicyError Policy = "error"
)

// Validate reports whether p names a known policy.
func (p Policy) Validate() error {
	switch p {
	case PolicyWarn, PolicyError:
		return nil
	}
	return fmt.Errorf("invalid policy %q: must be 'warn' or 'error'", string(p))
}

// Defaults matching the original generator's behavior.
const (
	DefaultInputPath  = "LOCATED_VARIABLES.h"
	DefaultOutputPath = "glueVars.cpp"

	// DefaultBufferSize is the capacity of each typed runtime buffer
	// declared in the generated header.
	DefaultBufferSize = 1024
)

// Model is the generator configuration after all sources (defaults, the
// optional settings file, CLI overrides) have been merged.
type Model struct {
	InputPath  string
	OutputPath string

	// BufferSize bounds the major index space of every runtime buffer.
	BufferSize int

	// OnSlotCollision governs two declarations claiming the same boolean
	// group slot. The original silently kept the later one.
	OnSlotCollision Policy
	// OnMinorOverflow governs a bit address with a minor index of 8 or
	// more. The original warned and kept going.
	OnMinorOverflow Policy
}

// Default returns the configuration the original generator hard-coded.
func Default() Model {
	return Model{
		InputPath:       DefaultInputPath,
		OutputPath:      DefaultOutputPath,
		BufferSize:      DefaultBufferSize,
		OnSlotCollision: PolicyWarn,
		OnMinorOverflow: PolicyWarn,
	}
}

// Validate checks the merged configuration for consistency.
func (m *Model) Validate() error {
	if m.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if m.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if m.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be positive, got %d", m.BufferSize)
	}
	if err := m.OnSlotCollision.Validate(); err != nil {
		return fmt.Errorf("on_slot_collision: %w", err)
	}
	if err := m.OnMinorOverflow.Validate(); err != nil {
		return fmt.Errorf("on_minor_overflow: %w", err)
	}
	return nil
}
