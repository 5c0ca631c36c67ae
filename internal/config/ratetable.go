// Package config loads the external data the engine consumes as plain
// data: the jurisdiction rate table (spec.md §6) and CLI-level defaults.
// It never derives rates itself.
package config

import (
	"fmt"
	"os"

	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"gopkg.in/yaml.v3"
)

// RateTableLoader loads a RateTable from a YAML file, the same shape as
// the teacher's InputParser.LoadFromFile (internal/config/input.go):
// read, unmarshal, wrap errors with context.
type RateTableLoader struct{}

// NewRateTableLoader creates a new loader.
func NewRateTableLoader() *RateTableLoader {
	return &RateTableLoader{}
}

// LoadFromFile reads and parses a rate table YAML file.
func (l *RateTableLoader) LoadFromFile(filename string) (*domain.RateTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate table %s: %w", filename, err)
	}

	var rt domain.RateTable
	if err := yaml.Unmarshal(data, &rt); err != nil {
		return nil, fmt.Errorf("failed to parse rate table YAML: %w", err)
	}
	return &rt, nil
}

// LoadHouseholdFromFile reads and parses a household-snapshot YAML
// fixture, mirroring LoadFromFile's shape for the engine's own primary
// input rather than the rate-table side channel.
func (l *RateTableLoader) LoadHouseholdFromFile(filename string) (*domain.Household, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read household file %s: %w", filename, err)
	}

	var h domain.Household
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("failed to parse household YAML: %w", err)
	}
	return &h, nil
}
