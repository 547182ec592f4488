// Package batch evaluates named conversion scenarios in parallel and reports
// per-case outcomes.
package batch

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case describes a single conversion check: a rational literal, the modulus
// and digit budget to use, and the expected outcome. When no expectation is
// set, the case passes iff the value round-trips to itself exactly.
type Case struct {
	Name      string `yaml:"name"`
	Value     string `yaml:"value"`
	Prime     int64  `yaml:"prime"`
	Precision int    `yaml:"precision"`

	// WantValuation, when set, must match the extracted valuation.
	WantValuation *int `yaml:"wantValuation"`
	// WantRational, when set, replaces the round-trip expectation.
	WantRational string `yaml:"wantRational"`
	// WantError, when set, names the errs.Code the case must fail with.
	WantError string `yaml:"wantError"`
}

// Scenario is a named collection of cases with shared defaults.
type Scenario struct {
	Name             string `yaml:"name"`
	DefaultPrime     int64  `yaml:"defaultPrime"`
	DefaultPrecision int    `yaml:"defaultPrecision"`
	Cases            []Case `yaml:"cases"`
}

// LoadScenario reads and validates a yaml scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate rejects scenarios with unnamed or valueless cases.
func (sc *Scenario) Validate() error {
	if len(sc.Cases) == 0 {
		return fmt.Errorf("no cases defined")
	}
	seen := make(map[string]struct{}, len(sc.Cases))
	for i, c := range sc.Cases {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("case %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate case name %q", name)
		}
		seen[name] = struct{}{}
		if strings.TrimSpace(c.Value) == "" && c.WantError == "" {
			return fmt.Errorf("case %q has no value", name)
		}
	}
	return nil
}

// CaseNames lists case names in declaration order.
func (sc *Scenario) CaseNames() []string {
	names := make([]string, len(sc.Cases))
	for i, c := range sc.Cases {
		names[i] = c.Name
	}
	return names
}
