// Package config loads netres settings and network scenarios from YAML,
// validates them, and overlays environment or flag overrides through viper.
//
// A Config file is read-only input: nothing in netres writes it back.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownNode indicates a scenario flag that names a node with no edges
	// and no node entry.
	ErrUnknownNode = errors.New("config: scenario references unknown node")
)

// validate is a singleton validator instance.
var validate = validator.New()

// Config is the root document.
type Config struct {
	Failure  Failure  `yaml:"failure"`
	Logging  Logging  `yaml:"logging"`
	Metrics  Metrics  `yaml:"metrics"`
	Scenario Scenario `yaml:"scenario"`
}

// Failure tunes the failure analyzer.
type Failure struct {
	// CascadeThreshold is the reachable fraction below which a node fails.
	CascadeThreshold float64 `yaml:"cascadeThreshold" validate:"gt=0,lte=1"`
	// MaxCascadeRounds bounds propagation on feedback patterns.
	MaxCascadeRounds int `yaml:"maxCascadeRounds" validate:"gte=1,lte=1000"`
	// NominalReliability is the survival probability of a healthy edge.
	NominalReliability float64 `yaml:"nominalReliability" validate:"gt=0,lte=1"`
	// VulnerableReliability is the survival probability of a vulnerable edge.
	VulnerableReliability float64 `yaml:"vulnerableReliability" validate:"gt=0,lte=1"`
	// IsolateFailed makes cascade-failed nodes unusable for routing. When
	// false they only drop out of the reachability count.
	IsolateFailed bool `yaml:"isolateFailed"`
}

// Logging configures the command line logger.
type Logging struct {
	Verbosity int    `yaml:"verbosity" validate:"gte=0,lte=10"`
	Format    string `yaml:"format" validate:"oneof=json text"`
}

// Metrics configures the Prometheus recorder.
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"required_if=Enabled true"`
}

// Default returns the stock settings with an empty scenario.
func Default() Config {
	return Config{
		Failure: Failure{
			CascadeThreshold:      0.3,
			MaxCascadeRounds:      10,
			NominalReliability:    0.95,
			VulnerableReliability: 0.7,
		},
		Logging: Logging{Verbosity: 0, Format: "json"},
		Metrics: Metrics{Enabled: false, Namespace: "netres"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default() and validates the result. Unknown keys
// are rejected so that typos do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks struct tags on every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, formatValidationError(err))
	}

	return nil
}

// Validate checks the failure section on its own, for callers that build
// an analyzer without a full document.
func (f Failure) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, formatValidationError(err))
	}

	return nil
}

// formatValidationError reports the first failing field in a readable form.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%s: field is required", field)
	case "gt":
		return fmt.Errorf("%s: must be greater than %s, got %v", field, e.Param(), e.Value())
	case "gte":
		return fmt.Errorf("%s: must be at least %s, got %v", field, e.Param(), e.Value())
	case "lte":
		return fmt.Errorf("%s: must not exceed %s, got %v", field, e.Param(), e.Value())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %v", field, e.Param(), e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
