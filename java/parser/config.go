package parser

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Feature is a language construct whose recognition depends on the
// configured language level.
type Feature int

const (
	FeatureSwitchExpressions Feature = iota
	FeatureRecords
	FeatureSealedClasses
	FeaturePatternsInSwitch
	FeatureRecordPatterns
	FeatureUnnamedVariables
)

var featureNames = map[Feature]string{
	FeatureSwitchExpressions: "switch expressions",
	FeatureRecords:           "records",
	FeatureSealedClasses:     "sealed classes",
	FeaturePatternsInSwitch:  "patterns in switch",
	FeatureRecordPatterns:    "record patterns",
	FeatureUnnamedVariables:  "unnamed variables",
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return "unknown feature"
}

var featureConstraints = map[Feature]*semver.Constraints{
	FeatureSwitchExpressions: mustConstraint(">= 14"),
	FeatureRecords:           mustConstraint(">= 16"),
	FeatureSealedClasses:     mustConstraint(">= 17"),
	FeaturePatternsInSwitch:  mustConstraint(">= 21"),
	FeatureRecordPatterns:    mustConstraint(">= 21"),
	FeatureUnnamedVariables:  mustConstraint(">= 22"),
}

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

type Extensions struct {
	// Tuples enables parenthesized tuple expressions such as
	// return (a, b) and return (x: 1, y: 2).
	Tuples bool `yaml:"tuples"`
}

// Config controls which constructs the parser recognizes and how eagerly
// nested code blocks are parsed. A Config is immutable once handed to a
// parser and may be shared between goroutines.
type Config struct {
	LanguageLevel string `yaml:"language_level"`

	// LazyBlocks defers the interior of nested code blocks. When false every
	// block is parsed eagerly.
	LazyBlocks bool `yaml:"lazy_blocks"`

	// DeepCodeBlocks parses statement-level blocks eagerly even when
	// LazyBlocks is set. Member bodies stay lazy.
	DeepCodeBlocks bool `yaml:"deep_code_blocks"`

	Extensions Extensions `yaml:"extensions"`
}

func DefaultConfig() Config {
	return Config{
		LanguageLevel: "21",
		LazyBlocks:    true,
		Extensions:    Extensions{Tuples: true},
	}
}

// ParseConfig reads YAML over the defaults, so missing keys keep their
// default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the language level as a version. Legacy names such as
// "1.8" are normalized to their major release.
func (c Config) Level() (*semver.Version, error) {
	level := c.LanguageLevel
	if level == "" {
		level = DefaultConfig().LanguageLevel
	}
	v, err := semver.NewVersion(level)
	if err != nil {
		return nil, fmt.Errorf("invalid language level %q: %w", c.LanguageLevel, err)
	}
	if v.Major() == 1 && v.Minor() > 0 {
		v = semver.New(v.Minor(), 0, 0, "", "")
	}
	return v, nil
}

// Supports reports whether the language level enables f. An invalid
// level supports nothing beyond the base grammar.
func (c Config) Supports(f Feature) bool {
	v, err := c.Level()
	if err != nil {
		return false
	}
	constraint, ok := featureConstraints[f]
	if !ok {
		return false
	}
	return constraint.Check(v)
}
