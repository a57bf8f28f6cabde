package parser

import "testing"

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		wantLevel  uint64
		wantLazy   bool
		wantTuples bool
	}{
		{"empty", "", 21, true, true},
		{"level only", "language_level: \"11\"\n", 11, true, true},
		{"legacy level", "language_level: \"1.8\"\n", 8, true, true},
		{"lazy off", "lazy_blocks: false\n", 21, false, true},
		{"tuples off", "extensions:\n  tuples: false\n", 21, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseConfig: %v", err)
			}
			v, err := cfg.Level()
			if err != nil {
				t.Fatalf("Level: %v", err)
			}
			if v.Major() != tt.wantLevel {
				t.Errorf("level = %d, want %d", v.Major(), tt.wantLevel)
			}
			if cfg.LazyBlocks != tt.wantLazy {
				t.Errorf("LazyBlocks = %v, want %v", cfg.LazyBlocks, tt.wantLazy)
			}
			if cfg.Extensions.Tuples != tt.wantTuples {
				t.Errorf("Tuples = %v, want %v", cfg.Extensions.Tuples, tt.wantTuples)
			}
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []string{
		"language_level: \"java\"\n",
		"lazy_blocks: [\n",
	}
	for _, input := range tests {
		if _, err := ParseConfig([]byte(input)); err == nil {
			t.Errorf("ParseConfig(%q) succeeded, want error", input)
		}
	}
}

func TestConfigSupports(t *testing.T) {
	tests := []struct {
		level   string
		feature Feature
		want    bool
	}{
		{"8", FeatureSwitchExpressions, false},
		{"11", FeatureSwitchExpressions, false},
		{"14", FeatureSwitchExpressions, true},
		{"16", FeatureRecords, true},
		{"15", FeatureRecords, false},
		{"17", FeatureSealedClasses, true},
		{"17", FeaturePatternsInSwitch, false},
		{"21", FeaturePatternsInSwitch, true},
		{"21", FeatureRecordPatterns, true},
		{"21", FeatureUnnamedVariables, false},
		{"22", FeatureUnnamedVariables, true},
		{"bogus", FeatureSwitchExpressions, false},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.feature.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LanguageLevel = tt.level
			if got := cfg.Supports(tt.feature); got != tt.want {
				t.Errorf("Supports(%v) at %s = %v, want %v", tt.feature, tt.level, got, tt.want)
			}
		})
	}
}
