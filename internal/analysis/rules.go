package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Rule is one deterministic pattern in the detection vocabulary: a regex
// mapped to a category, severity, and description. Rules are compiled at
// load time and never mutated afterwards.
type Rule struct {
	Category    string   `json:"category" yaml:"category"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Pattern     string   `json:"pattern" yaml:"pattern"`
	Description string   `json:"description" yaml:"description"`

	re *regexp.Regexp
}

// Compile compiles the rule pattern case-insensitively. A malformed
// pattern fails here, before any line is scanned.
func (r *Rule) Compile() error {
	re, err := regexp.Compile(`(?i)` + r.Pattern)
	if err != nil {
		return fmt.Errorf("compiling rule pattern %q: %w", r.Pattern, err)
	}
	r.re = re
	return nil
}

// mustRule builds a compiled rule for the built-in catalog.
func mustRule(category string, severity Severity, pattern, description string) Rule {
	r := Rule{
		Category:    category,
		Severity:    severity,
		Pattern:     pattern,
		Description: description,
	}
	if err := r.Compile(); err != nil {
		panic(err)
	}
	return r
}

// LoadRulesFile loads custom rules from a JSON or YAML file.
//
// The file holds an ordered list of {category, severity, pattern,
// description} records. A missing file, a record without a pattern, or a
// pattern that does not compile are all load-time fatal errors. Category,
// severity, and description default to "custom", medium, and
// "Custom rule match".
func LoadRulesFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("custom rules file not found: %s", path)
		}
		return nil, fmt.Errorf("reading custom rules file: %w", err)
	}

	var rules []Rule
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rules); err != nil {
			return nil, fmt.Errorf("parsing custom rules file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &rules); err != nil {
			return nil, fmt.Errorf("parsing custom rules file: %w", err)
		}
	}

	for i := range rules {
		if rules[i].Pattern == "" {
			return nil, fmt.Errorf("custom rule %d in %s has no pattern", i+1, path)
		}
		if rules[i].Category == "" {
			rules[i].Category = "custom"
		}
		if rules[i].Severity == "" {
			rules[i].Severity = SeverityMedium
		}
		if rules[i].Description == "" {
			rules[i].Description = "Custom rule match"
		}
		if err := rules[i].Compile(); err != nil {
			return nil, err
		}
	}

	return rules, nil
}
