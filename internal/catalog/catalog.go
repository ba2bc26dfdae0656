// Package catalog holds the fixed option lists offered by the proposal form:
// services, staff roles, and the labelled complexity and hours levels.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Level is a numbered choice with a display label.
type Level struct {
	Value int    `yaml:"value"`
	Label string `yaml:"label"`
	Guide string `yaml:"guide,omitempty"`
}

type Catalog struct {
	Services   []string `yaml:"services"`
	Roles      []string `yaml:"roles"`
	Complexity []Level  `yaml:"complexity"`
	Hours      []Level  `yaml:"hours"`

	services map[string]bool
	roles    map[string]bool
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded catalog. It panics if the embedded file is
// malformed, which only a broken build can cause.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(embedded)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog invalid: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load parses and validates a YAML catalog.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if errs := c.validate(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}
	c.services = toSet(c.Services)
	c.roles = toSet(c.Roles)
	return &c, nil
}

func (c *Catalog) validate() []error {
	var errs []error
	if len(c.Services) == 0 {
		errs = append(errs, fmt.Errorf("services is empty"))
	}
	if len(c.Roles) == 0 {
		errs = append(errs, fmt.Errorf("roles is empty"))
	}
	errs = append(errs, duplicates("services", c.Services)...)
	errs = append(errs, duplicates("roles", c.Roles)...)
	errs = append(errs, validateLevels("complexity", c.Complexity)...)
	errs = append(errs, validateLevels("hours", c.Hours)...)
	return errs
}

// validateLevels requires values numbered 1..n in order with labels.
func validateLevels(name string, levels []Level) []error {
	var errs []error
	if len(levels) == 0 {
		errs = append(errs, fmt.Errorf("%s is empty", name))
	}
	for i, l := range levels {
		if l.Value != i+1 {
			errs = append(errs, fmt.Errorf("%s[%d]: value %d, want %d", name, i, l.Value, i+1))
		}
		if l.Label == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: label is required", name, i))
		}
	}
	return errs
}

func duplicates(name string, values []string) []error {
	var errs []error
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			errs = append(errs, fmt.Errorf("%s: duplicate %q", name, v))
		}
		seen[v] = true
	}
	return errs
}

func toSet(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

func (c *Catalog) HasService(name string) bool { return c.services[name] }
func (c *Catalog) HasRole(name string) bool    { return c.roles[name] }

// ComplexityLabel returns the label for v, or "" if v is not a level.
func (c *Catalog) ComplexityLabel(v int) string { return label(c.Complexity, v) }

// HoursLabel returns the label for v, or "" if v is not a level.
func (c *Catalog) HoursLabel(v int) string { return label(c.Hours, v) }

func label(levels []Level, v int) string {
	if v < 1 || v > len(levels) {
		return ""
	}
	return levels[v-1].Label
}

// HoursGuide renders the hours bucket guide, one "Label: range" line each.
func (c *Catalog) HoursGuide() string {
	var b strings.Builder
	for i, l := range c.Hours {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", l.Label, l.Guide)
	}
	return b.String()
}
