package guardcheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/guardcheck/pkg/rule"
)

// RulesTable holds default rules per parameter type category for SetupAll.
// A nil category falls back to None.
//
// Tables can be written in YAML:
//
//	strings: [not_empty, not_empty_or_whitespace]
//	values: [none]
//	collections: [not_null, not_empty]
//	interfaces: [not_null]
//	others: [not_null]
//
// A numeric not_equal_to sentinel decodes as int or float64 and fits any
// numeric parameter that can hold it exactly.
type RulesTable struct {
	Strings     []rule.Rule `yaml:"strings"`
	Collections []rule.Rule `yaml:"collections"`
	Values      []rule.Rule `yaml:"values"`
	Interfaces  []rule.Rule `yaml:"interfaces"`
	Others      []rule.Rule `yaml:"others"`
}

// DefaultRulesTable returns the rules used by SetupDefaults when no profile
// is configured. A string has no absent value distinct from "", so strings
// are checked for emptiness instead of nil.
func DefaultRulesTable() RulesTable {
	return RulesTable{
		Strings:     []rule.Rule{rule.NotEmpty(), rule.NotEmptyOrWhitespace()},
		Collections: []rule.Rule{rule.NotNull()},
		Values:      []rule.Rule{rule.None()},
		Interfaces:  []rule.Rule{rule.NotNull()},
		Others:      []rule.Rule{rule.NotNull()},
	}
}

// For returns a copy of the rules for the category of t.
func (t RulesTable) For(typ reflect.Type) []rule.Rule {
	var rules []rule.Rule
	switch rule.CategoryOf(typ) {
	case rule.CategoryString:
		rules = t.Strings
	case rule.CategoryCollection:
		rules = t.Collections
	case rule.CategoryValue:
		rules = t.Values
	case rule.CategoryInterface:
		rules = t.Interfaces
	default:
		rules = t.Others
	}
	if len(rules) == 0 {
		return []rule.Rule{rule.None()}
	}
	return slices.Clone(rules)
}

// ParseRulesTable decodes a YAML rules table. Unknown keys are rejected.
func ParseRulesTable(data []byte) (RulesTable, error) {
	var table RulesTable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return RulesTable{}, fmt.Errorf("parse rules table: %w", err)
	}
	return table, nil
}

// LoadRulesTable reads and decodes a YAML rules table from path.
func LoadRulesTable(path string) (RulesTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RulesTable{}, fmt.Errorf("load rules table: %w", err)
	}
	return ParseRulesTable(data)
}
