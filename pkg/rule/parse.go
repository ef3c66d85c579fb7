package rule

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var byName = map[string]func() Rule{
	"none":                    None,
	"not_null":                NotNull,
	"not_empty":               NotEmpty,
	"not_empty_or_whitespace": NotEmptyOrWhitespace,
	"skip":                    Skip,
}

// Parse returns the rule registered under name. Names are snake_case and
// case-insensitive: none, not_null, not_empty, not_empty_or_whitespace, skip.
// NotEqualTo carries a value and cannot be parsed from a name alone.
func Parse(name string) (Rule, error) {
	ctor, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return ctor(), nil
}

// UnmarshalYAML accepts either a rule name scalar or a single-key mapping
// {not_equal_to: <value>}.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := Parse(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*r = parsed
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 || node.Content[0].Value != "not_equal_to" {
			return fmt.Errorf("line %d: %w: expected a mapping with the single key not_equal_to", node.Line, ErrUnknownRule)
		}
		var v any
		if err := node.Content[1].Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*r = NotEqualTo(v)
		return nil
	}
	return fmt.Errorf("line %d: %w: unexpected YAML node", node.Line, ErrUnknownRule)
}
