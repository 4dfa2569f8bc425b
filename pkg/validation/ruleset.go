package validation

import (
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

// RuleSet maps field names to the rules declared for them in a rule-set
// document.
type RuleSet map[string][]Rule

// Rules returns the rules declared for field, or nil if the document does
// not mention it.
func (rs RuleSet) Rules(field string) []Rule {
	return rs[field]
}

// Engine builds an Engine preloaded with the rules declared for field.
// Extra options are applied after the rules, so they may override anything.
func (rs RuleSet) Engine(field string, opts ...Option) *Engine {
	all := append([]Option{WithRules(rs[field]...)}, opts...)
	return NewEngine(all...)
}

type ruleSpec struct {
	Rule    string   `yaml:"rule"`
	Message string   `yaml:"message"`
	Min     int      `yaml:"min"`
	Max     int      `yaml:"max"`
	Pattern string   `yaml:"pattern"`
	Values  []string `yaml:"values"`
}

type ruleSetDoc struct {
	Fields map[string][]ruleSpec `yaml:"fields"`
}

// ParseRuleSet reads a YAML rule-set document mapping field names to
// built-in rule declarations:
//
//	fields:
//	  email:
//	    - rule: nonempty
//	    - rule: email
//	      message: enter a valid email address
//	  username:
//	    - rule: minlen
//	      min: 3
//	    - rule: match
//	      pattern: "^[a-z0-9_]+$"
//
// Recognized rule names: nonempty, minlen, maxlen, lenbetween, minrunes,
// oneof, match, numeric, alphanumeric, email, url, uuid. An unrecognized
// name yields ErrUnknownRule; a malformed match pattern yields a parse
// error rather than a panic because the pattern arrives as data.
func ParseRuleSet(data []byte) (RuleSet, error) {
	var doc ruleSetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("validation: failed to parse rule set document: %w", err)
	}

	rs := make(RuleSet, len(doc.Fields))
	for field, specs := range doc.Fields {
		rules := make([]Rule, 0, len(specs))
		for _, spec := range specs {
			rule, err := buildRule(spec)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field, err)
			}
			rules = append(rules, rule)
		}
		rs[field] = rules
	}
	return rs, nil
}

// LoadRuleSet reads a YAML rule-set document from r. See ParseRuleSet for
// the document format.
func LoadRuleSet(r io.Reader) (RuleSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("validation: failed to read rule set document: %w", err)
	}
	return ParseRuleSet(data)
}

func buildRule(spec ruleSpec) (Rule, error) {
	msg := spec.Message

	switch spec.Rule {
	case "nonempty":
		return NonEmpty(msg), nil
	case "minlen":
		return MinLen(spec.Min, msg), nil
	case "maxlen":
		return MaxLen(spec.Max, msg), nil
	case "lenbetween":
		return LenBetween(spec.Min, spec.Max, msg), nil
	case "minrunes":
		return MinRunes(spec.Min, msg), nil
	case "oneof":
		return OneOf(spec.Values, msg), nil
	case "match":
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return Rule{}, fmt.Errorf("rule %q: %w", spec.Rule, err)
		}
		return Match(re, msg), nil
	case "numeric":
		return Numeric(msg), nil
	case "alphanumeric":
		return Alphanumeric(msg), nil
	case "email":
		return Email(msg), nil
	case "url":
		return URL(msg), nil
	case "uuid":
		return UUIDString(msg), nil
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, spec.Rule)
	}
}
