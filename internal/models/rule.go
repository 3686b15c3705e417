package models

import (
	"fmt"
	"strings"
)

// Criteria controls how rules in a group combine
type Criteria string

const (
	CriteriaAll Criteria = "ALL"
	CriteriaAny Criteria = "ANY"
)

// ParseCriteria normalizes a stored criteria string; anything unknown is ALL
func ParseCriteria(s string) Criteria {
	if strings.EqualFold(strings.TrimSpace(s), string(CriteriaAny)) {
		return CriteriaAny
	}
	return CriteriaAll
}

// Operator compares a viewer attribute against a rule value
type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "not_equals"
	OperatorContains    Operator = "contains"
	OperatorNotContains Operator = "not_contains"
)

// Valid reports whether the operator is one of the supported comparisons
func (o Operator) Valid() bool {
	switch o {
	case OperatorEquals, OperatorNotEquals, OperatorContains, OperatorNotContains:
		return true
	}
	return false
}

// RuleField names the viewer-profile attribute a rule reads
type RuleField string

const (
	RuleFieldTitle   RuleField = "title"
	RuleFieldProfile RuleField = "profile"
	RuleFieldRole    RuleField = "role"
)

// Valid reports whether the field is a known viewer-profile attribute
func (f RuleField) Valid() bool {
	switch f {
	case RuleFieldTitle, RuleFieldProfile, RuleFieldRole:
		return true
	}
	return false
}

// Rule is one visibility condition
type Rule struct {
	Field    RuleField `json:"field"`
	Operator Operator  `json:"operator"`
	Value    string    `json:"value"`
}

// RuleGroup is the visibility configuration of one section
type RuleGroup struct {
	Rules    []Rule   `json:"rules"`
	Criteria Criteria `json:"criteria"`
}

// Compact returns a copy without rules whose value is blank
func (g RuleGroup) Compact() RuleGroup {
	out := RuleGroup{Criteria: ParseCriteria(string(g.Criteria)), Rules: []Rule{}}
	for _, r := range g.Rules {
		if strings.TrimSpace(r.Value) == "" {
			continue
		}
		out.Rules = append(out.Rules, r)
	}
	return out
}

// IsEmpty reports whether the group has no rules
func (g RuleGroup) IsEmpty() bool {
	return len(g.Rules) == 0
}

// ParseRule parses "<field> <operator> <value>", e.g. "role equals manager".
// The value may contain spaces.
func ParseRule(s string) (Rule, error) {
	parts := strings.Fields(s)
	if len(parts) < 3 {
		return Rule{}, fmt.Errorf("%w: %q (want \"<field> <operator> <value>\")", ErrInvalidRule, s)
	}
	rule := Rule{
		Field:    RuleField(strings.ToLower(parts[0])),
		Operator: Operator(strings.ToLower(parts[1])),
		Value:    strings.Join(parts[2:], " "),
	}
	if !rule.Field.Valid() {
		return Rule{}, fmt.Errorf("%w: unknown field %q (title, profile, role)", ErrInvalidRule, parts[0])
	}
	if !rule.Operator.Valid() {
		return Rule{}, fmt.Errorf("%w: unknown operator %q (equals, not_equals, contains, not_contains)", ErrInvalidRule, parts[1])
	}
	return rule, nil
}

// ParseRuleGroup parses rules separated by ";" with an optional "any:" or
// "all:" prefix, e.g. "any: role equals manager; title contains lead".
// A blank string is an empty group.
func ParseRuleGroup(s string) (RuleGroup, error) {
	group := RuleGroup{Criteria: CriteriaAll}
	s = strings.TrimSpace(s)
	if head, rest, ok := strings.Cut(s, ":"); ok {
		switch strings.ToLower(strings.TrimSpace(head)) {
		case "any":
			group.Criteria, s = CriteriaAny, rest
		case "all":
			s = rest
		}
	}
	for part := range strings.SplitSeq(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := ParseRule(part)
		if err != nil {
			return RuleGroup{}, err
		}
		group.Rules = append(group.Rules, r)
	}
	return group, nil
}

// String renders the group in the form ParseRuleGroup reads
func (g RuleGroup) String() string {
	parts := make([]string, len(g.Rules))
	for i, r := range g.Rules {
		parts[i] = fmt.Sprintf("%s %s %s", r.Field, r.Operator, r.Value)
	}
	out := strings.Join(parts, "; ")
	if g.Criteria == CriteriaAny && out != "" {
		out = "any: " + out
	}
	return out
}
