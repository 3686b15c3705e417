package grid

import (
	"strings"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

// SetRules replaces a section's visibility rules. Rules with a blank value
// are discarded; an empty group clears the section's rules.
func (l *Layout) SetRules(sectionID string, group models.RuleGroup) error {
	if _, ok := l.Section(sectionID); !ok {
		return models.ErrSectionNotFound
	}
	for _, r := range group.Rules {
		if !r.Field.Valid() || !r.Operator.Valid() {
			return models.ErrInvalidRule
		}
	}
	group = group.Compact()
	if group.IsEmpty() {
		delete(l.rules, sectionID)
		return nil
	}
	l.rules[sectionID] = group
	return nil
}

// Rules returns a section's visibility rules
func (l *Layout) Rules(sectionID string) (models.RuleGroup, bool) {
	g, ok := l.rules[sectionID]
	return g, ok
}

// SectionVisible reports whether a viewer sees a section. Sections without
// rules are always visible.
func (l *Layout) SectionVisible(sectionID string, viewer models.ViewerProfile) bool {
	g, ok := l.rules[sectionID]
	if !ok {
		return true
	}
	return Evaluate(g, viewer)
}

// Evaluate applies a rule group to a viewer profile. ALL needs every rule to
// match, ANY needs at least one. Comparisons ignore case.
func Evaluate(group models.RuleGroup, viewer models.ViewerProfile) bool {
	group = group.Compact()
	if group.IsEmpty() {
		return true
	}
	anyMode := group.Criteria == models.CriteriaAny
	for _, r := range group.Rules {
		matched := matchRule(r, viewer)
		if anyMode && matched {
			return true
		}
		if !anyMode && !matched {
			return false
		}
	}
	return !anyMode
}

func matchRule(r models.Rule, viewer models.ViewerProfile) bool {
	attr, ok := viewer.Attribute(r.Field)
	if !ok {
		return false
	}
	attr = strings.ToLower(strings.TrimSpace(attr))
	want := strings.ToLower(strings.TrimSpace(r.Value))

	switch r.Operator {
	case models.OperatorEquals:
		return attr == want
	case models.OperatorNotEquals:
		return attr != want
	case models.OperatorContains:
		return strings.Contains(attr, want)
	case models.OperatorNotContains:
		return !strings.Contains(attr, want)
	default:
		return false
	}
}
