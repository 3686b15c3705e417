package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

// ============================================================================
// FIELDS
// ============================================================================

// fieldsPayload matches {"fields": [...]} or the older bare array of fields
func fieldsPayload(r gjson.Result) bool {
	return r.IsArray() || (r.IsObject() && r.Get("fields").IsArray())
}

// DecodeFields recovers the field list of a section from the fields column
func DecodeFields(cv models.ColumnValue) ([]models.Field, Strategy, bool) {
	payload, strategy, ok := Extract(cv, fieldsPayload)
	if !ok {
		return nil, StrategyNone, false
	}
	list := payload
	if payload.IsObject() {
		list = payload.Get("fields")
	}
	return decodeFieldList(list), strategy, true
}

func decodeFieldList(list gjson.Result) []models.Field {
	fields := make([]models.Field, 0)
	for _, f := range list.Array() {
		columnID := f.Get("columnId").String()
		if columnID == "" {
			continue
		}
		field := models.Field{
			ID:       f.Get("id").String(),
			ColumnID: columnID,
			Type:     f.Get("type").String(),
			// isDefault is how pre-migration blobs flagged required fields
			IsRequired: f.Get("isRequired").Bool() || f.Get("isDefault").Bool(),
		}
		if field.ID == "" {
			field.ID = models.FieldIDFor(columnID)
		}
		if maxValues := f.Get("rules.maxValues"); maxValues.Exists() {
			field.Rules = &models.FieldRules{MaxValues: int(maxValues.Int())}
		}
		fields = append(fields, field)
	}
	return fields
}

// EncodeFields writes the canonical {"fields": [...]} payload
func EncodeFields(fields []models.Field) (string, error) {
	if fields == nil {
		fields = []models.Field{}
	}
	data, err := json.Marshal(struct {
		Fields []models.Field `json:"fields"`
	}{Fields: fields})
	if err != nil {
		return "", fmt.Errorf("failed to encode fields: %w", err)
	}
	return string(data), nil
}

// ============================================================================
// VISIBILITY RULES
// ============================================================================

func rulesPayload(r gjson.Result) bool {
	return r.IsArray() || (r.IsObject() && r.Get("rules").IsArray())
}

// DecodeRules recovers a section's visibility rule group from the rules column
func DecodeRules(cv models.ColumnValue) (models.RuleGroup, Strategy, bool) {
	payload, strategy, ok := Extract(cv, rulesPayload)
	if !ok {
		return models.RuleGroup{}, StrategyNone, false
	}

	list := payload
	criteria := ""
	if payload.IsObject() {
		list = payload.Get("rules")
		criteria = payload.Get("criteria").String()
	}

	group := models.RuleGroup{Criteria: models.ParseCriteria(criteria), Rules: []models.Rule{}}
	for _, r := range list.Array() {
		group.Rules = append(group.Rules, models.Rule{
			Field:    models.RuleField(r.Get("field").String()),
			Operator: models.Operator(r.Get("operator").String()),
			Value:    r.Get("value").String(),
		})
	}
	return group.Compact(), strategy, true
}

// EncodeRules writes the canonical {"rules": [...], "criteria": ...} payload.
// Rules with a blank value are dropped.
func EncodeRules(group models.RuleGroup) (string, error) {
	data, err := json.Marshal(group.Compact())
	if err != nil {
		return "", fmt.Errorf("failed to encode rules: %w", err)
	}
	return string(data), nil
}

// ============================================================================
// LEGACY SECTION BLOB
// ============================================================================

// LegacySection is the pre-migration record shape: the whole section stored
// as one blob in the "Sections" column
type LegacySection struct {
	ID        string
	Title     string
	Order     int
	IsDefault bool
	Fields    []models.Field
}

func legacyPayload(r gjson.Result) bool {
	return r.IsObject() && r.Get("fields").IsArray()
}

// DecodeLegacySection recovers a single-blob section record
func DecodeLegacySection(cv models.ColumnValue) (LegacySection, Strategy, bool) {
	payload, strategy, ok := Extract(cv, legacyPayload)
	if !ok {
		return LegacySection{}, StrategyNone, false
	}
	order, _ := ParseOrder(payload.Get("order").String())
	return LegacySection{
		ID:        payload.Get("id").String(),
		Title:     payload.Get("title").String(),
		Order:     order,
		IsDefault: payload.Get("isDefault").Bool(),
		Fields:    decodeFieldList(payload.Get("fields")),
	}, strategy, true
}

// ============================================================================
// SCALARS
// ============================================================================

// NormalizeBoardID canonicalizes a stored board id. The platform hands back
// numbers as "123", "123.0" or a JSON-quoted "\"123\"" depending on the
// column type and writer.
func NormalizeBoardID(raw string) string {
	return normalizeNumber(raw)
}

func normalizeNumber(raw string) string {
	s := strings.TrimSpace(raw)
	for len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if unquoted, err := strconv.Unquote(s); err == nil {
			s = strings.TrimSpace(unquoted)
		} else {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// BoardIDMatches reports whether a stored board id refers to the target board
func BoardIDMatches(stored, target string) bool {
	s := NormalizeBoardID(stored)
	return s != "" && s == NormalizeBoardID(target)
}

// ParseOrder reads a 1-based section order from a numbers column
func ParseOrder(raw string) (int, bool) {
	s := normalizeNumber(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LongText wraps a payload in the long-text column write envelope
func LongText(s string) map[string]string {
	return map[string]string{"text": s}
}
