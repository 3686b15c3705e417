package codec

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

// ============================================================================
// DECODE CHAIN
// ============================================================================

func TestExtract_StrategyOrder(t *testing.T) {
	payload := `{"fields":[{"columnId":"status","isRequired":true}]}`
	wrapper, err := json.Marshal(map[string]string{"text": payload})
	require.NoError(t, err)

	tests := []struct {
		name string
		cv   models.ColumnValue
		want Strategy
	}{
		{
			name: "text column parsed directly",
			cv:   models.ColumnValue{Text: payload, Value: string(wrapper)},
			want: StrategyText,
		},
		{
			name: "long text wrapper",
			cv:   models.ColumnValue{Text: "", Value: string(wrapper)},
			want: StrategyValueWrapper,
		},
		{
			name: "double encoded value",
			cv:   models.ColumnValue{Text: "not json", Value: strconv.Quote(payload)},
			want: StrategyDoubleEncoded,
		},
		{
			name: "raw value",
			cv:   models.ColumnValue{Value: payload},
			want: StrategyValueDirect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, strategy, ok := DecodeFields(tt.cv)
			require.True(t, ok)
			assert.Equal(t, tt.want, strategy)
			require.Len(t, fields, 1)
			assert.Equal(t, "status", fields[0].ColumnID)
			assert.True(t, fields[0].IsRequired)
		})
	}
}

func TestExtract_Unreadable(t *testing.T) {
	cases := []models.ColumnValue{
		{},
		{Text: "hello", Value: "null"},
		{Text: "42", Value: `"plain string"`},
		{Value: `{"text":"{broken"}`},
	}
	for _, cv := range cases {
		_, strategy, ok := DecodeFields(cv)
		assert.False(t, ok, "expected %+v to be unreadable", cv)
		assert.Equal(t, StrategyNone, strategy)
	}
}

func TestExtract_WrapperWithoutFieldsFallsThrough(t *testing.T) {
	// An object wrapper whose text is not a fields payload must not match
	// as a raw payload either.
	cv := models.ColumnValue{Value: `{"text":"{\"other\":1}","changed_at":"2024-01-01"}`}
	_, _, ok := DecodeFields(cv)
	assert.False(t, ok)
}

// ============================================================================
// FIELDS
// ============================================================================

func TestFields_RoundTrip(t *testing.T) {
	fields := []models.Field{
		models.NewField(models.Column{ID: "text1", Type: "text"}, true),
		models.NewField(models.Column{ID: "people1", Type: "people"}, false),
		models.NewField(models.Column{ID: "rel", Type: "board_relation"}, true),
	}

	encoded, err := EncodeFields(fields)
	require.NoError(t, err)

	decoded, strategy, ok := DecodeFields(models.ColumnValue{Text: encoded})
	require.True(t, ok)
	assert.Equal(t, StrategyText, strategy)
	require.Len(t, decoded, len(fields))

	for i := range fields {
		assert.Equal(t, fields[i].ColumnID, decoded[i].ColumnID)
		assert.Equal(t, fields[i].IsRequired, decoded[i].IsRequired)
	}
	assert.Nil(t, decoded[0].Rules)
	require.NotNil(t, decoded[1].Rules)
	assert.Equal(t, 1000, decoded[1].Rules.MaxValues)
	require.NotNil(t, decoded[2].Rules)
	assert.Equal(t, 1000, decoded[2].Rules.MaxValues)
}

func TestEncodeFields_EmptyIsArray(t *testing.T) {
	encoded, err := EncodeFields(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fields":[]}`, encoded)
}

func TestDecodeFields_BareArray(t *testing.T) {
	fields, _, ok := DecodeFields(models.ColumnValue{Text: `[{"columnId":"a"},{"id":"x"},{"columnId":"b","isRequired":"true"}]`})
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "field_a", fields[0].ID)
	assert.False(t, fields[0].IsRequired)
	assert.True(t, fields[1].IsRequired)
}

// ============================================================================
// RULES
// ============================================================================

func TestRules_RoundTripDropsEmptyValues(t *testing.T) {
	group := models.RuleGroup{
		Criteria: models.CriteriaAny,
		Rules: []models.Rule{
			{Field: models.RuleFieldRole, Operator: models.OperatorEquals, Value: "admin"},
			{Field: models.RuleFieldTitle, Operator: models.OperatorContains, Value: ""},
		},
	}

	encoded, err := EncodeRules(group)
	require.NoError(t, err)

	decoded, _, ok := DecodeRules(models.ColumnValue{Value: string(mustJSON(t, LongText(encoded)))})
	require.True(t, ok)
	assert.Equal(t, models.CriteriaAny, decoded.Criteria)
	require.Len(t, decoded.Rules, 1)
	assert.Equal(t, "admin", decoded.Rules[0].Value)
}

func TestDecodeRules_UnknownCriteria(t *testing.T) {
	decoded, _, ok := DecodeRules(models.ColumnValue{Text: `{"rules":[],"criteria":"SOME"}`})
	require.True(t, ok)
	assert.Equal(t, models.CriteriaAll, decoded.Criteria)
}

// ============================================================================
// LEGACY
// ============================================================================

func TestDecodeLegacySection(t *testing.T) {
	blob := `{"id":"sec-1","title":"Details","order":"2","isDefault":false,` +
		`"fields":[{"id":"name","columnId":"name","label":"Item Name","type":"text","isDefault":"true"},` +
		`{"id":"status","columnId":"status","label":"Status","type":"status","isDefault":false}]}`

	legacy, _, ok := DecodeLegacySection(models.ColumnValue{Text: blob})
	require.True(t, ok)
	assert.Equal(t, "Details", legacy.Title)
	assert.Equal(t, 2, legacy.Order)
	require.Len(t, legacy.Fields, 2)
	assert.Equal(t, "name", legacy.Fields[0].ColumnID)
	assert.True(t, legacy.Fields[0].IsRequired)
	assert.False(t, legacy.Fields[1].IsRequired)
}

func TestDecodeLegacySection_DoubleEncoded(t *testing.T) {
	blob := `{"id":"s","title":"T","order":1,"fields":[{"columnId":"c","isDefault":"true"}]}`
	legacy, strategy, ok := DecodeLegacySection(models.ColumnValue{Value: strconv.Quote(blob)})
	require.True(t, ok)
	assert.Equal(t, StrategyDoubleEncoded, strategy)
	require.Len(t, legacy.Fields, 1)
	assert.True(t, legacy.Fields[0].IsRequired)
}

// ============================================================================
// SCALARS
// ============================================================================

func TestBoardIDMatches(t *testing.T) {
	for _, stored := range []string{"123", "123.0", `"123"`, " 123 ", `"123.0"`} {
		assert.True(t, BoardIDMatches(stored, "123"), "stored %q should match", stored)
	}
	for _, stored := range []string{"", "1234", "12", "abc"} {
		assert.False(t, BoardIDMatches(stored, "123"), "stored %q should not match", stored)
	}
}

func TestParseOrder(t *testing.T) {
	n, ok := ParseOrder("3.0")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = ParseOrder("")
	assert.False(t, ok)

	_, ok = ParseOrder("first")
	assert.False(t, ok)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
