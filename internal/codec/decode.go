// Package codec converts layout sections to and from the text payloads stored
// in metadata board columns.
//
// The stored format changed three times and old records stay on the remote
// board, so decoding runs a fixed chain of strategies against the redundant
// representations of a column value. Encoding only ever writes the current
// format.
package codec

import (
	"github.com/tidwall/gjson"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

// Strategy identifies which representation of a column value a payload was
// recovered from
type Strategy int

const (
	// StrategyNone means no representation matched
	StrategyNone Strategy = iota

	// StrategyText parses the display text directly. Records written by the
	// current version land here.
	StrategyText

	// StrategyValueWrapper parses the raw value as {"text": "<json>"}, the
	// long-text column envelope, and then parses the inner string.
	StrategyValueWrapper

	// StrategyDoubleEncoded parses the raw value as a JSON string whose
	// contents are themselves JSON. Early writers stringified twice.
	StrategyDoubleEncoded

	// StrategyValueDirect parses the raw value as the payload itself.
	StrategyValueDirect
)

func (s Strategy) String() string {
	switch s {
	case StrategyText:
		return "text"
	case StrategyValueWrapper:
		return "value-wrapper"
	case StrategyDoubleEncoded:
		return "double-encoded"
	case StrategyValueDirect:
		return "value-direct"
	default:
		return "none"
	}
}

// Matcher decides whether a parsed payload has the structure a caller expects
type Matcher func(gjson.Result) bool

// Object matches any JSON object
func Object(r gjson.Result) bool { return r.IsObject() }

// Array matches any JSON array
func Array(r gjson.Result) bool { return r.IsArray() }

// Extract runs the decode chain against a column value and returns the first
// payload accepted by match.
func Extract(cv models.ColumnValue, match Matcher) (gjson.Result, Strategy, bool) {
	// 1. display text
	if r, ok := parse(cv.Text, match); ok {
		return r, StrategyText, true
	}

	if !gjson.Valid(cv.Value) {
		return gjson.Result{}, StrategyNone, false
	}
	value := gjson.Parse(cv.Value)

	// 2. {"text": "<json>"} wrapper
	if value.IsObject() {
		if inner := value.Get("text"); inner.Type == gjson.String {
			if r, ok := parse(inner.Str, match); ok {
				return r, StrategyValueWrapper, true
			}
		}
	}

	// 3. "<json>" double encoded
	if value.Type == gjson.String {
		if r, ok := parse(value.Str, match); ok {
			return r, StrategyDoubleEncoded, true
		}
	}

	// 4. raw payload
	if match(value) {
		return value, StrategyValueDirect, true
	}

	return gjson.Result{}, StrategyNone, false
}

func parse(s string, match Matcher) (gjson.Result, bool) {
	if s == "" || !gjson.Valid(s) {
		return gjson.Result{}, false
	}
	r := gjson.Parse(s)
	if !match(r) {
		return gjson.Result{}, false
	}
	return r, true
}
