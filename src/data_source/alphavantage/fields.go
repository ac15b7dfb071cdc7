package alphavantage

import (
	"math"
	"strconv"
	"strings"
	"time"

	"stock-watchlist/src/helpers"
)

// -----------------------------------------------------------------------------
// Field parsing rules shared by the normalizers. The upstream encodes every
// value as a string, with numbered field names like "05. price".
// -----------------------------------------------------------------------------

// requiredString extracts a non-empty string field or fails the record.
func requiredString(fields map[string]string, key string) (string, error) {
	v, ok := fields[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", helpers.NewParseError("missing required field %q", key)
	}
	return v, nil
}

// -----------------------------------------------------------------------------

// requiredFloat extracts a finite numeric field or fails the record.
func requiredFloat(fields map[string]string, key string) (float64, error) {
	raw, err := requiredString(fields, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, helpers.NewParseError("field %q is not a finite number: %q", key, raw)
	}
	return f, nil
}

// -----------------------------------------------------------------------------

// requiredPercent extracts a numeric field with a trailing percent sign.
func requiredPercent(fields map[string]string, key string) (float64, error) {
	raw, err := requiredString(fields, key)
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, helpers.NewParseError("field %q is not a percentage: %q", key, raw)
	}
	return f, nil
}

// -----------------------------------------------------------------------------

// requiredDate extracts a YYYY-MM-DD date field or fails the record.
func requiredDate(fields map[string]string, key string) (string, error) {
	raw, err := requiredString(fields, key)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(raw)
	if _, err := time.Parse("2006-01-02", trimmed); err != nil {
		return "", helpers.NewParseError("field %q is not a date: %q", key, raw)
	}
	return trimmed, nil
}

// -----------------------------------------------------------------------------

// optionalInt extracts an integer field, degrading to absent when the field is
// missing or unparseable. Digit-grouping commas are stripped first.
func optionalInt(fields map[string]string, keys ...string) *int64 {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
		if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
			return &n
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

// optionalString normalizes an optional field: empty, whitespace-only and the
// upstream's "None" / "-" placeholders all become absent, never empty strings.
func optionalString(fields map[string]string, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "None" || trimmed == "-" {
		return nil
	}
	return &trimmed
}
