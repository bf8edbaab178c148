package schema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"dipadubank/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Validate checks payload against the schema and returns the normalized, client writable subset.
// System fields are dropped, unknown fields are rejected. Numbers come back as json.Number,
// timestamps as RFC 3339 strings and identifiers in canonical UUID form.
func (s *Schema) Validate(payload map[string]interface{}, mode Mode) (map[string]interface{}, error) {
	fieldErrors := make(map[string]string)
	normalized := make(map[string]interface{}, len(payload))

	for name := range payload {
		if IsSystemField(name) {
			continue
		}
		if _, ok := s.Field(name); !ok {
			fieldErrors[name] = "is not a recognized field"
		}
	}

	for _, field := range s.Fields {
		value, present := payload[field.Name]
		if !present {
			if mode == Full && field.Required {
				fieldErrors[field.Name] = "is required"
			}
			continue
		}

		if value == nil {
			if field.Required {
				fieldErrors[field.Name] = "is required"
				continue
			}
			normalized[field.Name] = nil
			continue
		}

		coerced, reason := field.coerce(value)
		if reason != "" {
			fieldErrors[field.Name] = reason
			continue
		}
		normalized[field.Name] = coerced
	}

	if len(fieldErrors) > 0 {
		return nil, NewValidationError(fieldErrors)
	}
	return normalized, nil
}

// ValidateForm runs form values through Validate. Blank optional inputs become null and keys
// that are not schema fields are ignored.
func (s *Schema) ValidateForm(values url.Values, mode Mode) (map[string]interface{}, error) {
	payload := make(map[string]interface{})
	for _, field := range s.Fields {
		submitted, ok := values[field.Name]
		if !ok || len(submitted) == 0 {
			continue
		}

		value := strings.TrimSpace(submitted[0])
		if value == "" && field.Nullable() {
			payload[field.Name] = nil
			continue
		}
		payload[field.Name] = value
	}

	return s.Validate(payload, mode)
}

// CoerceFilter converts a raw query string value for an equality filter on field.
func (f Field) CoerceFilter(raw string) (interface{}, error) {
	value, reason := f.coerce(raw)
	if reason != "" {
		return nil, fmt.Errorf("%s %s", f.Name, reason)
	}

	switch f.Type {
	case TypeNumber:
		return decimal.RequireFromString(string(value.(json.Number))), nil
	case TypeTimestamp:
		return time.Parse(time.RFC3339Nano, value.(string))
	default:
		return value, nil
	}
}

func (f Field) coerce(value interface{}) (interface{}, string) {
	switch f.Type {
	case TypeNumber:
		return f.coerceNumber(value)
	case TypeUUID:
		str, ok := value.(string)
		if !ok {
			return nil, "must be a string"
		}
		id, err := uuid.Parse(strings.TrimSpace(str))
		if err != nil {
			return nil, "must be a valid UUID"
		}
		return id.String(), ""
	case TypeTimestamp:
		return f.coerceTimestamp(value)
	default:
		str, ok := value.(string)
		if !ok {
			return nil, "must be a string"
		}
		if str == "" && f.Required {
			return nil, "is required"
		}
		if f.Rules != "" && str != "" {
			if err := validation.GetValidator().Var(str, f.Rules); err != nil {
				return nil, validation.Describe(err)
			}
		}
		return str, ""
	}
}

func (f Field) coerceNumber(value interface{}) (interface{}, string) {
	var d decimal.Decimal
	switch v := value.(type) {
	case json.Number:
		parsed, err := decimal.NewFromString(v.String())
		if err != nil {
			return nil, "must be a number"
		}
		d = parsed
	case float64:
		d = decimal.NewFromFloat(v)
	case float32:
		d = decimal.NewFromFloat32(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case decimal.Decimal:
		d = v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			if f.Required {
				return nil, "is required"
			}
			return nil, "must be a number"
		}
		parsed, err := decimal.NewFromString(trimmed)
		if err != nil {
			return nil, "must be a number"
		}
		d = parsed
	default:
		return nil, "must be a number"
	}

	if f.Precision > 0 {
		if err := validation.GetValidator().Var(d.String(), validation.DecimalTag(f.Precision, f.Scale)); err != nil {
			return nil, validation.Describe(err)
		}
	}
	if f.Rules != "" {
		if err := validation.GetValidator().Var(d.InexactFloat64(), f.Rules); err != nil {
			return nil, validation.Describe(err)
		}
	}
	return json.Number(d.String()), ""
}

func (f Field) coerceTimestamp(value interface{}) (interface{}, string) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano), ""
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t.UTC().Format(time.RFC3339Nano), ""
			}
		}
		if trimmed == "" && f.Required {
			return nil, "is required"
		}
		return nil, "must be a valid timestamp"
	default:
		return nil, "must be a valid timestamp"
	}
}
