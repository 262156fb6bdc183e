// Package validation implements data-driven request validation: each route
// declares a Schema of named field rules, and every rule is a chain of
// composable coercion/check functions. Validation either normalizes the
// decoded input or fails with a field-level breakdown.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/obiajulu/fintrack-be/internal/apperror"
)

// Check normalizes a raw decoded value or reports a problem. A non-empty
// message marks the field invalid; the returned value feeds the next check.
type Check func(v any) (any, string)

// Field is one named rule in a schema.
type Field struct {
	Name     string
	Required bool
	Default  any // applied when the field is absent
	Checks   []Check
}

// Schema is the declarative input contract for one route.
type Schema struct {
	Fields []Field
	// RequireOne rejects input that carries none of the declared fields.
	RequireOne bool
}

// Values holds the normalized output of a successful validation. Only
// fields that were present (or defaulted) appear as keys.
type Values map[string]any

// Has reports whether the field was present in the input.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the field as a string, or "" when absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Float returns the field as a float64, or 0 when absent.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Time returns the field as a time.Time, or the zero time when absent.
func (v Values) Time(name string) time.Time {
	t, _ := v[name].(time.Time)
	return t
}

// Validate runs the schema against decoded input. Nil input is treated as
// an empty object. On failure the returned error is a validation error
// carrying one message list per offending field.
func (s Schema) Validate(in map[string]any) (Values, error) {
	out := Values{}
	problems := map[string][]string{}
	present := 0

	for _, f := range s.Fields {
		raw, ok := in[f.Name]
		if !ok || raw == nil {
			if f.Required {
				problems[f.Name] = append(problems[f.Name], "is required")
			} else if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		present++

		v := raw
		failed := false
		for _, check := range f.Checks {
			var msg string
			v, msg = check(v)
			if msg != "" {
				problems[f.Name] = append(problems[f.Name], msg)
				failed = true
				break
			}
		}
		if !failed {
			out[f.Name] = v
		}
	}

	if s.RequireOne && present == 0 {
		problems["body"] = append(problems["body"], "at least one field is required")
	}
	if len(problems) > 0 {
		return nil, apperror.Validation(problems)
	}
	return out, nil
}

// String asserts the value is a string.
func String() Check {
	return func(v any) (any, string) {
		s, ok := v.(string)
		if !ok {
			return v, "must be a string"
		}
		return s, ""
	}
}

// Trim removes surrounding whitespace from a string value.
func Trim() Check {
	return func(v any) (any, string) {
		return strings.TrimSpace(v.(string)), ""
	}
}

// Lower lowercases a string value.
func Lower() Check {
	return func(v any) (any, string) {
		return strings.ToLower(v.(string)), ""
	}
}

// MinLen requires the string to have at least n characters.
func MinLen(n int) Check {
	return func(v any) (any, string) {
		if len([]rune(v.(string))) < n {
			return v, fmt.Sprintf("must be at least %d characters", n)
		}
		return v, ""
	}
}

// MaxLen requires the string to have at most n characters.
func MaxLen(n int) Check {
	return func(v any) (any, string) {
		if len([]rune(v.(string))) > n {
			return v, fmt.Sprintf("must be at most %d characters", n)
		}
		return v, ""
	}
}

// ExactLen requires the string to have exactly n characters.
func ExactLen(n int) Check {
	return func(v any) (any, string) {
		if len([]rune(v.(string))) != n {
			return v, fmt.Sprintf("must be exactly %d characters", n)
		}
		return v, ""
	}
}

// Email requires a valid email address format.
func Email() Check {
	return func(v any) (any, string) {
		s := v.(string)
		if _, err := mail.ParseAddress(s); err != nil {
			return v, "must be a valid email address"
		}
		return s, ""
	}
}

// Number asserts the value is a JSON number.
func Number() Check {
	return func(v any) (any, string) {
		f, ok := v.(float64)
		if !ok {
			return v, "must be a number"
		}
		return f, ""
	}
}

// Positive requires a number greater than zero.
func Positive() Check {
	return func(v any) (any, string) {
		if v.(float64) <= 0 {
			return v, "must be a positive number"
		}
		return v, ""
	}
}

// OneOf requires the string to be one of the allowed values.
func OneOf(allowed ...string) Check {
	return func(v any) (any, string) {
		s := v.(string)
		for _, a := range allowed {
			if s == a {
				return s, ""
			}
		}
		return v, "must be one of: " + strings.Join(allowed, ", ")
	}
}

// DateTime parses an ISO-8601 (RFC 3339) string into a time.Time.
func DateTime() Check {
	return func(v any) (any, string) {
		t, err := time.Parse(time.RFC3339, v.(string))
		if err != nil {
			return v, "must be an ISO-8601 date-time string"
		}
		return t, ""
	}
}
