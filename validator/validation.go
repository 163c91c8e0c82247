package validator

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// FieldErrors collects one message per invalid field.
type FieldErrors map[string]string

// Add keeps the first message recorded for a field.
func (f FieldErrors) Add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

func (f FieldErrors) Empty() bool { return len(f) == 0 }

// Error lists the failures sorted by field name so messages are stable.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, k := range fields {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, ", ")
}

func MinLength(errs FieldErrors, field, value string, n int, msg string) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
		errs.Add(field, msg)
	}
}

func Required(errs FieldErrors, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, msg)
	}
}

func MinInt(errs FieldErrors, field string, value, min int, msg string) {
	if value < min {
		errs.Add(field, msg)
	}
}

func MinFloat(errs FieldErrors, field string, value, min float64, msg string) {
	if value < min {
		errs.Add(field, msg)
	}
}

// OneOf checks value against allowed, ignoring case.
func OneOf(errs FieldErrors, field, value string, allowed []string, msg string) {
	for _, a := range allowed {
		if strings.EqualFold(a, strings.TrimSpace(value)) {
			return
		}
	}
	errs.Add(field, msg)
}
