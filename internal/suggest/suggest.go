// Package suggest provides canned writing suggestions for free-text resume fields.
package suggest

import (
	"errors"
	"fmt"
	"sort"
)

// Field names the free-text field a suggestion fills.
type Field string

// Fields with suggestions
const (
	FieldSummary     Field = "summary"
	FieldDescription Field = "description"
)

// ErrUnknownField is returned for a field without suggestions.
var ErrUnknownField = errors.New("no suggestions for field")

var catalog = map[Field][]string{
	FieldSummary: {
		"Results-driven software engineer with 3+ years of experience building scalable web applications using React and Node.js.",
		"Creative product designer passionate about crafting intuitive user experiences that drive engagement and business growth.",
		"Recent CS graduate eager to contribute technical skills and fresh perspectives to an innovative development team.",
	},
	FieldDescription: {
		"Developed and maintained RESTful APIs serving 100K+ daily active users, reducing response time by 40%.",
		"Led cross-functional team of 5 engineers to deliver mobile app 2 weeks ahead of schedule under tight deadline.",
		"Implemented automated testing suite achieving 90% code coverage, eliminating critical production bugs.",
	},
}

// Fields lists the fields that have suggestions.
func Fields() []Field {
	out := make([]Field, 0, len(catalog))
	for f := range catalog {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// For returns the suggestions for field.
func For(field Field) ([]string, error) {
	list, ok := catalog[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return append([]string(nil), list...), nil
}

// Pick returns suggestion n (1-based) for field.
func Pick(field Field, n int) (string, error) {
	list, err := For(field)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(list) {
		return "", fmt.Errorf("suggestion %d out of range (1-%d)", n, len(list))
	}
	return list[n-1], nil
}
