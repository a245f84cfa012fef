package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
)

// ErrMissingValue is returned while building a graph when a record lacks a
// value the ontology requires, such as an action name or a unit.
var ErrMissingValue = errors.New("models: missing required value")

// EnumError reports a JSON value outside a closed enumeration.
type EnumError struct {
	Kind       string
	Value      string
	Suggestion string
}

func (e *EnumError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("models: unknown %s %q", e.Kind, e.Value)
	}
	return fmt.Sprintf("models: unknown %s %q (did you mean %q?)", e.Kind, e.Value, e.Suggestion)
}

// suggest returns the candidate closest to value, or "" when nothing is
// close enough to be a plausible typo.
func suggest(value string, candidates []string) string {
	needle := strings.ToLower(value)
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.Distance(needle, strings.ToLower(c), nil)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len([]rune(value))/2) {
		return ""
	}
	return best
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingValue, field)
}
