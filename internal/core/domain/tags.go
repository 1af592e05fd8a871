package domain

import (
	"slices"
	"strings"
)

// NormalizeTags trims, lower-cases, dedupes and sorts tags. Empty entries
// are dropped.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// ParseTags splits a comma separated list such as "home,sports".
func ParseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return NormalizeTags(strings.Split(raw, ","))
}

// Intersects reports whether a and b share at least one tag.
func Intersects(a, b []string) bool {
	for _, t := range a {
		if slices.Contains(b, t) {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every tag of a is present in b.
func SubsetOf(a, b []string) bool {
	for _, t := range a {
		if !slices.Contains(b, t) {
			return false
		}
	}
	return true
}
