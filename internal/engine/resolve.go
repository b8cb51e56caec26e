package engine

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// minFuzzyLength is the shortest identifier, in characters, for which the
// substring fallback over names is attempted.
const minFuzzyLength = 3

// Resolve maps any identifier to canonical protein ids. Lookup order, first
// non-empty result wins:
//
//  1. exact alias match
//  2. exact name match
//  3. case-insensitive substring match against every name, only when the
//     identifier has at least three characters
//
// The ids of an exact match keep their insertion order. Ids from the
// substring fallback are a deduplicated union, and callers must not rely on
// their order. No match yields an empty, non-nil slice.
func (e *Engine) Resolve(identifier string) []string {
	if ids, ok := e.idx.aliases.Get(identifier); ok && len(ids) > 0 {
		return slices.Clone(ids)
	}
	if ids, ok := e.idx.names.Get(identifier); ok && len(ids) > 0 {
		return slices.Clone(ids)
	}
	if utf8.RuneCountInString(identifier) >= minFuzzyLength {
		return e.substringMatches(strings.ToLower(identifier))
	}
	return []string{}
}

func (e *Engine) substringMatches(needle string) []string {
	matches := []string{}
	seen := make(map[string]struct{})
	for _, entry := range e.idx.lowerNames {
		if !strings.Contains(entry.lower, needle) {
			continue
		}
		for _, id := range entry.ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			matches = append(matches, id)
		}
	}
	return matches
}
