// Package filter implements the case-insensitive, multi-word search used by
// room, member and timeline lists.
package filter

import (
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// Matches reports whether every word of query appears in text, ignoring case.
// Case is folded fully, so "strasse" matches "Straße".
// Words are separated by whitespace. An empty query matches any text.
func Matches(query, text string) bool {
	text = fold(text)
	return lo.EveryBy(words(query), func(word string) bool {
		return strings.Contains(text, word)
	})
}

// Matcher checks one query against many texts.
type Matcher struct {
	words   []string
	machine *goahocorasick.Machine
}

// Compile prepares query for repeated matching.
func Compile(query string) (Matcher, error) {
	ws := words(query)
	if len(ws) == 0 {
		return Matcher{}, nil
	}
	sort.Strings(ws)

	patterns := lo.Map(ws, func(w string, _ int) []rune { return []rune(w) })
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Matcher{}, err
	}
	return Matcher{words: ws, machine: m}, nil
}

// Match reports whether every word of the compiled query appears in text.
func (m Matcher) Match(text string) bool {
	if len(m.words) == 0 {
		return true
	}
	found := make(map[string]struct{}, len(m.words))
	for _, term := range m.machine.MultiPatternSearch([]rune(fold(text)), false) {
		found[string(term.Word)] = struct{}{}
	}
	return len(found) == len(m.words)
}

// Items keeps the items whose text matches query, preserving order.
func Items[T any](query string, items []T, textOf func(T) string) []T {
	m, err := Compile(query)
	if err != nil {
		return lo.Filter(items, func(item T, _ int) bool {
			return Matches(query, textOf(item))
		})
	}
	return lo.Filter(items, func(item T, _ int) bool {
		return m.Match(textOf(item))
	})
}

// words returns the distinct case-folded words of query.
func words(query string) []string {
	return lo.Uniq(strings.Fields(fold(query)))
}

func fold(s string) string {
	return cases.Fold().String(s)
}
