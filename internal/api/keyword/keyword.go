// Package keyword evaluates ordered keyword rule tables. It backs the canned
// market-info and suggestion stubs and is a placeholder for a real retrieval
// integration, not a search engine.
package keyword

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule yields Response when any of its Keywords occurs in the input.
// Keywords are matched as lowercase substrings.
type Rule[T any] struct {
	Name     string
	Keywords []string
	Response T
}

// Table is evaluated top to bottom; the first matching rule wins and Default
// is returned when none match.
type Table[T any] struct {
	Rules   []Rule[T]
	Default T
}

// Match returns the response of the first matching rule, its name and
// whether a rule matched at all.
func (t Table[T]) Match(input string) (T, string, bool) {
	text := strings.ToLower(input)
	for _, rule := range t.Rules {
		if ContainsAny(text, rule.Keywords) {
			return rule.Response, rule.Name, true
		}
	}
	return t.Default, "", false
}

// ContainsAny reports whether lowered text contains any keyword.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// inflections may trail a whole-word keyword, so "rate" also matches "rates"
// and "trend" matches "trending".
var inflections = []string{"", "s", "es", "d", "ed", "ing", "er", "est", "ly"}

// ContainsWord reports whether text contains any keyword as a whole word,
// ignoring case. A keyword must start at a word boundary and end at one,
// optionally followed by a common inflection.
func ContainsWord(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		for from := 0; from < len(text); {
			i := strings.Index(text[from:], kw)
			if i < 0 {
				break
			}
			start := from + i
			if atWordStart(text, start) && atWordEnd(text[start+len(kw):]) {
				return true
			}
			from = start + 1
		}
	}
	return false
}

func atWordStart(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func atWordEnd(rest string) bool {
	for _, suffix := range inflections {
		if !strings.HasPrefix(rest, suffix) {
			continue
		}
		after := rest[len(suffix):]
		if after == "" {
			return true
		}
		if r, _ := utf8.DecodeRuneInString(after); !isWordRune(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
