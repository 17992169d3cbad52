// Package wordlist provides dictionary filtering helpers.
package wordlist

import "unicode"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// SingleWord keeps entries without whitespace or control characters, so that
// splitting the joined phrase on spaces yields the chosen words back.
func SingleWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
