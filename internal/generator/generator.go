// Package generator builds target phrases from a dictionary.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Options controls phrase decoration.
type Options struct {
	Words    int
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Generator produces randomized target phrases.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate selects words uniformly and applies caps/punctuation rules.
func (g *Generator) Generate(words []string, opts Options) []string {
	if len(words) == 0 || opts.Words <= 0 {
		return nil
	}
	result := make([]string, 0, opts.Words)
	for i := 0; i < opts.Words; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, opts.CapsPct)
		word = applyPunct(g.rnd, word, opts.PunctPct, opts.PunctSet)
		result = append(result, word)
	}
	return result
}

// Phrase returns generated words joined with single spaces.
func (g *Generator) Phrase(words []string, opts Options) string {
	return strings.Join(g.Generate(words, opts), " ")
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	if unicode.IsSpace(punct) {
		return word
	}
	return word + string(punct)
}
