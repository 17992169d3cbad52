// Package stats derives round statistics from the key-event log.
package stats

import (
	"sort"
	"time"

	"github.com/verte-zerg/monclitype/internal/engine"
	"github.com/verte-zerg/monclitype/internal/model"
)

type charStat struct {
	correct      int
	incorrect    int
	latencySumMs int64
	latencyCount int64
}

// SessionMetrics computes WPM, CPM, and accuracy for a round.
func SessionMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0, 0
	}
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// Summarize replays events against target and builds the round summary.
// Each non-space keystroke is compared with the target character at the same
// word and offset, so corrected mistakes still count as incorrect.
func Summarize(sessionID string, events []engine.KeyEvent, target, reason string) model.RoundSummary {
	summary := model.RoundSummary{
		SessionID:  sessionID,
		Target:     target,
		Reason:     reason,
		Keystrokes: len(events),
	}
	targetWords := splitRunes(target)
	chars := map[rune]*charStat{}
	var sentence []rune
	var prevCorrectAt time.Time

	for _, ev := range events {
		switch ev.Symbol.Kind {
		case engine.KeyBackspace:
			summary.Backspaces++
		case engine.KeyCharacter:
			if ev.Symbol.Char == ' ' {
				break
			}
			expected, ok := expectedRune(sentence, targetWords)
			if !ok || expected == ' ' {
				summary.Incorrect++
				break
			}
			entry, found := chars[expected]
			if !found {
				entry = &charStat{}
				chars[expected] = entry
			}
			if ev.Symbol.Char != expected {
				summary.Incorrect++
				entry.incorrect++
				break
			}
			summary.Correct++
			entry.correct++
			if !prevCorrectAt.IsZero() {
				entry.latencySumMs += ev.Timestamp.Sub(prevCorrectAt).Milliseconds()
				entry.latencyCount++
			}
			prevCorrectAt = ev.Timestamp
		case engine.KeyEscape, engine.KeyOther:
		default:
			panic("stats: unknown key kind")
		}
		sentence = engine.ApplyKey(sentence, ev.Symbol)
	}

	summary.Input = string(sentence)
	summary.Passed = engine.VerifySentence(summary.Input, target)
	if len(events) > 0 {
		summary.StartedAt = events[0].Timestamp
		summary.EndedAt = events[len(events)-1].Timestamp
		summary.DurationMs = summary.EndedAt.Sub(summary.StartedAt).Milliseconds()
	}

	summary.Chars = make([]model.CharStats, 0, len(chars))
	for ch, entry := range chars {
		summary.Chars = append(summary.Chars, model.CharStats{
			Char:         string(ch),
			Correct:      entry.correct,
			Incorrect:    entry.incorrect,
			LatencySumMs: entry.latencySumMs,
			LatencyCount: entry.latencyCount,
		})
	}
	sort.Slice(summary.Chars, func(i, j int) bool {
		return summary.Chars[i].Char < summary.Chars[j].Char
	})
	return summary
}

// CharAccuracy returns the share of correct keystrokes for a character.
func CharAccuracy(cs model.CharStats) float64 {
	total := cs.Correct + cs.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(cs.Correct) / float64(total)
}

// CharLatency returns the mean latency in milliseconds for a character.
func CharLatency(cs model.CharStats) float64 {
	if cs.LatencyCount == 0 {
		return 0
	}
	return float64(cs.LatencySumMs) / float64(cs.LatencyCount)
}

// SortByAccuracy returns a copy of chars ordered by lowest accuracy first.
func SortByAccuracy(chars []model.CharStats) []model.CharStats {
	out := make([]model.CharStats, len(chars))
	copy(out, chars)
	sort.SliceStable(out, func(i, j int) bool {
		ai := CharAccuracy(out[i])
		aj := CharAccuracy(out[j])
		if ai == aj {
			return out[i].Char < out[j].Char
		}
		return ai < aj
	})
	return out
}

func splitRunes(target string) [][]rune {
	var words [][]rune
	word := []rune{}
	for _, r := range target {
		if r == ' ' {
			words = append(words, word)
			word = []rune{}
			continue
		}
		word = append(word, r)
	}
	return append(words, word)
}

// expectedRune returns the target character for the next keystroke given
// the sentence typed so far. A space is returned when the current word is
// already as long as its target word.
func expectedRune(sentence []rune, targetWords [][]rune) (rune, bool) {
	wordIdx := 0
	offset := 0
	for _, r := range sentence {
		if r == ' ' {
			wordIdx++
			offset = 0
			continue
		}
		offset++
	}
	if wordIdx >= len(targetWords) {
		return 0, false
	}
	word := targetWords[wordIdx]
	if offset >= len(word) {
		return ' ', true
	}
	return word[offset], true
}
