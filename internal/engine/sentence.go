package engine

// BuildSentence folds the events left to right into the user's current input.
func BuildSentence(events []KeyEvent) string {
	var sentence []rune
	for _, ev := range events {
		sentence = ApplyKey(sentence, ev.Symbol)
	}
	return string(sentence)
}

// ApplyKey applies a single key to the sentence and returns the result.
// Consecutive spaces collapse to one and backspace on an empty sentence is a no-op.
func ApplyKey(sentence []rune, sym KeySymbol) []rune {
	switch sym.Kind {
	case KeyCharacter:
		if sym.Char == ' ' && len(sentence) > 0 && sentence[len(sentence)-1] == ' ' {
			return sentence
		}
		return append(sentence, sym.Char)
	case KeyBackspace:
		if len(sentence) == 0 {
			return sentence
		}
		return sentence[:len(sentence)-1]
	case KeyEscape, KeyOther:
		return sentence
	default:
		panic("engine: unknown key kind")
	}
}

// VerifySentence reports whether the input reproduces the target exactly.
func VerifySentence(input, target string) bool {
	return input == target
}
