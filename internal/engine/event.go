// Package engine implements the typing-match logic: sentence reconstruction,
// word alignment, and round progress.
package engine

import (
	"slices"
	"time"
)

// KeyKind identifies the variant of a KeySymbol.
type KeyKind int

const (
	// KeyOther is any key the engine does not interpret.
	KeyOther KeyKind = iota
	// KeyCharacter is a printable character, including space.
	KeyCharacter
	// KeyBackspace removes the last typed character.
	KeyBackspace
	// KeyEscape ends the round at the user's request.
	KeyEscape
)

// KeySymbol is a captured key. Char is only meaningful for KeyCharacter.
type KeySymbol struct {
	Kind KeyKind
	Char rune
}

// Char returns the symbol for a typed character.
func Char(r rune) KeySymbol {
	return KeySymbol{Kind: KeyCharacter, Char: r}
}

// BackspaceKey returns the backspace symbol.
func BackspaceKey() KeySymbol {
	return KeySymbol{Kind: KeyBackspace}
}

// EscapeKey returns the escape symbol.
func EscapeKey() KeySymbol {
	return KeySymbol{Kind: KeyEscape}
}

// OtherKey returns the symbol for an uninterpreted key.
func OtherKey() KeySymbol {
	return KeySymbol{Kind: KeyOther}
}

// String renders the symbol for logs.
func (k KeySymbol) String() string {
	switch k.Kind {
	case KeyCharacter:
		if k.Char == ' ' {
			return "<space>"
		}
		return string(k.Char)
	case KeyBackspace:
		return "<backspace>"
	case KeyEscape:
		return "<esc>"
	case KeyOther:
		return "<other>"
	default:
		panic("engine: unknown key kind")
	}
}

// KeyEvent is a key press captured at Timestamp.
type KeyEvent struct {
	Symbol    KeySymbol
	Timestamp time.Time
}

// EventLog is the append-only record of a round's key events.
// Insertion order is chronological order.
type EventLog struct {
	events []KeyEvent
}

// Append records a new event at the end of the log.
func (l *EventLog) Append(ev KeyEvent) {
	l.events = append(l.events, ev)
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Events returns a copy of the recorded events in order.
func (l *EventLog) Events() []KeyEvent {
	return slices.Clone(l.events)
}
