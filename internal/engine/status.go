package engine

import (
	"errors"
	"strings"
)

// ErrGameFinished signals that more words were typed than the target contains.
var ErrGameFinished = errors.New("game finished: input has more words than target")

// GameStatus is a snapshot of round progress.
type GameStatus struct {
	CompletedWords  []WordAlignment
	CurrentWord     WordAlignment
	RemainingTarget string
}

// HasRemaining reports whether untyped target words remain after the current word.
func (s GameStatus) HasRemaining() bool {
	return s.RemainingTarget != ""
}

// CurrentStatus recomputes the round progress for the events against target.
// It returns ErrGameFinished when the input has more words than the target.
func CurrentStatus(events []KeyEvent, target string) (GameStatus, error) {
	inputWords := strings.Split(BuildSentence(events), " ")
	targetWords := strings.Split(target, " ")
	if len(inputWords) > len(targetWords) {
		return GameStatus{}, ErrGameFinished
	}

	alignments := make([]WordAlignment, 0, len(inputWords))
	for i, word := range inputWords {
		alignments = append(alignments, AlignWord(word, targetWords[i]))
	}
	if len(alignments) == 0 {
		// strings.Split never returns an empty slice for a space separator.
		alignments = append(alignments, AlignWord("", targetWords[0]))
	}

	last := len(alignments) - 1
	return GameStatus{
		CompletedWords:  alignments[:last],
		CurrentWord:     alignments[last],
		RemainingTarget: strings.Join(targetWords[len(alignments):], " "),
	}, nil
}
