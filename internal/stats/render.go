package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/monclitype/internal/model"
)

// Verdict returns the pass/fail label for a round.
func Verdict(s model.RoundSummary) string {
	if s.Passed {
		return "PASSED"
	}
	return "FAILED"
}

// SummaryRows returns label/value pairs describing the round.
func SummaryRows(s model.RoundSummary) [][]string {
	wpm, cpm, acc := SessionMetrics(s.Correct, s.Incorrect, s.DurationMs)
	return [][]string{
		{"Result", Verdict(s)},
		{"Ended by", s.Reason},
		{"WPM", fmt.Sprintf("%.1f", wpm)},
		{"CPM", fmt.Sprintf("%.1f", cpm)},
		{"Accuracy", fmt.Sprintf("%.1f%%", acc*100)},
		{"Duration", fmt.Sprintf("%.1fs", float64(s.DurationMs)/1000)},
		{"Keystrokes", fmt.Sprintf("%d", s.Keystrokes)},
		{"Backspaces", fmt.Sprintf("%d", s.Backspaces)},
	}
}

// CharRows returns per-character table rows, lowest accuracy first.
func CharRows(chars []model.CharStats) [][]string {
	sorted := SortByAccuracy(chars)
	rows := make([][]string, 0, len(sorted))
	for _, cs := range sorted {
		rows = append(rows, []string{
			cs.Char,
			fmt.Sprintf("%.2f%%", CharAccuracy(cs)*100),
			fmt.Sprintf("%.1f", CharLatency(cs)),
			fmt.Sprintf("%d", cs.Correct),
			fmt.Sprintf("%d", cs.Incorrect),
		})
	}
	return rows
}

// CharHeaders are the column titles for CharRows.
var CharHeaders = []string{"Char", "Accuracy", "Avg Latency (ms)", "Correct", "Incorrect"}

// RenderSummary prints the round summary as aligned text.
func RenderSummary(w io.Writer, s model.RoundSummary) error {
	if _, err := fmt.Fprintf(w, "Round %s\n", s.SessionID); err != nil {
		return err
	}
	for _, line := range formatTable(nil, SummaryRows(s), map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderCharTable(w, s.Chars)
}

// RenderCharTable prints per-character stats.
func RenderCharTable(w io.Writer, chars []model.CharStats) error {
	if len(chars) == 0 {
		_, err := fmt.Fprintln(w, "No character stats recorded.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Per-Character"); err != nil {
		return err
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(CharHeaders, CharRows(chars), rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
