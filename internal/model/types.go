// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	DictionaryPath string
	Words          int
	CapsPct        float64
	PunctPct       float64
	PunctSet       string
	ShowStats      bool
	Plain          bool
}

// LogConfig defines where and how verbosely the round is logged.
type LogConfig struct {
	Level string
	File  string
}

// RoundSummary captures a finished typing round.
type RoundSummary struct {
	SessionID  string
	Target     string
	Input      string
	Reason     string
	Passed     bool
	StartedAt  time.Time
	EndedAt    time.Time
	DurationMs int64
	Keystrokes int
	Backspaces int
	Correct    int
	Incorrect  int
	Chars      []CharStats
}

// CharStats stores per-character stats for a round.
type CharStats struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}
