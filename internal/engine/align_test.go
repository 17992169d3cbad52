package engine

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestAlignWordMatching(t *testing.T) {
	got := AlignWord("hw", "hw")
	want := WordAlignment{Both('h', 'h'), Both('w', 'w')}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAlignWordInputLonger(t *testing.T) {
	got := AlignWord("hw", "h")
	want := WordAlignment{Both('h', 'h'), OnlyLeft('w')}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAlignWordTargetLonger(t *testing.T) {
	got := AlignWord("h", "hw")
	want := WordAlignment{Both('h', 'h'), OnlyRight('w')}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAlignWordEmpty(t *testing.T) {
	if got := AlignWord("", ""); len(got) != 0 {
		t.Fatalf("expected empty alignment, got %v", got)
	}
}

func TestAlignWordTotality(t *testing.T) {
	words := []string{"", "a", "ab", "hello", "héllo", "worlds"}
	for _, left := range words {
		for _, right := range words {
			got := AlignWord(left, right)
			l := utf8.RuneCountInString(left)
			r := utf8.RuneCountInString(right)
			if len(got) != max(l, r) {
				t.Fatalf("AlignWord(%q, %q): expected length %d, got %d", left, right, max(l, r), len(got))
			}
			both := 0
			for _, tag := range got {
				if tag.Kind == AlignBoth {
					both++
				}
			}
			if both != min(l, r) {
				t.Fatalf("AlignWord(%q, %q): expected %d shared positions, got %d", left, right, min(l, r), both)
			}
		}
	}
}

func TestWordAlignmentExact(t *testing.T) {
	if !AlignWord("abc", "xyz").Exact() {
		t.Fatalf("expected equal-length words to align exactly")
	}
	if AlignWord("ab", "abc").Exact() {
		t.Fatalf("expected shorter input to be inexact")
	}
	if AlignWord("abcd", "abc").Exact() {
		t.Fatalf("expected longer input to be inexact")
	}
}
