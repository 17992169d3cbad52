package engine

// AlignKind identifies the variant of an AlignmentTag.
type AlignKind int

const (
	// AlignBoth means both words have a character at the position.
	AlignBoth AlignKind = iota + 1
	// AlignOnlyLeft means only the typed word reaches the position.
	AlignOnlyLeft
	// AlignOnlyRight means only the target word reaches the position.
	AlignOnlyRight
)

// AlignmentTag compares one position of a typed word (left) and a target word (right).
type AlignmentTag struct {
	Kind  AlignKind
	Left  rune
	Right rune
}

// Both tags a position present in both words.
func Both(left, right rune) AlignmentTag {
	return AlignmentTag{Kind: AlignBoth, Left: left, Right: right}
}

// OnlyLeft tags a position typed beyond the end of the target word.
func OnlyLeft(left rune) AlignmentTag {
	return AlignmentTag{Kind: AlignOnlyLeft, Left: left}
}

// OnlyRight tags a target position not yet typed.
func OnlyRight(right rune) AlignmentTag {
	return AlignmentTag{Kind: AlignOnlyRight, Right: right}
}

// WordAlignment is the per-position comparison of one typed word with its target word.
type WordAlignment []AlignmentTag

// Exact reports whether every position is present in both words,
// i.e. the typed word has the target word's length.
func (w WordAlignment) Exact() bool {
	for _, tag := range w {
		if tag.Kind != AlignBoth {
			return false
		}
	}
	return true
}

// AlignWord pairs the runes of input and target position by position up to
// the length of the longer word.
func AlignWord(input, target string) WordAlignment {
	in := []rune(input)
	tg := []rune(target)
	n := max(len(in), len(tg))
	out := make(WordAlignment, 0, n)
	for i := 0; i < n; i++ {
		switch {
		case i < len(in) && i < len(tg):
			out = append(out, Both(in[i], tg[i]))
		case i < len(in):
			out = append(out, OnlyLeft(in[i]))
		default:
			out = append(out, OnlyRight(tg[i]))
		}
	}
	return out
}
