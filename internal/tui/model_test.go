package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/monclitype/internal/engine"
	"github.com/verte-zerg/monclitype/internal/session"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want engine.KeySymbol
	}{
		{tea.KeyMsg{Type: tea.KeyEsc}, engine.EscapeKey()},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, engine.EscapeKey()},
		{tea.KeyMsg{Type: tea.KeyBackspace}, engine.BackspaceKey()},
		{tea.KeyMsg{Type: tea.KeySpace}, engine.Char(' ')},
		{tea.KeyMsg{Type: tea.KeyLeft}, engine.OtherKey()},
		{runes("q"), engine.Char('q')},
	}
	for _, tc := range cases {
		got := translateKey(tc.msg)
		if len(got) != 1 || got[0].Symbol != tc.want || got[0].Kind != session.Press {
			t.Fatalf("%v: expected %v, got %+v", tc.msg, tc.want, got)
		}
	}
}

func TestTranslateKeyPaste(t *testing.T) {
	got := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true})
	if len(got) != 2 || got[0].Symbol != engine.Char('a') || got[1].Symbol != engine.Char('b') {
		t.Fatalf("expected one input per pasted rune, got %+v", got)
	}
}

func TestUpdateCompletesRound(t *testing.T) {
	m := NewModel(session.New("hi"))
	if _, cmd := m.Update(runes("h")); cmd != nil {
		t.Fatalf("expected no command while playing")
	}
	_, cmd := m.Update(runes("i"))
	if cmd == nil {
		t.Fatalf("expected quit command on completion")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if m.Frame().Reason != session.Completed {
		t.Fatalf("expected completed, got %v", m.Frame().Reason)
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after finish")
	}
}

func TestUpdateEscapeQuits(t *testing.T) {
	m := NewModel(session.New("hello"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || m.Frame().Reason != session.UserExit {
		t.Fatalf("expected user exit, got %v", m.Frame().Reason)
	}
}

func TestPasteStopsAtFinish(t *testing.T) {
	ctrl := session.New("ab")
	m := NewModel(ctrl)
	m.Update(runes("abcd"))
	if m.Frame().Reason != session.Completed {
		t.Fatalf("expected completed, got %v", m.Frame().Reason)
	}
	if len(ctrl.Events()) != 2 {
		t.Fatalf("expected input after completion to be dropped, got %d events", len(ctrl.Events()))
	}
}

func TestViewShowsTitleAndFooter(t *testing.T) {
	m := NewModel(session.New("one two"))
	m.Update(runes("one "))
	out := m.View()
	for _, want := range []string{"MoncliType", "Word 2/2", "Progress 50%", "Press <ESC> to exit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if out := m.View(); !strings.Contains(out, "MoncliType") {
		t.Fatalf("sized view missing title:\n%s", out)
	}
}
