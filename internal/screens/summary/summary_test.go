package summary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/quiz"
	"github.com/faraz/beestudy/internal/router"
	"github.com/faraz/beestudy/internal/screen"
)

const topicsJSON = `[
	{
		"id": "ls-cells",
		"subject": "Life Science",
		"title": "Cells",
		"whatIsIt": "The basic unit of life.",
		"howItWorks": "Organelles divide the labor.",
		"realWorldExample": "Your body has trillions.",
		"keyTerms": [],
		"nsbTraps": [],
		"didYouKnow": [],
		"relatedTopics": []
	}
]`

func testProvider(t *testing.T) *content.Provider {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, content.TopicsFile), []byte(topicsJSON), 0o644); err != nil {
		t.Fatalf("write topics: %v", err)
	}
	return content.Load(dir)
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New("Life Science", quiz.ModeMultipleChoice, 2, 3, nil, testProvider(t))
	if s.Title() != "Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New("Life Science", quiz.ModeMultipleChoice, 2, 3, []string{"ls-cells"}, testProvider(t))
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "2 / 3") {
		t.Error("expected score in view")
	}
	if !strings.Contains(view, "Cells") {
		t.Error("expected missed topic title in view")
	}
}

func TestSummaryScreen_FiltersUnresolvableMisses(t *testing.T) {
	missed := []string{"", "ls-cells", "ls-cells", "no-such-topic"}
	s := New("Life Science", quiz.ModeMultipleChoice, 0, 4, missed, testProvider(t))

	if len(s.missedTitles) != 1 {
		t.Fatalf("missed titles = %v, want exactly [Cells]", s.missedTitles)
	}
	if s.missedTitles[0] != "Cells" {
		t.Errorf("missed title = %q, want Cells", s.missedTitles[0])
	}
}

func TestSummaryScreen_ZeroQuestionSession(t *testing.T) {
	s := New("Mixed", quiz.ModeMultipleChoice, 0, 0, nil, testProvider(t))
	view := s.View(80, 24)
	if !strings.Contains(view, "0 / 0") {
		t.Error("expected 0 / 0 in view for an empty session")
	}
}

func TestSummaryScreen_Headline(t *testing.T) {
	tests := []struct {
		score, total int
		contains     string
	}{
		{10, 10, "Outstanding"},
		{7, 10, "Nice work"},
		{5, 10, "Good effort"},
		{1, 10, "Tough round"},
		{0, 0, "No questions"},
	}

	for _, tt := range tests {
		s := New("Math", quiz.ModeMultipleChoice, tt.score, tt.total, nil, testProvider(t))
		if got := s.Headline(); !strings.Contains(got, tt.contains) {
			t.Errorf("headline for %d/%d = %q, want contains %q", tt.score, tt.total, got, tt.contains)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New("Math", quiz.ModeMultipleChoice, 1, 2, nil, testProvider(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_PracticeMissedShortcut(t *testing.T) {
	s := New("Life Science", quiz.ModeMultipleChoice, 1, 3, []string{"ls-cells"}, testProvider(t))

	// Without a retry factory the key does nothing.
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"}); cmd != nil {
		t.Error("expected no command without a retry factory")
	}

	called := false
	s = s.WithRetry(func() screen.Screen {
		called = true
		return s
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if cmd == nil {
		t.Fatal("expected a command with a retry factory")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if !called {
		t.Error("expected the retry factory to run")
	}
}

func TestSummaryScreen_RetryHiddenWithoutMisses(t *testing.T) {
	s := New("Math", quiz.ModeMultipleChoice, 3, 3, nil, testProvider(t)).
		WithRetry(func() screen.Screen { return nil })

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"}); cmd != nil {
		t.Error("expected no retry with nothing missed")
	}
	if hints := s.KeyHints(); len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New("Math", quiz.ModeMultipleChoice, 1, 2, nil, testProvider(t))
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
