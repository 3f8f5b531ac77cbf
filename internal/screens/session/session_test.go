package session

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/quiz"
	"github.com/faraz/beestudy/internal/router"
	"github.com/faraz/beestudy/internal/screens/summary"
)

func testDeps(t *testing.T) (*content.Provider, *progress.Service) {
	t.Helper()
	provider := content.Load(t.TempDir())
	prog := progress.NewService(context.Background(), nil, nil)
	return provider, prog
}

func mcQuestion(id, correct string) content.Question {
	return content.Question{
		ID:           id,
		Subject:      "Life Science",
		Type:         content.TypeMultipleChoice,
		QuestionText: "Which organelle makes ATP?",
		AnswerChoices: map[string]string{
			"W": "Nucleus", "X": "Mitochondrion", "Y": "Ribosome", "Z": "Vacuole",
		},
		CorrectAnswer: correct,
		TopicID:       "ls-cells",
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSessionScreen_EmptySelectionGoesToSummary(t *testing.T) {
	provider, prog := testDeps(t)
	s := New(quiz.ModeMultipleChoice, nil, provider, prog)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a command for an empty session")
	}

	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}

	// The 0/0 result is recorded immediately.
	if got := len(prog.History(0)); got != 1 {
		t.Errorf("history = %d, want 1", got)
	}
}

func TestSessionScreen_MultipleChoiceFlow(t *testing.T) {
	provider, prog := testDeps(t)
	questions := []content.Question{mcQuestion("q1", "X")}
	s := New(quiz.ModeMultipleChoice, questions, provider, prog)

	if s.Init() != nil {
		t.Fatal("expected no command for a non-empty session")
	}

	// Answer with the correct letter.
	updated, _ := s.Update(keyPress('x'))
	s = updated.(*SessionScreen)
	if s.engine.Phase() != quiz.PhaseResolved {
		t.Fatalf("phase = %v, want resolved", s.engine.Phase())
	}
	if s.engine.Score() != 1 {
		t.Errorf("score = %d, want 1", s.engine.Score())
	}

	// Advancing past the last question hands off to the summary.
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SessionScreen)
	if cmd == nil {
		t.Fatal("expected a command after the last question")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}

	if got := len(prog.History(0)); got != 1 {
		t.Errorf("history = %d, want 1", got)
	}
	if r := prog.History(1)[0]; r.Score != 1 || r.Total != 1 {
		t.Errorf("recorded %d/%d, want 1/1", r.Score, r.Total)
	}
}

func TestSessionScreen_SelfReportFlow(t *testing.T) {
	provider, prog := testDeps(t)
	questions := []content.Question{{
		ID:            "q1",
		Subject:       "Chemistry",
		Type:          content.TypeFreeResponse,
		QuestionText:  "Name the positively charged particle in the nucleus.",
		CorrectAnswer: "proton",
		TopicID:       "ch-atoms",
	}}
	s := New(quiz.ModeFreeResponse, questions, provider, prog)

	// Self-report before reveal is ignored.
	updated, _ := s.Update(keyPress('y'))
	s = updated.(*SessionScreen)
	if s.engine.Phase() != quiz.PhasePresenting {
		t.Fatal("self-report should be ignored before the answer is shown")
	}

	// Reveal, then report a miss.
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SessionScreen)
	if !s.engine.Revealed() {
		t.Fatal("expected answer revealed")
	}

	updated, _ = s.Update(keyPress('n'))
	s = updated.(*SessionScreen)
	if s.engine.Phase() != quiz.PhaseResolved {
		t.Fatalf("phase = %v, want resolved", s.engine.Phase())
	}
	if got := s.engine.MissedTopicIDs(); len(got) != 1 || got[0] != "ch-atoms" {
		t.Errorf("missed = %v, want [ch-atoms]", got)
	}
}

func TestSessionScreen_View(t *testing.T) {
	provider, prog := testDeps(t)
	questions := []content.Question{mcQuestion("q1", "X")}
	s := New(quiz.ModeMultipleChoice, questions, provider, prog)

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	provider, prog := testDeps(t)
	questions := []content.Question{mcQuestion("q1", "X")}
	s := New(quiz.ModeMultipleChoice, questions, provider, prog)

	if hints := s.KeyHints(); len(hints) == 0 {
		t.Error("expected key hints while presenting")
	}
}
