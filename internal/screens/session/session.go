package session

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/quiz"
	"github.com/faraz/beestudy/internal/router"
	"github.com/faraz/beestudy/internal/screen"
	"github.com/faraz/beestudy/internal/screens/summary"
	"github.com/faraz/beestudy/internal/ui/components"
	"github.com/faraz/beestudy/internal/ui/layout"
	"github.com/faraz/beestudy/internal/ui/theme"
)

// SessionScreen drives one practice session question by question.
type SessionScreen struct {
	engine   *quiz.Engine
	provider *content.Provider
	prog     *progress.Service

	choices      components.ChoiceList
	input        components.TextInput
	attempt      string
	lastCorrect  bool
	explainTopic content.Topic
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen over the selected questions. An empty
// selection completes on the spot and goes straight to the summary.
func New(mode quiz.Mode, questions []content.Question, provider *content.Provider, prog *progress.Service) *SessionScreen {
	s := &SessionScreen{
		engine:   quiz.NewEngine(context.Background(), mode, questions, provider, prog),
		provider: provider,
		prog:     prog,
	}
	s.prepareQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.engine.Phase() == quiz.PhaseComplete {
		return s.toSummary()
	}
	if q, ok := s.engine.Current(); ok && !q.HasChoices() {
		return s.input.Init()
	}
	return nil
}

// prepareQuestion resets per-question UI state for the current index.
func (s *SessionScreen) prepareQuestion() {
	q, ok := s.engine.Current()
	if !ok {
		return
	}

	s.attempt = ""
	if !q.HasChoices() {
		s.input = components.NewTextInput("Type your answer (optional)...", false, 120)
		return
	}

	keys := make([]string, 0, len(content.ChoiceKeys))
	for _, k := range content.ChoiceKeys {
		if _, present := q.AnswerChoices[k]; present {
			keys = append(keys, k)
		}
	}
	s.choices = components.NewChoiceList(keys, q.AnswerChoices, q.CorrectAnswer)
}

// retrySessionSize is the question count for a practice-missed follow-up.
const retrySessionSize = 10

func (s *SessionScreen) toSummary() tea.Cmd {
	engine := s.engine
	provider := s.provider
	prog := s.prog
	return func() tea.Msg {
		sum := summary.New(engine.Subject(), engine.Mode(), engine.Score(), engine.Total(), engine.MissedTopicIDs(), provider)

		missed := make(map[string]bool)
		for _, id := range engine.MissedTopicIDs() {
			if id != "" {
				missed[id] = true
			}
		}
		if len(missed) > 0 {
			sum = sum.WithRetry(func() screen.Screen {
				questions := provider.SelectQuestions(content.SelectOpts{
					TopicIDs: missed,
					Limit:    retrySessionSize,
				})
				return New(quiz.ModeMultipleChoice, questions, provider, prog)
			})
		}

		return router.ReplaceScreenMsg{Screen: sum}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch s.engine.Phase() {
	case quiz.PhasePresenting:
		return s.updatePresenting(msg, kmsg, isKey)
	case quiz.PhaseResolved:
		if isKey {
			return s.updateResolved(kmsg)
		}
	case quiz.PhaseExplaining:
		if isKey && kmsg.String() == "enter" {
			return s.advance()
		}
	}

	return s, nil
}

func (s *SessionScreen) updatePresenting(msg tea.Msg, kmsg tea.KeyMsg, isKey bool) (screen.Screen, tea.Cmd) {
	q, ok := s.engine.Current()
	if !ok {
		return s, nil
	}

	if q.HasChoices() {
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(msg)
		if s.choices.Submitted {
			s.lastCorrect = s.choices.IsCorrect()
			s.engine.SubmitChoice(s.choices.ChosenKey)
		}
		return s, cmd
	}

	// Self-reported grading path. Before the reveal, keys go to the
	// optional answer input; Enter locks the attempt and shows the answer.
	if !s.engine.Revealed() {
		if isKey && kmsg.String() == "enter" {
			s.attempt = strings.TrimSpace(s.input.Value())
			s.engine.Reveal()
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	if !isKey {
		return s, nil
	}
	switch kmsg.String() {
	case "y", "Y":
		s.lastCorrect = true
		s.engine.ReportSelf(true)
	case "n", "N":
		s.lastCorrect = false
		s.engine.ReportSelf(false)
	}
	return s, nil
}

func (s *SessionScreen) updateResolved(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "e", "E":
		if topic, ok := s.engine.Explain(); ok {
			s.explainTopic = topic
		}
		return s, nil
	case "enter":
		return s.advance()
	}
	return s, nil
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	s.engine.Advance(context.Background())
	if s.engine.Phase() == quiz.PhaseComplete {
		return s, s.toSummary()
	}
	s.prepareQuestion()
	return s, nil
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.engine.Phase() {
	case quiz.PhasePresenting:
		if q, ok := s.engine.Current(); ok && !q.HasChoices() {
			if s.engine.Revealed() {
				return []layout.KeyHint{
					{Key: "Y", Description: "I got it"},
					{Key: "N", Description: "I missed it"},
				}
			}
			return []layout.KeyHint{
				{Key: "Enter", Description: "Show answer"},
				{Key: "Esc", Description: "Abandon"},
			}
		}
		return []layout.KeyHint{
			{Key: "W/X/Y/Z", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case quiz.PhaseResolved:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
		if s.explainAvailable() {
			hints = append([]layout.KeyHint{{Key: "E", Description: "Explain"}}, hints...)
		}
		return hints
	case quiz.PhaseExplaining:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	}
	return nil
}

func (s *SessionScreen) explainAvailable() bool {
	q, ok := s.engine.Current()
	if !ok {
		return false
	}
	_, found := s.provider.TopicByID(q.TopicID)
	return found
}

func (s *SessionScreen) View(width, height int) string {
	var body string
	switch s.engine.Phase() {
	case quiz.PhasePresenting:
		body = s.viewPresenting(width)
	case quiz.PhaseResolved:
		body = s.viewResolved(width)
	case quiz.PhaseExplaining:
		body = s.viewExplaining(width)
	default:
		body = theme.Subtitle.Render("Wrapping up...")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *SessionScreen) viewHeader() string {
	return theme.Subtitle.Render(fmt.Sprintf(
		"%s  —  Question %d of %d  —  Score %d",
		s.engine.Mode().Label(), s.engine.Index()+1, s.engine.Total(), s.engine.Score(),
	))
}

func (s *SessionScreen) viewPresenting(width int) string {
	q, ok := s.engine.Current()
	if !ok {
		return ""
	}

	wrap := lipgloss.NewStyle().Width(min(width-8, 72))
	var b strings.Builder
	b.WriteString(s.viewHeader() + "\n\n")
	b.WriteString(wrap.Foreground(theme.Text).Bold(true).Render(q.QuestionText) + "\n\n")

	if q.HasChoices() {
		b.WriteString(s.choices.View())
	} else if s.engine.Revealed() {
		if s.attempt != "" {
			b.WriteString(theme.Body.Render("Your answer: "+s.attempt) + "\n")
		}
		b.WriteString(theme.SectionHeading.Render("Answer") + "\n")
		b.WriteString(wrap.Foreground(theme.Success).Render(q.CorrectAnswer) + "\n\n")
		b.WriteString(theme.Hint.Render("Did you get it right?"))
	} else {
		b.WriteString(s.input.View() + "\n\n")
		b.WriteString(theme.Hint.Render("Think it through, then press Enter to see the answer."))
	}

	return b.String()
}

func (s *SessionScreen) viewResolved(width int) string {
	q, _ := s.engine.Current()
	wrap := lipgloss.NewStyle().Width(min(width-8, 72))

	var b strings.Builder
	b.WriteString(s.viewHeader() + "\n\n")

	if s.lastCorrect {
		b.WriteString(theme.Correct.Render("✓ Correct!") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Not quite.") + "\n\n")
		answer := q.CorrectAnswer
		if q.HasChoices() {
			answer = fmt.Sprintf("%s) %s", q.CorrectAnswer, q.AnswerChoices[q.CorrectAnswer])
		}
		b.WriteString(wrap.Foreground(theme.Text).Render("Correct answer: "+answer) + "\n\n")
	}

	if s.explainAvailable() {
		b.WriteString(theme.Hint.Render("Press E to review the topic, or Enter for the next question."))
	} else {
		b.WriteString(theme.Hint.Render("Press Enter for the next question."))
	}

	return b.String()
}

func (s *SessionScreen) viewExplaining(width int) string {
	wrap := lipgloss.NewStyle().Width(min(width-8, 72))

	var b strings.Builder
	b.WriteString(s.viewHeader() + "\n\n")
	b.WriteString(theme.SectionHeading.Render(s.explainTopic.Title) + "\n\n")
	b.WriteString(wrap.Foreground(theme.Text).Render(s.explainTopic.WhatIsIt) + "\n\n")

	if len(s.explainTopic.NSBTraps) > 0 {
		b.WriteString(theme.TrapWarning.Render(wrap.Render("⚠ "+s.explainTopic.NSBTraps[0])) + "\n\n")
	}

	b.WriteString(theme.Hint.Render("Press Enter to continue."))
	return b.String()
}

func (s *SessionScreen) Title() string {
	return "Session"
}
