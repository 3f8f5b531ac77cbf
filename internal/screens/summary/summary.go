package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/quiz"
	"github.com/faraz/beestudy/internal/router"
	"github.com/faraz/beestudy/internal/screen"
	"github.com/faraz/beestudy/internal/ui/layout"
	"github.com/faraz/beestudy/internal/ui/theme"
)

// SummaryScreen shows the outcome of a completed session.
type SummaryScreen struct {
	subject string
	mode    quiz.Mode
	score   int
	total   int

	// missedTitles holds resolved topic titles, deduplicated, in miss order.
	// Unresolvable and empty topic ids are filtered out before display.
	missedTitles []string

	// retry, when set, builds a fresh session over the missed topics.
	retry func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary for a finished session.
func New(subject string, mode quiz.Mode, score, total int, missedTopicIDs []string, provider *content.Provider) *SummaryScreen {
	seen := make(map[string]bool)
	var titles []string
	for _, id := range missedTopicIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if topic, ok := provider.TopicByID(id); ok {
			titles = append(titles, topic.Title)
		}
	}

	return &SummaryScreen{
		subject:      subject,
		mode:         mode,
		score:        score,
		total:        total,
		missedTitles: titles,
	}
}

// WithRetry enables the practice-missed-topics shortcut. The factory is
// supplied by the session screen, which knows how to build its successor.
func (s *SummaryScreen) WithRetry(factory func() screen.Screen) *SummaryScreen {
	s.retry = factory
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "p", "P":
		if s.retry != nil && len(s.missedTitles) > 0 {
			next := s.retry()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
	if s.retry != nil && len(s.missedTitles) > 0 {
		hints = append([]layout.KeyHint{{Key: "P", Description: "Practice missed"}}, hints...)
	}
	return hints
}

// Headline picks the encouragement line for the score ratio.
func (s *SummaryScreen) Headline() string {
	if s.total == 0 {
		return "No questions this time."
	}
	switch ratio := float64(s.score) / float64(s.total); {
	case ratio >= 0.9:
		return "Outstanding! Bee champion material."
	case ratio >= 0.7:
		return "Nice work! Keep that momentum."
	case ratio >= 0.5:
		return "Good effort. A little more review will pay off."
	default:
		return "Tough round. Hit the weak topics and try again."
	}
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Session Complete") + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s  —  %s", s.subject, s.mode.Label())) + "\n\n")

	scoreStyle := theme.Correct
	if s.total > 0 && s.score*2 < s.total {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d / %d", s.score, s.total)) + "\n")
	b.WriteString(theme.Body.Render(s.Headline()) + "\n")

	if len(s.missedTitles) > 0 {
		b.WriteString("\n" + theme.SectionHeading.Render("Topics to review") + "\n")
		for _, title := range s.missedTitles {
			b.WriteString(theme.Body.Render("• "+title) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}
