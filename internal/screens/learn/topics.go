package learn

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/router"
	"github.com/faraz/beestudy/internal/screen"
	"github.com/faraz/beestudy/internal/screens/topicdetail"
	"github.com/faraz/beestudy/internal/ui/components"
)

// topicListScreen lists one subject's topics with their reviewed state.
type topicListScreen struct {
	subject  content.Subject
	topics   []content.Topic
	menu     components.Menu
	provider *content.Provider
	prog     *progress.Service
}

var _ screen.Screen = (*topicListScreen)(nil)

func newTopicList(subject content.Subject, provider *content.Provider, prog *progress.Service) *topicListScreen {
	s := &topicListScreen{
		subject:  subject,
		topics:   provider.TopicsBySubject(subject),
		provider: provider,
		prog:     prog,
	}
	s.rebuildMenu()

	// Reviewed marks change while this screen is below a detail screen
	// on the stack, so refresh labels on every mutation.
	prog.Subscribe(s.rebuildMenu)
	return s
}

func (s *topicListScreen) rebuildMenu() {
	selected := s.menu.Selected
	items := make([]components.MenuItem, 0, len(s.topics))
	for _, topic := range s.topics {
		topic := topic
		mark := "  "
		if s.prog.IsReviewed(topic.ID) {
			mark = "✓ "
		}
		items = append(items, components.MenuItem{
			Label: mark + topic.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: topicdetail.New(topic, s.provider, s.prog)}
				}
			},
		})
	}
	s.menu = components.NewMenu(items)
	if selected < len(items) {
		s.menu.Selected = selected
	}
}

func (s *topicListScreen) Init() tea.Cmd {
	return nil
}

func (s *topicListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *topicListScreen) View(width, height int) string {
	reviewed := 0
	for _, t := range s.topics {
		if s.prog.IsReviewed(t.ID) {
			reviewed++
		}
	}
	header := fmt.Sprintf("%s  %s  —  %d of %d reviewed\n\n", s.subject.Emoji(), s.subject, reviewed, len(s.topics))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(header + s.menu.View())
}

func (s *topicListScreen) Title() string {
	return string(s.subject)
}
