package learn

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/router"
	"github.com/faraz/beestudy/internal/screen"
	"github.com/faraz/beestudy/internal/ui/components"
)

// LearnScreen lists the six subjects for browsing study topics.
type LearnScreen struct {
	menu     components.Menu
	provider *content.Provider
	prog     *progress.Service
}

var _ screen.Screen = (*LearnScreen)(nil)

// New creates the subject list screen.
func New(provider *content.Provider, prog *progress.Service) *LearnScreen {
	items := make([]components.MenuItem, 0, len(content.AllSubjects()))
	for _, subject := range content.AllSubjects() {
		subject := subject
		topics := provider.TopicsBySubject(subject)
		label := fmt.Sprintf("%s  %s (%d topics)", subject.Emoji(), subject, len(topics))
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: len(topics) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newTopicList(subject, provider, prog)}
				}
			},
		})
	}

	return &LearnScreen{
		menu:     components.NewMenu(items),
		provider: provider,
		prog:     prog,
	}
}

func (l *LearnScreen) Init() tea.Cmd {
	return nil
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LearnScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(l.menu.View())
}

func (l *LearnScreen) Title() string {
	return "Study Topics"
}
