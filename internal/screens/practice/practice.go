package practice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/quiz"
	"github.com/faraz/beestudy/internal/router"
	"github.com/faraz/beestudy/internal/screen"
	"github.com/faraz/beestudy/internal/screens/session"
	"github.com/faraz/beestudy/internal/ui/components"
	"github.com/faraz/beestudy/internal/ui/theme"
)

// weakTopicSessionSize is the question count for weak-topic practice.
const weakTopicSessionSize = 10

// PracticeScreen is the practice mode menu.
type PracticeScreen struct {
	menu     components.Menu
	provider *content.Provider
	prog     *progress.Service
}

var _ screen.Screen = (*PracticeScreen)(nil)

// New creates the practice menu screen.
func New(provider *content.Provider, prog *progress.Service) *PracticeScreen {
	modes := []quiz.Mode{quiz.ModeMultipleChoice, quiz.ModeTossUp, quiz.ModeFreeResponse}

	items := make([]components.MenuItem, 0, len(modes)+1)
	for _, mode := range modes {
		mode := mode
		items = append(items, components.MenuItem{
			Label: mode.Label(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newSettings(mode, provider, prog)}
				}
			},
		})
	}

	weak := prog.WeakTopicIDs(0)
	items = append(items, components.MenuItem{
		Label:    "Practice Weak Topics",
		Disabled: len(weak) == 0,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				topicIDs := make(map[string]bool, len(weak))
				for _, id := range weak {
					topicIDs[id] = true
				}
				questions := provider.SelectQuestions(content.SelectOpts{
					TopicIDs: topicIDs,
					Limit:    weakTopicSessionSize,
				})
				return router.PushScreenMsg{
					Screen: session.New(quiz.ModeMultipleChoice, questions, provider, prog),
				}
			}
		},
	})

	return &PracticeScreen{
		menu:     components.NewMenu(items),
		provider: provider,
		prog:     prog,
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) View(width, height int) string {
	header := theme.Title.Render("Practice") + "\n" +
		theme.Subtitle.Render("Pick a quiz format") + "\n\n"

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(header + p.menu.View())
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}
