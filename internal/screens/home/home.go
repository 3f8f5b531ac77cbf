package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/router"
	"github.com/faraz/beestudy/internal/screen"
	"github.com/faraz/beestudy/internal/screens/learn"
	"github.com/faraz/beestudy/internal/screens/practice"
	"github.com/faraz/beestudy/internal/screens/progressview"
	"github.com/faraz/beestudy/internal/ui/components"
	"github.com/faraz/beestudy/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	provider *content.Provider
	prog     *progress.Service
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(provider *content.Provider, prog *progress.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY TOPICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: learn.New(provider, prog)}
			}
		}},
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(provider, prog)}
			}
		}},
		{Label: "MY PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressview.New(provider, prog)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		provider: provider,
		prog:     prog,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("National Science Bee")
	subtitle := theme.Subtitle.Render("Study smart. Buzz in first.")

	stats := h.renderStats()

	sections := []string{
		title,
		subtitle,
		"",
		stats,
		"",
		h.menu.View(),
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderStats() string {
	streak := h.prog.CurrentStreak()
	reviewed := h.prog.ReviewedCount()
	weak := len(h.prog.WeakTopicIDs(0))

	parts := []string{
		fmt.Sprintf("★ %d day streak", streak),
		fmt.Sprintf("✓ %d topics reviewed", reviewed),
	}
	if weak > 0 {
		parts = append(parts, fmt.Sprintf("▲ %d weak topics", weak))
	}

	return theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Join(parts, "    ")),
	)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
