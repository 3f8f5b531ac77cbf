package progressview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/quiz"
	"github.com/faraz/beestudy/internal/screen"
	"github.com/faraz/beestudy/internal/ui/components"
	"github.com/faraz/beestudy/internal/ui/theme"
)

// historyLimit bounds the recent-sessions table.
const historyLimit = 15

// weakLimit bounds the weak-topics list.
const weakLimit = 8

// ProgressScreen shows streak, session history, and weak topics.
type ProgressScreen struct {
	provider *content.Provider
	prog     *progress.Service
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates the progress overview screen.
func New(provider *content.Provider, prog *progress.Service) *ProgressScreen {
	return &ProgressScreen{provider: provider, prog: prog}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("My Progress") + "\n\n")
	b.WriteString(p.renderStats() + "\n\n")
	b.WriteString(p.renderCoverage() + "\n\n")
	b.WriteString(p.renderHistory() + "\n")
	b.WriteString(p.renderWeakTopics())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (p *ProgressScreen) renderStats() string {
	parts := []string{
		fmt.Sprintf("★ %d day streak", p.prog.CurrentStreak()),
		fmt.Sprintf("✓ %d topics reviewed", p.prog.ReviewedCount()),
		fmt.Sprintf("%d sessions", len(p.prog.History(0))),
	}
	if last := p.prog.LastStudyDate(); last != nil {
		parts = append(parts, "last studied "+last.Format("Jan 2"))
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Join(parts, "    "))
}

func (p *ProgressScreen) renderCoverage() string {
	total := len(p.provider.Topics())
	if total == 0 {
		return theme.Hint.Render("No topics loaded.")
	}
	percent := float64(p.prog.ReviewedCount()) / float64(total)
	return components.NewProgressBar("Topics reviewed", percent, true, 48).View()
}

func (p *ProgressScreen) renderHistory() string {
	history := p.prog.History(historyLimit)
	if len(history) == 0 {
		return theme.Hint.Render("No sessions yet. Head to Practice to get started.") + "\n"
	}

	var b strings.Builder
	b.WriteString(theme.SectionHeading.Render("Recent Sessions") + "\n")
	for _, r := range history {
		line := fmt.Sprintf("%s  %-22s %-16s %d/%d",
			r.Date.Format("Jan 2"), r.Subject, quiz.Mode(r.Mode).Label(), r.Score, r.Total)

		style := theme.Body
		if r.Total > 0 && r.Score*2 < r.Total {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

func (p *ProgressScreen) renderWeakTopics() string {
	weak := p.prog.WeakTopicIDs(weakLimit)

	var lines []string
	for _, id := range weak {
		topic, ok := p.provider.TopicByID(id)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("▲ %-30s missed %d×", topic.Title, p.prog.WrongCount(id)))
	}

	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n" + theme.SectionHeading.Render("Weak Topics") + "\n")
	for _, line := range lines {
		b.WriteString(theme.TrapWarning.Render(line) + "\n")
	}
	return b.String()
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}
