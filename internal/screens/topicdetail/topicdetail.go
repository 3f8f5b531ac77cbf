package topicdetail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/screen"
	"github.com/faraz/beestudy/internal/ui/layout"
	"github.com/faraz/beestudy/internal/ui/theme"
)

// DetailScreen renders one topic's study sections with scrolling.
type DetailScreen struct {
	topic    content.Topic
	provider *content.Provider
	prog     *progress.Service
	offset   int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a topic detail screen.
func New(topic content.Topic, provider *content.Provider, prog *progress.Service) *DetailScreen {
	return &DetailScreen{
		topic:    topic,
		provider: provider,
		prog:     prog,
	}
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if d.offset > 0 {
			d.offset--
		}
	case "down", "j":
		d.offset++
	case "r":
		if !d.prog.IsReviewed(d.topic.ID) {
			d.prog.MarkReviewed(context.Background(), d.topic.ID)
		}
	}

	return d, nil
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
	if !d.prog.IsReviewed(d.topic.ID) {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Mark reviewed"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (d *DetailScreen) View(width, height int) string {
	contentWidth := width - 8
	if contentWidth < 40 {
		contentWidth = 40
	}

	body := d.renderSections(contentWidth)
	lines := strings.Split(body, "\n")

	// Clamp the scroll offset to the rendered content.
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if d.offset > maxOffset {
		d.offset = maxOffset
	}

	visible := lines[d.offset:]
	if len(visible) > height {
		visible = visible[:height]
	}

	return lipgloss.NewStyle().
		PaddingLeft(4).
		Render(strings.Join(visible, "\n"))
}

func (d *DetailScreen) renderSections(width int) string {
	wrap := lipgloss.NewStyle().Width(width).Foreground(theme.Text)
	heading := theme.SectionHeading

	var b strings.Builder

	title := d.topic.Title
	if d.prog.IsReviewed(d.topic.ID) {
		title += "  ✓"
	}
	b.WriteString(theme.Title.Render(title) + "\n")
	b.WriteString(theme.Subtitle.Render(d.topic.Subject) + "\n\n")

	section := func(name, text string) {
		if text == "" {
			return
		}
		b.WriteString(heading.Render(name) + "\n")
		b.WriteString(wrap.Render(text) + "\n\n")
	}

	section("What Is It?", d.topic.WhatIsIt)
	section("How It Works", d.topic.HowItWorks)
	section("Real-World Example", d.topic.RealWorldExample)

	if len(d.topic.KeyTerms) > 0 {
		b.WriteString(heading.Render("Key Terms to Know") + "\n")
		for _, kt := range d.topic.KeyTerms {
			line := fmt.Sprintf("• %s — %s", kt.Term, kt.Definition)
			b.WriteString(wrap.Render(line) + "\n")
		}
		b.WriteString("\n")
	}

	if len(d.topic.NSBTraps) > 0 {
		b.WriteString(heading.Render("NSB Traps") + "\n")
		for _, trap := range d.topic.NSBTraps {
			b.WriteString(theme.TrapWarning.Render(wrap.Render("⚠ "+trap)) + "\n")
		}
		b.WriteString("\n")
	}

	if len(d.topic.DidYouKnow) > 0 {
		b.WriteString(heading.Render("Did You Know?") + "\n")
		for _, fact := range d.topic.DidYouKnow {
			b.WriteString(wrap.Render("• "+fact) + "\n")
		}
		b.WriteString("\n")
	}

	// Unresolvable related ids are dropped rather than shown broken.
	related := d.provider.RelatedTopics(d.topic)
	if len(related) > 0 {
		b.WriteString(heading.Render("Related Topics") + "\n")
		for _, rt := range related {
			b.WriteString(wrap.Render("→ "+rt.Title) + "\n")
		}
	}

	return b.String()
}

func (d *DetailScreen) Title() string {
	return "Topic"
}
