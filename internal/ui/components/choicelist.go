package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/ui/theme"
)

// ChoiceList is a keyed answer-choice selector. Choices carry their NSB
// letter keys (W/X/Y/Z) and can be picked either by arrow navigation or
// by pressing the letter directly.
type ChoiceList struct {
	Keys       []string
	Labels     map[string]string
	CorrectKey string
	Selected   int
	Submitted  bool
	ChosenKey  string
}

// NewChoiceList creates a choice list over the given ordered keys.
func NewChoiceList(keys []string, labels map[string]string, correctKey string) ChoiceList {
	return ChoiceList{
		Keys:       keys,
		Labels:     labels,
		CorrectKey: correctKey,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection. Submission happens via enter on
// the highlighted choice or via a direct letter press.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Keys)-1 {
			c.Selected++
		}
	case "enter":
		if c.Selected >= 0 && c.Selected < len(c.Keys) {
			c.Submitted = true
			c.ChosenKey = c.Keys[c.Selected]
		}
	default:
		for i, k := range c.Keys {
			if key == k || (len(key) == 1 && key == lowerKey(k)) {
				c.Selected = i
				c.Submitted = true
				c.ChosenKey = k
			}
		}
	}

	return c, nil
}

func lowerKey(k string) string {
	if len(k) == 1 && k[0] >= 'A' && k[0] <= 'Z' {
		return string(k[0] + 'a' - 'A')
	}
	return k
}

// View renders the choices, coloring outcome after submission.
func (c ChoiceList) View() string {
	var s string
	for i, key := range c.Keys {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, key, c.Labels[key])

		switch {
		case c.Submitted && key == c.CorrectKey:
			s += theme.Correct.Render(line) + "\n"
		case c.Submitted && key == c.ChosenKey:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// IsCorrect returns true if the chosen key matches the correct one.
func (c ChoiceList) IsCorrect() bool {
	return c.Submitted && c.ChosenKey == c.CorrectKey
}
