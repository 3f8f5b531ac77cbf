package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/quiz"
	"github.com/faraz/beestudy/internal/router"
	"github.com/faraz/beestudy/internal/screen"
	"github.com/faraz/beestudy/internal/screens/session"
	"github.com/faraz/beestudy/internal/ui/layout"
	"github.com/faraz/beestudy/internal/ui/theme"
)

// sessionSizes are the selectable question counts.
var sessionSizes = []int{10, 20, 30}

const (
	rowSubject = iota
	rowDifficulty
	rowCount
	rowStart
	rowMax
)

// settingsScreen picks subject, difficulty, and question count for a session.
type settingsScreen struct {
	mode     quiz.Mode
	provider *content.Provider
	prog     *progress.Service

	row        int
	subjectIdx int // 0 = all subjects, 1.. = AllSubjects()[idx-1]
	diffIdx    int // 0 = any, 1 = grade6, 2 = grade7
	countIdx   int
}

var _ screen.Screen = (*settingsScreen)(nil)
var _ screen.KeyHintProvider = (*settingsScreen)(nil)

func newSettings(mode quiz.Mode, provider *content.Provider, prog *progress.Service) *settingsScreen {
	return &settingsScreen{
		mode:     mode,
		provider: provider,
		prog:     prog,
	}
}

func (s *settingsScreen) Init() tea.Cmd {
	return nil
}

func (s *settingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < rowMax-1 {
			s.row++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "enter":
		if s.row == rowStart {
			return s, s.start()
		}
		s.cycle(1)
	}

	return s, nil
}

func (s *settingsScreen) cycle(dir int) {
	switch s.row {
	case rowSubject:
		n := len(content.AllSubjects()) + 1
		s.subjectIdx = (s.subjectIdx + dir + n) % n
	case rowDifficulty:
		s.diffIdx = (s.diffIdx + dir + 3) % 3
	case rowCount:
		n := len(sessionSizes)
		s.countIdx = (s.countIdx + dir + n) % n
	}
}

func (s *settingsScreen) opts() content.SelectOpts {
	opts := content.SelectOpts{Limit: sessionSizes[s.countIdx]}
	if s.subjectIdx > 0 {
		opts.Subject = content.AllSubjects()[s.subjectIdx-1]
	}
	switch s.diffIdx {
	case 1:
		opts.Difficulty = content.DifficultyGrade6
	case 2:
		opts.Difficulty = content.DifficultyGrade7
	}
	return opts
}

func (s *settingsScreen) start() tea.Cmd {
	mode := s.mode
	provider := s.provider
	prog := s.prog
	opts := s.opts()
	return func() tea.Msg {
		questions := provider.SelectQuestions(opts)
		return router.PushScreenMsg{Screen: session.New(mode, questions, provider, prog)}
	}
}

func (s *settingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *settingsScreen) subjectLabel() string {
	if s.subjectIdx == 0 {
		return "All Subjects"
	}
	subject := content.AllSubjects()[s.subjectIdx-1]
	return fmt.Sprintf("%s %s", subject.Emoji(), subject)
}

func (s *settingsScreen) difficultyLabel() string {
	switch s.diffIdx {
	case 1:
		return "Grade 6"
	case 2:
		return "Grade 7"
	default:
		return "Any"
	}
}

func (s *settingsScreen) View(width, height int) string {
	rows := []struct {
		label string
		value string
	}{
		{"Subject", s.subjectLabel()},
		{"Difficulty", s.difficultyLabel()},
		{"Questions", fmt.Sprintf("%d", sessionSizes[s.countIdx])},
		{"", "START"},
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.mode.Label()) + "\n\n")

	for i, row := range rows {
		var line string
		if row.label != "" {
			line = fmt.Sprintf("%-12s ◂ %s ▸", row.label, row.value)
		} else {
			line = row.value
		}

		if i == s.row {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (s *settingsScreen) Title() string {
	return "Session Setup"
}
