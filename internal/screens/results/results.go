package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/quiz"
	"github.com/abhisek/rekishi/internal/router"
	"github.com/abhisek/rekishi/internal/screen"
	"github.com/abhisek/rekishi/internal/sound"
	"github.com/abhisek/rekishi/internal/ui/layout"
	"github.com/abhisek/rekishi/internal/ui/theme"
)

// resultLoadedMsg carries the session result picked up from the store.
type resultLoadedMsg struct {
	Result *quiz.Result
	Found  bool
	Err    error
}

// ResultsScreen displays the outcome of a finished quiz session. The result
// travels through the store's transient handoff document rather than being
// passed directly, so the screen works no matter which path finished the
// session.
type ResultsScreen struct {
	store   *progress.Store
	restart func(review bool) screen.Screen

	result *quiz.Result
	errMsg string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. restart builds a fresh session screen for the
// same era, used by the retry and review actions.
func New(store *progress.Store, restart func(review bool) screen.Screen) *ResultsScreen {
	return &ResultsScreen{store: store, restart: restart}
}

func (s *ResultsScreen) Init() tea.Cmd {
	store := s.store
	return func() tea.Msg {
		var result quiz.Result
		found, err := store.TakeHandoff(context.Background(), &result)
		return resultLoadedMsg{Result: &result, Found: found, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "結果"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "R", Description: "もう一度"},
	}
	if s.result != nil && len(s.result.WrongAnswers) > 0 {
		hints = append(hints, layout.KeyHint{Key: "W", Description: "間違いを復習"})
	}
	hints = append(hints, layout.KeyHint{Key: "Enter/Esc", Description: "ホーム"})
	return hints
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if msg.Found {
			s.result = msg.Result
		} else {
			s.errMsg = "結果が見つかりませんでした"
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if s.restart != nil {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: s.restart(false)}
				}
			}
		case "w", "W":
			if s.restart != nil && s.result != nil && len(s.result.WrongAnswers) > 0 {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: s.restart(true)}
				}
			}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  結果の読み込みに失敗しました: " + s.errMsg)
	}
	r := s.result
	if r == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  集計中...")
	}

	var b strings.Builder

	title := "クイズ終了！"
	if r.Review {
		title = "復習終了！"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(r.Era.Name))
	b.WriteString("\n\n")

	// Score line with the mastery badge for this run's accuracy.
	level := progress.MasteryFor(r.Accuracy)
	scoreLine := fmt.Sprintf("%d / %d 問正解   正答率 %d%%   %s",
		r.Score, r.TotalQuestions, r.Accuracy, level.DisplayName())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n")

	mins := r.TimeSpentSeconds / 60
	secs := r.TimeSpentSeconds % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("所要時間 %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	if streak := longestStreak(r.Answers); streak >= sound.StreakCueThreshold {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("🔥 最大 %d 連続正解", streak)))
		b.WriteString("\n\n")
	}

	if len(r.WrongAnswers) > 0 {
		b.WriteString(s.renderWrongAnswers(width))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("全問正解！"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderWrongAnswers lists the missed questions with their explanations.
func (s *ResultsScreen) renderWrongAnswers(width int) string {
	var b strings.Builder

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("間違えた問題")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	textWidth := min(width-8, 70)
	for _, a := range s.result.WrongAnswers {
		q := a.Question

		qLine := lipgloss.NewStyle().
			Width(textWidth).
			Foreground(theme.Text).
			Bold(true).
			Render("Q. " + q.Question)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, qLine))
		b.WriteString("\n")

		aLine := lipgloss.NewStyle().
			Width(textWidth).
			Foreground(theme.Success).
			Render("正解: " + q.DisplayAnswer())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, aLine))
		b.WriteString("\n")

		if q.Explanation != "" {
			exp := lipgloss.NewStyle().
				Width(textWidth).
				Foreground(theme.TextDim).
				Render(q.Explanation)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// longestStreak returns the longest run of consecutive correct answers.
func longestStreak(answers []quiz.UserAnswer) int {
	best, run := 0, 0
	for _, a := range answers {
		if a.IsCorrect {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}
