package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
	"github.com/abhisek/rekishi/internal/router"
	"github.com/abhisek/rekishi/internal/screen"
	"github.com/abhisek/rekishi/internal/ui/components"
	"github.com/abhisek/rekishi/internal/ui/layout"
	"github.com/abhisek/rekishi/internal/ui/theme"
)

// recentDays is how many daily buckets the activity section shows.
const recentDays = 7

// StatsScreen displays lifetime study statistics: the aggregate counters,
// recent daily activity, and a per-era accuracy table.
type StatsScreen struct {
	provider *questions.Provider
	store    *progress.Store
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(provider *questions.Provider, store *progress.Store) *StatsScreen {
	return &StatsScreen{provider: provider, store: store}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "学習記録"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "戻る"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	stats := s.store.Stats
	prog := s.store.Progress

	var b strings.Builder
	b.WriteString("\n")

	if stats.TotalQuestionsAnswered == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  まだ記録がありません。クイズに挑戦しましょう！")
	}

	// Lifetime counters.
	hours := stats.TotalStudyTimeMinutes / 60
	minutes := stats.TotalStudyTimeMinutes % 60
	timeStr := fmt.Sprintf("%d分", minutes)
	if hours > 0 {
		timeStr = fmt.Sprintf("%d時間%d分", hours, minutes)
	}

	summary := fmt.Sprintf("回答数 %d   正解 %d   正答率 %d%%   学習時間 %s",
		stats.TotalQuestionsAnswered, stats.CorrectAnswers, stats.OverallAccuracy, timeStr)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(summary))
	b.WriteString("\n")

	streakLine := fmt.Sprintf("🔥 連続学習 %d日   セッション %d回",
		prog.ConsecutiveStudyDays, prog.TotalStudySessions)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
		Render(streakLine))
	b.WriteString("\n\n")

	b.WriteString(s.renderDailyActivity(width))
	b.WriteString(s.renderEraTable(width))

	return b.String()
}

// renderDailyActivity shows the most recent daily buckets, newest first.
func (s *StatsScreen) renderDailyActivity(width int) string {
	daily := s.store.Progress.DailyStats
	if len(daily) == 0 {
		return ""
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > recentDays {
		dates = dates[:recentDays]
	}

	var b strings.Builder
	b.WriteString(sectionHeader(width, "最近の学習"))

	for _, d := range dates {
		day := daily[d]
		acc := 0
		if day.QuestionsAnswered > 0 {
			acc = (day.CorrectAnswers*100*2 + day.QuestionsAnswered) / (day.QuestionsAnswered * 2)
		}

		label := d
		if t, err := time.Parse(progress.DateLayout, d); err == nil {
			label = t.Format("1月2日")
		}

		line := fmt.Sprintf("  %s    %d問  正答率 %d%%  %d分",
			label, day.QuestionsAnswered, acc, day.StudyTimeMinutes)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

// renderEraTable shows per-era accuracy bars in catalog order.
func (s *StatsScreen) renderEraTable(width int) string {
	eras := s.provider.LoadEras()
	eraStats := s.store.Progress.EraStats

	var b strings.Builder
	b.WriteString(sectionHeader(width, "時代別"))

	barWidth := min(width-8, 56)
	for _, era := range eras.Eras {
		es, ok := eraStats[era.ID]
		if !ok || es.TotalQuestions == 0 {
			line := fmt.Sprintf("%-14s %s", era.Name,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("未挑戦"))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(barWidth).Render(line)))
			b.WriteString("\n")
			continue
		}

		accuracy := es.Accuracy()
		bar := components.NewProgressBar(
			fmt.Sprintf("%-6s", era.Name),
			float64(accuracy)/100,
			true,
			barWidth,
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")

		level := progress.MasteryFor(accuracy)
		detail := fmt.Sprintf("%d/%d問  %s", es.CorrectAnswers, es.TotalQuestions, level.DisplayName())
		if n := es.WrongQuestions.Len(); n > 0 {
			detail += fmt.Sprintf("  復習待ち %d問", n)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(barWidth).Foreground(theme.TextDim).Render("  "+detail)))
		b.WriteString("\n")
	}

	return b.String()
}

func sectionHeader(width int, label string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n"
}
