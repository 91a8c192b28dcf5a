package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rekishi/internal/sound"
	"github.com/abhisek/rekishi/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.sess == nil:
		return renderLoading(width, height)
	case s.showingQuitConfirm:
		return renderQuitConfirm(width, height)
	case s.showingFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderQuestionView(width, height)
	}
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	q := s.sess.Current()
	if q == nil {
		return renderLoading(width, height)
	}

	var b strings.Builder

	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60
	timerStr := fmt.Sprintf("%d:%02d", mins, secs)

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.sess.Era.Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("問題 %d/%d  %s %d  ⏱ %s",
			s.sess.Index()+1,
			len(s.sess.Questions),
			lipgloss.NewStyle().Foreground(theme.Success).Render("○"),
			s.sess.Score(),
			timerStr,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Question))
	b.WriteString("\n\n")

	if q.IsChoice() {
		b.WriteString(s.renderChoices(width))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("答え: " + s.input.View())
		b.WriteString(answerLine)
		if s.inputErr != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Render(s.inputErr))
		}
	}

	return b.String()
}

// renderChoices renders the multiple choice options.
func (s *SessionScreen) renderChoices(width int) string {
	q := s.sess.Current()

	var b strings.Builder
	for i, choice := range q.Choices {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n番号 (1-4) または ↑↓ + Enter で選択")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the answer feedback overlay.
func (s *SessionScreen) renderFeedback(width, height int) string {
	q := s.lastAnswer.Question

	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastAnswer.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("正解！"))
		if line := streakLine(s.cue, s.sess.ConsecutiveCorrect()); line != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Bold(true).
				Render(line))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("残念..."))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("正解: %s", q.DisplayAnswer())))
	}

	b.WriteString("\n\n")

	if q.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("何かキーを押して次へ..."))

	return b.String()
}

// streakLine returns the banner shown alongside an escalated sound cue.
func streakLine(cue sound.Cue, streak int) string {
	switch cue {
	case sound.CuePerfect:
		return fmt.Sprintf("🌟 %d連続正解！完璧！", streak)
	case sound.CueStreak:
		return fmt.Sprintf("🔥 %d連続正解！", streak)
	default:
		return ""
	}
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("クイズを中断しますか？"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("ここまでの回答は記録されます。"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] はい、中断する"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] いいえ、続ける"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  問題を準備しています...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  エラー: %s\n\n  キーを押すと戻ります。", errMsg))
}
