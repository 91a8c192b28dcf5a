package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/router"
	"github.com/abhisek/rekishi/internal/screen"
	"github.com/abhisek/rekishi/internal/ui/layout"
	"github.com/abhisek/rekishi/internal/ui/theme"
)

// volumeStep is one left/right adjustment of a volume slider.
const volumeStep = 0.1

// settingsSavedMsg reports the outcome of a persisted change.
type settingsSavedMsg struct {
	Err error
}

// Item indices, top to bottom.
const (
	itemTheme = iota
	itemSound
	itemBGMVolume
	itemEffectVolume
	itemCount
)

// SettingsScreen lets the user change the theme, sound, and volumes. Every
// change is persisted immediately; there is no separate save action.
type SettingsScreen struct {
	store    *progress.Store
	selected int
	errMsg   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(store *progress.Store) *SettingsScreen {
	return &SettingsScreen{store: store}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "設定"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選択"},
		{Key: "←→/Enter", Description: "変更"},
		{Key: "Esc", Description: "戻る"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < itemCount-1 {
				s.selected++
			}
		case "enter", " ", "right", "l":
			return s, s.adjust(+1)
		case "left", "h":
			return s, s.adjust(-1)
		}
	}
	return s, nil
}

// adjust applies one change to the selected item and persists it. Toggles
// ignore direction; sliders step by it.
func (s *SettingsScreen) adjust(dir int) tea.Cmd {
	store := s.store
	ctx := context.Background()

	switch s.selected {
	case itemTheme:
		next := progress.ThemeNight
		if store.Settings.Theme == progress.ThemeNight {
			next = progress.ThemeOcean
		}
		err := store.ApplyTheme(ctx, next)
		if err == nil {
			theme.Apply(next)
		}
		return saved(err)

	case itemSound:
		return saved(store.SetSoundEnabled(ctx, !store.Settings.SoundEnabled))

	case itemBGMVolume:
		return saved(store.SetBGMVolume(ctx, store.Settings.BGMVolume+float64(dir)*volumeStep))

	case itemEffectVolume:
		return saved(store.SetEffectVolume(ctx, store.Settings.EffectVolume+float64(dir)*volumeStep))
	}
	return nil
}

func saved(err error) tea.Cmd {
	return func() tea.Msg { return settingsSavedMsg{Err: err} }
}

func (s *SettingsScreen) View(width, height int) string {
	set := s.store.Settings

	themeName := "オーシャン"
	if set.Theme == progress.ThemeNight {
		themeName = "ナイト"
	}
	soundStr := "オフ"
	if set.SoundEnabled {
		soundStr = "オン"
	}

	rows := []struct {
		label string
		value string
	}{
		{"テーマ", themeName},
		{"効果音", soundStr},
		{"BGM音量", volumeSlider(set.BGMVolume)},
		{"効果音量", volumeSlider(set.EffectVolume)},
	}

	var b strings.Builder
	b.WriteString("\n\n")

	for i, row := range rows {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-10s %s", prefix, row.label, row.value)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("保存に失敗しました: " + s.errMsg))
	}

	return b.String()
}

// volumeSlider renders a 10-step volume gauge like "████░░░░░░ 40%".
func volumeSlider(v float64) string {
	steps := int(v*10 + 0.5)
	if steps < 0 {
		steps = 0
	}
	if steps > 10 {
		steps = 10
	}
	filled := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", steps))
	empty := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", 10-steps))
	return fmt.Sprintf("%s%s %3d%%", filled, empty, steps*10)
}
