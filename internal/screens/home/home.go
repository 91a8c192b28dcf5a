package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
	"github.com/abhisek/rekishi/internal/router"
	"github.com/abhisek/rekishi/internal/screen"
	sessionscreen "github.com/abhisek/rekishi/internal/screens/session"
	"github.com/abhisek/rekishi/internal/screens/settings"
	"github.com/abhisek/rekishi/internal/screens/stats"
	"github.com/abhisek/rekishi/internal/ui/components"
	"github.com/abhisek/rekishi/internal/ui/theme"
)

// HomeScreen is the era-selection screen, the application's entry point.
type HomeScreen struct {
	menu     components.Menu
	eras     []questions.Era
	provider *questions.Provider
	store    *progress.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen listing every era with its accuracy and
// mastery badge, followed by the stats and settings entries.
func New(provider *questions.Provider, store *progress.Store) *HomeScreen {
	catalog := provider.LoadEras()

	items := make([]components.MenuItem, 0, len(catalog.Eras)+3)
	for _, era := range catalog.Eras {
		era := era
		items = append(items, components.MenuItem{
			Label: era.Name,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(provider, store, era.ID, false),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "学習記録", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(provider, store)}
			}
		}},
		components.MenuItem{Label: "設定", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(store)}
			}
		}},
		components.MenuItem{Label: "終了", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		menu:     components.NewMenu(items),
		eras:     catalog.Eras,
		provider: provider,
		store:    store,
	}
}

// eraDetail formats the per-era card line: period, accuracy, mastery badge.
func eraDetail(era questions.Era, es progress.EraStats) string {
	if es.TotalQuestions == 0 {
		return fmt.Sprintf("%s · 未挑戦", era.Period)
	}
	acc := es.Accuracy()
	return fmt.Sprintf("%s · 正答率%d%% · %s",
		era.Period, acc, progress.MasteryFor(acc).DisplayName())
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "時代を選ぼう"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// Era cards read the store at draw time, like statsLine, so a session
	// recorded since the last render shows up when the learner pops back.
	for i, era := range h.eras {
		h.menu.Items[i].Detail = eraDetail(era, h.store.EraProgress(era.ID))
	}

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("日本史クイズ")

	sub := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(h.statsLine())

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())

	return "\n" + title + "\n" + sub + "\n\n" + menu
}

// statsLine summarizes lifetime stats under the banner.
func (h *HomeScreen) statsLine() string {
	st := h.store.Stats
	if st.TotalQuestionsAnswered == 0 {
		return "これまでの記録はまだありません"
	}
	return fmt.Sprintf("回答数 %d · 正答率 %d%% · 連続学習 %d日",
		st.TotalQuestionsAnswered, st.OverallAccuracy, st.StudyStreak)
}
