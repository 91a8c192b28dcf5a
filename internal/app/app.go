package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
	"github.com/abhisek/rekishi/internal/router"
	"github.com/abhisek/rekishi/internal/screen"
	"github.com/abhisek/rekishi/internal/screens/home"
	sessionscreen "github.com/abhisek/rekishi/internal/screens/session"
	"github.com/abhisek/rekishi/internal/ui/layout"
)

// Options configures the program launch.
type Options struct {
	Provider *questions.Provider
	Store    *progress.Store

	// StartEra, when set, jumps straight into a session for that era,
	// skipping the home screen selection.
	StartEra string

	// Review makes the StartEra session draw from its wrong-question set.
	Review bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  *progress.Store
	width  int
	height int
}

// newAppModel creates the AppModel with the home screen, optionally with a
// session screen already pushed on top.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Provider, opts.Store)
	r := router.New(homeScreen)

	m := AppModel{
		router: r,
		store:  opts.Store,
	}

	if opts.StartEra != "" {
		r.Push(sessionscreen.New(opts.Provider, opts.Store, opts.StartEra, opts.Review))
	}

	return m
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is owned by the screens; the session screen turns it into a
		// quit confirmation rather than an immediate pop.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.store.Progress.ConsecutiveStudyDays, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "移動"},
		{Key: "Enter", Description: "決定"},
	}
	if hinted, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinted.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "終了"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
