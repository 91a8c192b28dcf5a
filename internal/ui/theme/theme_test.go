package theme

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rekishi/internal/progress"
)

func TestApplySwitchesPalette(t *testing.T) {
	t.Cleanup(func() { Apply(progress.ThemeOcean) })

	Apply(progress.ThemeNight)
	if Primary != Night.Primary || BgDark != Night.BgDark {
		t.Errorf("night palette not applied: Primary=%v BgDark=%v", Primary, BgDark)
	}

	Apply(progress.ThemeOcean)
	if Primary != Ocean.Primary || BgDark != Ocean.BgDark {
		t.Errorf("ocean palette not restored: Primary=%v BgDark=%v", Primary, BgDark)
	}
}

func TestPaletteColorsRender(t *testing.T) {
	// The palette values must be usable as style colors.
	s := lipgloss.NewStyle().Foreground(Text).Background(BgCard).Render("text")
	if s == "" {
		t.Fatal("styled render produced empty output")
	}
}
