package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/ecoclean/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "del", core.ColorRed)
	s.DrawTextColor(3, 0, "arc", core.ColorBlue)
	s.DrawText(0, 1, "plain")

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, want 2", len(lines))
	}
	for i, want := range []string{"delarc      ", "plain       "} {
		if got := lipgloss.Width(lines[i]); got != 12 {
			t.Errorf("line %d width = %d, want 12", i, got)
		}
		if !strings.Contains(ansi.Strip(lines[i]), want) {
			t.Errorf("line %d = %q, want text %q", i, ansi.Strip(lines[i]), want)
		}
	}
}

func TestCellStyleUnknownColor(t *testing.T) {
	if got := cellStyle(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("cellStyle(unknown).Render() = %q, want plain text", got)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
		{"", 0, ""},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}
