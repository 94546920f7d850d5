package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor and "faint" styling is only applied
// on dark backgrounds (faint text on light terminals often becomes
// illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorAccent     lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccentFg   lipgloss.TerminalColor = ac("255", "235")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorControlBg  lipgloss.TerminalColor = ac("252", "235")
	colorSurfaceFg  lipgloss.TerminalColor = ac("235", "252")
	colorError      lipgloss.TerminalColor = ac("160", "196")
	colorOK         lipgloss.TerminalColor = ac("28", "40")
	colorWarn       lipgloss.TerminalColor = ac("130", "214")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func styleWarn() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorWarn)
}

func styleOK() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorOK)
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func styleButton(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1).
		Foreground(colorSurfaceFg).Background(colorControlBg)
	if active {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return st
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE,
// which can accidentally disable colors in a TUI, so only NO_COLOR is
// honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection. Some terminals
// don't reliably report their background, which makes AdaptiveColor pick
// the wrong variant.
//
// Priority:
// 1) CAREOPS_TUI_THEME=light|dark|auto
// 2) CAREOPS_TUI_DARKBG=true|false
// 3) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference() {
	if v := strings.TrimSpace(os.Getenv("CAREOPS_TUI_THEME")); v != "" {
		switch strings.ToLower(v) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("CAREOPS_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
