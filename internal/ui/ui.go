package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jimezsa/govjobs/internal/dates"
	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Palette is the set of colors for one theme.
type Palette struct {
	Link    string
	Urgency map[dates.Urgency]string
	Accent  string
}

var (
	LightPalette = Palette{
		Link:   "#1565C0",
		Accent: "#37474F",
		Urgency: map[dates.Urgency]string{
			dates.Urgent:  "#C62828",
			dates.Warning: "#EF6C00",
			dates.Normal:  "#2E7D32",
			dates.Expired: "#9E9E9E",
		},
	}
	DarkPalette = Palette{
		Link:   "#87CEEB",
		Accent: "#ECEFF1",
		Urgency: map[dates.Urgency]string{
			dates.Urgent:  "#FF6B6B",
			dates.Warning: "#FFB74D",
			dates.Normal:  "#81C784",
			dates.Expired: "#757575",
		},
	}
)

// PaletteFor returns the palette for a theme name; anything but "dark" is light.
func PaletteFor(theme string) Palette {
	if strings.EqualFold(strings.TrimSpace(theme), "dark") {
		return DarkPalette
	}
	return LightPalette
}

type UI struct {
	Palette      Palette
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
}

func New(out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	errOutput := termenv.NewOutput(err)

	colorEnabled := shouldEnableColor(output, mode, disableColor)
	return &UI{
		Palette:      LightPalette,
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    errOutput,
		ColorEnabled: colorEnabled,
	}
}

func shouldEnableColor(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if disableColor {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

func (u *UI) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = u.ErrOutput.String(msg).Foreground(u.ErrOutput.Color("1")).String()
	}
	fmt.Fprintln(u.Err, msg)
}

func (u *UI) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = u.ErrOutput.String(msg).Foreground(u.ErrOutput.Color("3")).String()
	}
	fmt.Fprintln(u.Err, msg)
}

func (u *UI) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = u.Output.String(msg).Foreground(u.Output.Color("4")).String()
	}
	fmt.Fprintln(u.Out, msg)
}

func (u *UI) Successf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = u.Output.String(msg).Foreground(u.Output.Color("2")).String()
	}
	fmt.Fprintln(u.Out, msg)
}

// SetTheme switches the palette used for links, urgency and headings.
func (u *UI) SetTheme(theme string) {
	u.Palette = PaletteFor(theme)
}

func colorize(output *termenv.Output, enabled bool, color string, text string) string {
	if !enabled || output == nil || color == "" {
		return text
	}
	return output.String(text).Foreground(output.Color(color)).String()
}

func (u *UI) LinkText(text string) string {
	return colorize(u.Output, u.ColorEnabled, u.Palette.Link, text)
}

func (u *UI) UrgencyText(urgency dates.Urgency, text string) string {
	return colorize(u.Output, u.ColorEnabled, u.Palette.Urgency[urgency], text)
}

func (u *UI) Heading(text string) string {
	if !u.ColorEnabled {
		return text
	}
	return u.Output.String(text).Bold().Foreground(u.Output.Color(u.Palette.Accent)).String()
}

func NormalizeColorMode(value string) ColorMode {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case string(ColorAlways):
		return ColorAlways
	case string(ColorNever):
		return ColorNever
	default:
		return ColorAuto
	}
}
