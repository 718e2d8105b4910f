package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jimezsa/govjobs/internal/dates"
)

func TestPaletteFor(t *testing.T) {
	if got := PaletteFor("dark").Link; got != DarkPalette.Link {
		t.Fatalf("dark palette link = %q", got)
	}
	for _, theme := range []string{"", "light", "unknown"} {
		if got := PaletteFor(theme).Link; got != LightPalette.Link {
			t.Fatalf("PaletteFor(%q) should be light, got %q", theme, got)
		}
	}
	for _, palette := range []Palette{LightPalette, DarkPalette} {
		for _, urgency := range dates.ReportOrder {
			if palette.Urgency[urgency] == "" {
				t.Fatalf("missing color for %s", urgency)
			}
		}
	}
}

func TestColorDisabledLeavesTextUntouched(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, ColorAlways, true)
	u.SetTheme("dark")

	if got := u.UrgencyText(dates.Urgent, "3 days"); got != "3 days" {
		t.Fatalf("UrgencyText = %q", got)
	}
	if got := u.LinkText("link"); got != "link" {
		t.Fatalf("LinkText = %q", got)
	}
	u.Errorf("boom\n")
	if strings.TrimSpace(errOut.String()) != "boom" {
		t.Fatalf("Errorf wrote %q", errOut.String())
	}
}

func TestNormalizeColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"always": ColorAlways,
		" NEVER": ColorNever,
		"":       ColorAuto,
		"bogus":  ColorAuto,
	}
	for input, want := range cases {
		if got := NormalizeColorMode(input); got != want {
			t.Fatalf("NormalizeColorMode(%q) = %q, want %q", input, got, want)
		}
	}
}
