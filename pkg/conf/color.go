package conf

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultCodeChar is the character that introduces a color or format code.
const DefaultCodeChar = '&'

// codeColors maps color codes to the ANSI palette. The sixteen chat colors
// land on their closest standard terminal colors.
var codeColors = map[rune]lipgloss.Color{
	'0': lipgloss.Color("0"),  // black
	'1': lipgloss.Color("4"),  // dark blue
	'2': lipgloss.Color("2"),  // dark green
	'3': lipgloss.Color("6"),  // dark aqua
	'4': lipgloss.Color("1"),  // dark red
	'5': lipgloss.Color("5"),  // dark purple
	'6': lipgloss.Color("3"),  // gold
	'7': lipgloss.Color("7"),  // gray
	'8': lipgloss.Color("8"),  // dark gray
	'9': lipgloss.Color("12"), // blue
	'a': lipgloss.Color("10"), // green
	'b': lipgloss.Color("14"), // aqua
	'c': lipgloss.Color("9"),  // red
	'd': lipgloss.Color("13"), // light purple
	'e': lipgloss.Color("11"), // yellow
	'f': lipgloss.Color("15"), // white
}

// colorEnabled gates rendering. When disabled, Colorize strips codes
// instead of translating them.
var colorEnabled = true

// SetColorEnabled toggles color translation globally. Disable it when
// output is piped or NO_COLOR is requested; codes are then stripped.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether color translation is active.
func ColorEnabled() bool {
	return colorEnabled
}

// Colorize translates &-codes in s to terminal styling.
func Colorize(s string) string {
	return ColorizeChar(DefaultCodeChar, s)
}

// ColorizeChar translates codes introduced by c: &0-&9 and &a-&f select a
// color (resetting active formats), &l bold, &m strikethrough, &n
// underline, &o italic, &k blink, and &r resets everything. A doubled code
// char escapes itself; unknown codes pass through literally.
func ColorizeChar(c rune, s string) string {
	if !colorEnabled {
		return StripCodesChar(c, s)
	}

	var (
		b     strings.Builder
		seg   strings.Builder
		style = lipgloss.NewStyle()
	)
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		b.WriteString(style.Inline(true).Render(seg.String()))
		seg.Reset()
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != c || i+1 >= len(runes) {
			seg.WriteRune(r)
			continue
		}

		code := runes[i+1]
		switch {
		case code == c:
			seg.WriteRune(c)
			i++
		case isColorCode(code):
			flush()
			style = lipgloss.NewStyle().Foreground(codeColors[lower(code)])
			i++
		case isFormatCode(code):
			flush()
			style = applyFormat(style, lower(code))
			i++
		default:
			seg.WriteRune(r)
		}
	}
	flush()
	return b.String()
}

// StripCodes removes &-codes from s without rendering.
func StripCodes(s string) string {
	return StripCodesChar(DefaultCodeChar, s)
}

// StripCodesChar removes codes introduced by c from s.
func StripCodesChar(c rune, s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != c || i+1 >= len(runes) {
			b.WriteRune(r)
			continue
		}
		code := runes[i+1]
		switch {
		case code == c:
			b.WriteRune(c)
			i++
		case isColorCode(code), isFormatCode(code):
			i++
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isColorCode(r rune) bool {
	r = lower(r)
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}

func isFormatCode(r rune) bool {
	switch lower(r) {
	case 'k', 'l', 'm', 'n', 'o', 'r':
		return true
	}
	return false
}

func applyFormat(style lipgloss.Style, code rune) lipgloss.Style {
	switch code {
	case 'l':
		return style.Bold(true)
	case 'm':
		return style.Strikethrough(true)
	case 'n':
		return style.Underline(true)
	case 'o':
		return style.Italic(true)
	case 'k':
		return style.Blink(true)
	case 'r':
		return lipgloss.NewStyle()
	}
	return style
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
