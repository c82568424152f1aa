package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for CLI chrome. These are the single source of truth;
// never use inline lipgloss.Color literals in command code.
var (
	// ColorCyan is used for identifiable nouns: keys, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success lines and the completion checkmark.
	ColorGreen = lipgloss.Color("10")

	// ColorYellow is used for warnings and modified entries.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for failures and removed entries.
	ColorRed = lipgloss.Color("196")
)

// Semantic styles mapping CLI concepts to presentation.
var (
	// StyleKey styles dotted config keys and file paths.
	StyleKey = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSuccess styles success summaries.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleWarning styles warnings and change counts.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError styles failure summaries.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleDim styles structural chrome (separators, counts).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FormatCheckmark renders a green checkmark with a message for stdout.
func FormatCheckmark(msg string) string {
	return StyleSuccess.Render("✔") + " " + msg
}
