// Package style provides the brand colours and status icons shared by the logger and
// the command output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Arrow   = "→"
)

// Status renders an icon in colour followed by msg, for one-line command results.
func Status(icon string, color lipgloss.Color, msg string) string {
	return lipgloss.NewStyle().Foreground(color).Render(icon) + " " + msg
}
