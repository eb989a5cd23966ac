// Package style holds the marks bale prefixes its log lines with.
package style

import "github.com/charmbracelet/lipgloss"

// Mark is the icon and color of one kind of log line. An empty icon means
// the message is printed bare.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// Prefix returns msg with the mark's icon in front of it.
func (m Mark) Prefix(msg string) string {
	if m.Icon == "" {
		return msg
	}
	return m.Icon + " " + msg
}

var (
	slate = lipgloss.Color("#667085")

	// Failure marks errors, including external tool failures.
	Failure = Mark{Icon: "✗", Color: lipgloss.Color("#D93025")}
	// Caution marks warnings such as ignored credentials or cleanup failures.
	Caution = Mark{Icon: "!", Color: lipgloss.Color("#F59E0B")}
	// Done marks a finished bundle or a verified record.
	Done = Mark{Icon: "✓", Color: lipgloss.Color("#22A06B")}
	// Detail marks debug output.
	Detail = Mark{Icon: "●", Color: slate}
	// Step marks regular progress lines.
	Step = Mark{Color: slate}
)
