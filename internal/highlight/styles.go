package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for consistent output formatting across reporters.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for file locations and section headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for errors and build failure messages.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for warnings.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for built selectors and success messages.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for hints and specificity.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var roleStyles = map[Role]lipgloss.Style{
	RoleElement:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	RoleID:            StyleRed,
	RoleClass:         StyleGreen,
	RoleAttribute:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	RolePseudoClass:   StyleYellow,
	RolePseudoElement: StyleCyan,
	RoleCombinator:    StyleGray,
}

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// Render joins segments back into selector text, coloring each by role
func Render(segs []Segment, useColors bool) string {
	var b strings.Builder
	for _, seg := range segs {
		style, ok := roleStyles[seg.Role]
		if !ok {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(RenderStyle(style, seg.Text, useColors))
	}
	return b.String()
}
