package twidge

import "github.com/charmbracelet/lipgloss"

// Theme is the style set shared by the built-in widgets.
type Theme struct {
	Cursor   lipgloss.Style // cursor cell in focused editors
	Focus    lipgloss.Style // focused text content
	Label    lipgloss.Style // form and field labels
	Frame    lipgloss.Style // unfocused panel border
	FrameHot lipgloss.Style // focused panel border
	Selected lipgloss.Style // selected list entries
	Invalid  lipgloss.Style // unparseable editor content
	Query    lipgloss.Style // live search queries
}

// DefaultTheme mirrors the original color choices: cyan focus, yellow
// labels, green accents, red invalid.
func DefaultTheme() Theme {
	return Theme{
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Focus:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Frame:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		FrameHot: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("2")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("2")),
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Query:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	}
}

var theme = DefaultTheme()

// SetTheme replaces the active widget theme.
func SetTheme(t Theme) { theme = t }
