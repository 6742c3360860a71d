package render

import "github.com/charmbracelet/lipgloss"

// palette decorates the parts of a line. The zero palette leaves text unchanged.
type palette struct {
	directory func(string) string
	symlink   func(string) string
	size      func(string) string
	metadata  func(string) string
}

func plainPalette() palette {
	identity := func(text string) string { return text }
	return palette{directory: identity, symlink: identity, size: identity, metadata: identity}
}

func colorPalette() palette {
	return palette{
		directory: styled(lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)),
		symlink:   styled(lipgloss.NewStyle().Foreground(lipgloss.Color("6"))),
		size:      styled(lipgloss.NewStyle().Foreground(lipgloss.Color("2"))),
		metadata:  styled(lipgloss.NewStyle().Faint(true)),
	}
}

func styled(style lipgloss.Style) func(string) string {
	return func(text string) string {
		return style.Render(text)
	}
}
