package cmd

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	urlStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
