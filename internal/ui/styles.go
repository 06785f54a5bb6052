package ui

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles shared by the setup and session views
var (
	docStyle       = lipgloss.NewStyle().Margin(1, 2)
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	quoteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Italic(true)
	promptStyle    = lipgloss.NewStyle().MarginTop(1)
	logEventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	logActionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	logAIStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	logErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)
