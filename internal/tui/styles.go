package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("244"))
	activeTab     = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	axisStyle     = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("250"))
	focusedAxis   = lipgloss.NewStyle().Width(12).Bold(true).Foreground(lipgloss.Color("205"))
	optionStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("244"))
	selectedStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("42"))
	classStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
