package app

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	enabledMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	disabledMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	typeStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	groupNameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	bannerUnseenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
	bannerSeenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	fieldLabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusedFieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true)
	dialogBorderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1)
	dialogButtonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	rateLimitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("179")).Bold(true)
)
