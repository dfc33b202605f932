package client

import "github.com/charmbracelet/lipgloss"

var (
	nameStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	secretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	noticeStyle = lipgloss.NewStyle().Italic(true)
)

const (
	fieldSeparator = " || "
	passwordMask   = "********"
)
