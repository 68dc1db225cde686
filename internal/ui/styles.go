package ui

import "github.com/charmbracelet/lipgloss"

// 图标
const (
	TaggedIcon  = "👑"
	FreezerIcon = "🥶"
	FrozenIcon  = "🧊"
	RunnerIcon  = "🏃"
	OutIcon     = "❌"
	TrophyIcon  = "🏆"
)

var (
	docStyle       = lipgloss.NewStyle().Margin(1, 2)
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeBoxStyle = boxStyle.BorderForeground(lipgloss.Color("212"))
	grayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	timerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	promptStyle    = lipgloss.NewStyle().MarginTop(1)
)
