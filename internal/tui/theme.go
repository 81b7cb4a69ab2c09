package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	MedGreen    = lipgloss.Color("#00C832")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Cyan        = lipgloss.Color("#00D4AA")
	Amber       = lipgloss.Color("#FFB000")
	LightGray   = lipgloss.Color("#aaaaaa")
	White       = lipgloss.Color("#e0e0e0")

	// Banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// Section headers ("Add Person", "Directory")
	SectionStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	// Form labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(MedGreen)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(BrightGreen).
				Bold(true)

	// Statistics bar
	StatValueStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(DarkGreen)

	// Record cards
	CardNameStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	CardDetailStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	CardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(DarkGreen).
			PaddingLeft(1)

	// Status messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4136")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	// Panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGreen).
			Padding(0, 1)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(DimGreen)
)

const Banner = `
  ██████╗  ██████╗ ███████╗████████╗███████╗██████╗
  ██╔══██╗██╔═══██╗██╔════╝╚══██╔══╝██╔════╝██╔══██╗
  ██████╔╝██║   ██║███████╗   ██║   █████╗  ██████╔╝
  ██╔══██╗██║   ██║╚════██║   ██║   ██╔══╝  ██╔══██╗
  ██║  ██║╚██████╔╝███████║   ██║   ███████╗██║  ██║
  ╚═╝  ╚═╝ ╚═════╝ ╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝
`
