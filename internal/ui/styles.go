// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("4")   // Blue
	ColorSecondary = lipgloss.Color("8")   // Gray
	ColorSuccess   = lipgloss.Color("2")   // Green
	ColorWarning   = lipgloss.Color("3")   // Yellow
	ColorDanger    = lipgloss.Color("1")   // Red
	ColorMuted     = lipgloss.Color("245") // Light gray
	ColorHighlight = lipgloss.Color("6")   // Cyan
	ColorText      = lipgloss.Color("252") // Light text
)

// Styles
var (
	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	// Selected item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	// Normal item style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Underline(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Completion styles
	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TipStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Input style
	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	// Error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	// Divider style
	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Phone mock styles
	PhoneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Width(PhoneWidth)

	PhoneHeadlineStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)

	PrimaryButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(ColorPrimary).
				Align(lipgloss.Center)

	FlatButtonStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SecondaryButtonStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorSecondary)

	// Hierarchy guide tags, one color per level
	GuideHeaderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	GuidePrimaryStyle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	GuideSecondaryStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	GuideTertiaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// Symbols
const (
	SymbolCursor    = "›"
	SymbolDone      = "✓"
	SymbolPending   = "○"
	SymbolOn        = "●"
	SymbolOff       = "○"
	SymbolRadioOn   = "(•)"
	SymbolRadioOff  = "( )"
	SymbolCheckOn   = "[x]"
	SymbolCheckOff  = "[ ]"
	SymbolKnob      = "●"
	SymbolTrack     = "─"
	SymbolDivider   = "─"
	SymbolSeparator = "│"
)

// PhoneWidth is the inner width of the mock phone screens.
const PhoneWidth = 30
