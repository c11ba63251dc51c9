package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/homescreen/internal/lesson"
	"github.com/henri123lemoine/homescreen/internal/widget"
)

// Points per terminal cell when drawing spacing.
const (
	pointsPerColumn = 8
	pointsPerRow    = 16
)

func statusBar() string {
	left := "9:41"
	right := "▂▄▆ ▮"
	gap := PhoneWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return MutedStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func phone(lines ...string) string {
	return PhoneStyle.Render(strings.Join(lines, "\n"))
}

func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func blankLines(n int) []string {
	if n <= 0 {
		return nil
	}
	return make([]string, n)
}

// renderHierarchyPhone draws a shop home screen shaped by the hierarchy
// toggles. With the guide on, each block is tagged with its level.
func renderHierarchyPhone(h *widget.Hierarchy) string {
	heading := PhoneHeadlineStyle
	subheading := NormalStyle.Bold(true)
	detail := MutedStyle
	body := NormalStyle
	button := PrimaryButtonStyle
	if !h.ProperSizes {
		heading = NormalStyle
		subheading = NormalStyle
		button = FlatButtonStyle
	}
	if !h.ProperContrast {
		heading = heading.Foreground(ColorMuted)
		subheading = subheading.Foreground(ColorMuted)
		body = MutedStyle
		button = FlatButtonStyle.Foreground(ColorMuted)
	}

	tag := func(style lipgloss.Style, level string) []string {
		if !h.ShowGuide {
			return nil
		}
		return []string{style.Render("▸ " + level)}
	}

	lines := []string{statusBar()}

	lines = append(lines, tag(GuideHeaderStyle, "1 HEADER")...)
	lines = append(lines, spread(subheading.Render("ShopApp"), body.Render("☰"), PhoneWidth), "")

	lines = append(lines, tag(GuidePrimaryStyle, "2 PRIMARY")...)
	lines = append(lines,
		heading.Render("Welcome back, Sarah!"),
		detail.Render("Discover amazing deals today"),
		"",
	)

	lines = append(lines, tag(GuideSecondaryStyle, "3 SECONDARY")...)
	offer := strings.Join([]string{
		detail.Render("Limited Offer"),
		subheading.Render("50% Off Winter Collection"),
		button.Render(" Shop Now "),
	}, "\n")
	lines = append(lines, CardStyle.Width(PhoneWidth-2).Render(offer), "")

	lines = append(lines, tag(GuideTertiaryStyle, "4 TERTIARY")...)
	lines = append(lines,
		body.Render("Categories"),
		detail.Render("Shoes · Bags · Coats · Hats"),
	)

	return phone(lines...)
}

// spacingCells converts point values to terminal cells.
func spacingCells(s *widget.Spacing) (section, padX, padY, gap int) {
	section = s.Value(widget.SectionSpacing) / pointsPerRow
	padX = s.Value(widget.CardPadding) / pointsPerColumn
	padY = s.Value(widget.CardPadding) / pointsPerRow
	gap = s.Value(widget.ElementGap) / 4
	return section, padX, padY, gap
}

// renderSpacingPhone draws a tip card using the spacing slider values.
// Section spacing separates the blocks of the card, card padding insets its
// content, and the element gap separates the action buttons.
func renderSpacingPhone(s *widget.Spacing) string {
	section, padX, padY, gap := spacingCells(s)

	cardWidth := PhoneWidth - 2
	inner := cardWidth - 2*padX

	buttons := []string{"Save", "Discuss", "Share"}
	used := 0
	for _, b := range buttons {
		used += lipgloss.Width(b)
	}
	if most := (inner - used) / (len(buttons) - 1); gap > most {
		gap = most
	}
	if gap < 1 {
		gap = 1
	}

	var body []string
	body = append(body,
		NormalStyle.Bold(true).Render("City Safety Department"),
		MutedStyle.Render("Updated 2 hours ago"),
	)
	body = append(body, blankLines(section)...)
	body = append(body, NormalStyle.Width(inner).Render("Pack an emergency kit: water, a torch, a radio and spare batteries."))
	body = append(body, blankLines(section)...)
	body = append(body, MutedStyle.Render("124 saves • 18 replies"))
	body = append(body, blankLines(gap/3)...)
	body = append(body, SelectedStyle.Render(strings.Join(buttons, strings.Repeat(" ", gap))))

	card := CardStyle.Padding(padY, padX).Width(cardWidth).Render(strings.Join(body, "\n"))

	lines := []string{statusBar(), PhoneHeadlineStyle.Render("Safety Tips")}
	lines = append(lines, blankLines(section)...)
	lines = append(lines, card)
	return phone(lines...)
}

// tabStrip renders the mock app's destinations, labelling the open one.
func tabStrip(active widget.PhoneTab) string {
	var tabs []string
	for _, t := range widget.PhoneTabs {
		if t.ID == active.ID {
			tabs = append(tabs, ActiveTabStyle.Render(t.Icon+" "+t.Label))
		} else {
			tabs = append(tabs, TabStyle.Render(t.Icon))
		}
	}
	return strings.Join(tabs, " ")
}

// renderNavigationPhone draws the chosen navigation pattern with the open
// destination highlighted.
func renderNavigationPhone(p widget.NavPattern, active widget.PhoneTab) string {
	feed := []string{
		NormalStyle.Render("Morning run  5.2 km"),
		MutedStyle.Render("Yesterday"),
		"",
		NormalStyle.Render("Yoga flow  30 min"),
		MutedStyle.Render("Monday"),
	}
	heading := PhoneHeadlineStyle.Render(active.Heading)
	divider := DividerStyle.Render(strings.Repeat(SymbolDivider, PhoneWidth))

	switch p {
	case widget.NavDrawer:
		var items []string
		for _, t := range widget.PhoneTabs {
			if t.ID == active.ID {
				items = append(items, SelectedStyle.Render(t.Label))
			} else {
				items = append(items, NormalStyle.Render(t.Label))
			}
		}
		drawer := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(ColorSecondary).
			Width(9).
			Render(strings.Join(items, "\n"))
		main := lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(append([]string{heading, ""}, feed...), "\n"))
		return phone(
			statusBar(),
			spread("☰", "MyApp", PhoneWidth),
			divider,
			lipgloss.JoinHorizontal(lipgloss.Top, drawer, main),
		)

	case widget.NavTopTabs:
		lines := []string{
			statusBar(),
			NormalStyle.Bold(true).Render("MyApp"),
			tabStrip(active),
			divider,
			heading,
		}
		return phone(append(lines, feed...)...)

	default:
		lines := []string{
			statusBar(),
			NormalStyle.Bold(true).Render("MyApp"),
			heading,
			"",
		}
		lines = append(lines, feed...)
		lines = append(lines, "", divider, tabStrip(active))
		return phone(lines...)
	}
}

// renderAccessibilityExample draws the poor or the good version of the same
// screen, followed by what it gets wrong or right.
func renderAccessibilityExample(showGood bool, ex lesson.ExampleContent) string {
	var lines []string
	if showGood {
		lines = append(lines,
			spread(PhoneHeadlineStyle.Render("Welcome"), NormalStyle.Render("[⚙ Settings]"), PhoneWidth),
			"",
			SelectedStyle.Render("┃ ● Important update available"),
			SelectedStyle.Render("┃ ")+NormalStyle.Render("Please update to continue"),
			"",
			NormalStyle.Render("[  Cancel  ]")+"  "+PrimaryButtonStyle.Render("[ Update Now ]"),
		)
	} else {
		lines = append(lines,
			spread(MutedStyle.Render("Welcome"), MutedStyle.Render("▪"), PhoneWidth),
			"",
			MutedStyle.Render("Important update available"),
			"",
			MutedStyle.Render("Cancel OK"),
		)
	}

	heading := ErrorStyle.Render("✗ " + orDefault(ex.Title, "Poor accessibility"))
	label := "Issues:"
	if showGood {
		heading = DoneStyle.Render(SymbolDone + " " + orDefault(ex.Title, "Good accessibility"))
		label = "Improvements:"
	}

	notes := []string{heading, MutedStyle.Render(label)}
	for _, n := range ex.Notes {
		notes = append(notes, "• "+n)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		phone(append([]string{statusBar(), ""}, lines...)...),
		"",
		lipgloss.NewStyle().Width(PhoneWidth+2).Render(strings.Join(notes, "\n")),
	)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
