package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/henri123lemoine/homescreen/internal/lesson"
	"github.com/henri123lemoine/homescreen/internal/widget"
)

// State constants (matching app.State)
const (
	StateLesson = iota
	StateFilter
	StateHelp
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State  int
	Width  int
	Height int
	Err    error
	Notice string

	Content   *lesson.Content
	Sections  []lesson.SectionID
	Active    int
	Completed []lesson.SectionID
	Progress  float64

	// Pre-rendered pieces
	ProgressBar  string
	ChecklistBar string
	Intro        string
	FilterInput  string

	ShowProgress bool
	ShowTips     bool

	Hierarchy  *widget.Hierarchy
	Spacing    *widget.Spacing
	Navigation *widget.Navigation
	Checklist  *widget.Checklist
	Practices  *widget.Practices

	HelpSections []HelpSection
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 40

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 12

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	switch p.State {
	case StateHelp:
		return renderHelp(p)
	default:
		return renderLesson(p)
	}
}

func (p RenderParams) activeSection() lesson.SectionID {
	if p.Active >= 0 && p.Active < len(p.Sections) {
		return p.Sections[p.Active]
	}
	return ""
}

func (p RenderParams) isComplete(id lesson.SectionID) bool {
	for _, c := range p.Completed {
		if c == id {
			return true
		}
	}
	return false
}

func sectionTitle(c *lesson.Content, id lesson.SectionID) string {
	if c != nil {
		if s := c.Section(id); s != nil && s.Title != "" {
			return s.Title
		}
	}
	return string(id)
}

// renderLesson renders the header, tab bar, active panel and footer.
func renderLesson(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 6 // Account for box borders and padding

	title := "HOME SCREEN DESIGN"
	if p.Content != nil && p.Content.Title != "" {
		title = strings.ToUpper(p.Content.Title)
	}
	count := fmt.Sprintf("%d/%d complete (%d%%)", len(p.Completed), len(p.Sections), int(p.Progress*100+0.5))
	b.WriteString(HeaderStyle.Render(title) + "  " + MutedStyle.Render(count) + "\n")
	if p.Content != nil && p.Content.Subtitle != "" {
		b.WriteString(MutedStyle.Render(p.Content.Subtitle) + "\n")
	}

	b.WriteString(renderTabBar(p) + "\n")
	if p.ShowProgress && p.ProgressBar != "" {
		b.WriteString(p.ProgressBar + "\n")
	}
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	if p.Err != nil {
		b.WriteString(ErrorStyle.Render("Error: "+p.Err.Error()) + "\n")
	}
	if p.Notice != "" {
		b.WriteString(DoneStyle.Render(p.Notice) + "\n")
	}

	id := p.activeSection()
	b.WriteString("\n" + renderSectionHeader(p, id) + "\n\n")

	switch id {
	case lesson.SectionHierarchy:
		b.WriteString(renderHierarchyPanel(p))
	case lesson.SectionSpacing:
		b.WriteString(renderSpacingPanel(p))
	case lesson.SectionNavigation:
		b.WriteString(renderNavigationPanel(p))
	case lesson.SectionAccessibility:
		b.WriteString(renderChecklistPanel(p))
	case lesson.SectionSummary:
		b.WriteString(renderPracticesPanel(p))
	}

	b.WriteString("\n\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render(footerHelp(p, id)))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderTabBar renders one tab per section, marking completed ones.
func renderTabBar(p RenderParams) string {
	var tabs []string
	for i, id := range p.Sections {
		mark := PendingStyle.Render(SymbolPending)
		if p.isComplete(id) {
			mark = DoneStyle.Render(SymbolDone)
		}
		label := fmt.Sprintf("%d %s", i+1, sectionTitle(p.Content, id))
		if i == p.Active {
			label = ActiveTabStyle.Render(label)
		} else {
			label = TabStyle.Render(label)
		}
		tabs = append(tabs, mark+" "+label)
	}
	return strings.Join(tabs, DividerStyle.Render(" "+SymbolSeparator+" "))
}

func renderSectionHeader(p RenderParams, id lesson.SectionID) string {
	var b strings.Builder

	heading := TitleStyle.Render(sectionTitle(p.Content, id))
	if p.isComplete(id) {
		heading += "  " + DoneStyle.Render(SymbolDone+" complete")
	}
	b.WriteString(heading)

	if p.Intro != "" {
		b.WriteString("\n" + p.Intro)
	}

	if p.ShowTips && p.Content != nil {
		if s := p.Content.Section(id); s != nil && s.Tip != "" {
			b.WriteString("\n" + TipStyle.Render("Tip: "+s.Tip))
		}
	}
	return b.String()
}

// sideBySide places the controls left of the phone mock, wrapping the
// controls so the pair fits in width.
func sideBySide(width int, left, right string) string {
	leftWidth := width - lipgloss.Width(right) - 4
	if leftWidth < 20 {
		return lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}
	if lipgloss.Width(left) > leftWidth {
		left = lipgloss.NewStyle().Width(leftWidth).Render(left)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func renderHierarchyPanel(p RenderParams) string {
	h := p.Hierarchy
	if h == nil {
		return ""
	}

	var lines []string
	for i, o := range widget.HierarchyOptions {
		label := o.Key()
		desc := ""
		if p.Content != nil {
			if tc, ok := p.Content.Hierarchy.Option(o.Key()); ok {
				label = tc.Label
				desc = tc.Description
			}
		}
		lines = append(lines, renderToggle(label, h.Enabled(o), i == h.Cursor()))
		if i == h.Cursor() && desc != "" {
			lines = append(lines, "      "+MutedStyle.Render(desc))
		}
	}

	lines = append(lines, "")
	score := fmt.Sprintf("%d of %d hierarchy cues in use", h.Score(), len(widget.HierarchyCues))
	if h.Score() == len(widget.HierarchyCues) {
		lines = append(lines, DoneStyle.Render(score))
	} else {
		lines = append(lines, WarnStyle.Render(score))
	}

	return sideBySide(p.Width-6, strings.Join(lines, "\n"), renderHierarchyPhone(h))
}

func renderSpacingPanel(p RenderParams) string {
	s := p.Spacing
	if s == nil {
		return ""
	}

	var lines []string
	for i, sl := range s.Sliders() {
		lines = append(lines, renderSlider(sl, i == s.Cursor()))
	}

	if p.Content != nil {
		if sc, ok := p.Content.Spacing.Slider(s.Sliders()[s.Cursor()].Key); ok && sc.Description != "" {
			lines = append(lines, "", MutedStyle.Render(sc.Description))
		}
	}

	lines = append(lines, "")
	if s.Balanced() {
		lines = append(lines, DoneStyle.Render("Elements sit closer than sections: groups read clearly."))
	} else {
		lines = append(lines, WarnStyle.Render("Element gap matches or exceeds section spacing: groups blur together."))
	}

	return sideBySide(p.Width-6, strings.Join(lines, "\n"), renderSpacingPhone(s))
}

func renderNavigationPanel(p RenderParams) string {
	n := p.Navigation
	if n == nil {
		return ""
	}

	var lines []string
	for i, opt := range n.Options() {
		label := string(opt)
		if p.Content != nil {
			if pc := p.Content.Navigation.Pattern(string(opt)); pc != nil {
				label = pc.Label
			}
		}
		lines = append(lines, renderRadio(label, i == n.Index(), i == n.Index()))
	}

	if p.Content != nil {
		if pc := p.Content.Navigation.Pattern(string(n.Selected())); pc != nil {
			lines = append(lines, "", NormalStyle.Render(pc.Description))
			if pc.BestFor != "" {
				lines = append(lines, MutedStyle.Render("Best for: "+pc.BestFor))
			}
			lines = append(lines, "")
			for _, pro := range pc.Pros {
				lines = append(lines, DoneStyle.Render("+ ")+pro)
			}
			for _, con := range pc.Cons {
				lines = append(lines, ErrorStyle.Render("- ")+con)
			}
		}
	}

	lines = append(lines, "", MutedStyle.Render("Open in app: "+n.ActiveTab().Heading))

	return sideBySide(p.Width-6, strings.Join(lines, "\n"), renderNavigationPhone(n.Selected(), n.ActiveTab()))
}

func renderChecklistPanel(p RenderParams) string {
	c := p.Checklist
	if c == nil {
		return ""
	}

	var b strings.Builder
	idx := 0
	for _, cat := range c.Categories() {
		done, total := c.CategoryProgress(cat.ID)
		heading := fmt.Sprintf("%s  %d/%d", cat.Title, done, total)
		if c.CategoryComplete(cat.ID) {
			b.WriteString(DoneStyle.Render(SymbolDone+" "+heading) + "\n")
		} else {
			b.WriteString(HeaderStyle.Render(SymbolPending+" "+heading) + "\n")
		}
		for _, it := range cat.Items {
			b.WriteString(renderCheck(it.Label, c.IsChecked(it.ID), idx == c.Cursor()) + "\n")
			if idx == c.Cursor() && it.Description != "" {
				b.WriteString("      " + MutedStyle.Render(it.Description) + "\n")
			}
			idx++
		}
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%d of %d checks passed (%d%%)", c.Checked(), c.Total(), int(c.Progress()*100+0.5))
	if p.ChecklistBar != "" {
		b.WriteString(p.ChecklistBar + "  ")
	}
	if c.Complete() {
		b.WriteString(DoneStyle.Render(summary))
	} else {
		b.WriteString(MutedStyle.Render(summary))
	}
	return sideBySide(p.Width-6, b.String(), renderAccessibilityExample(c.ShowingGood(), c.Example()))
}

func renderPracticesPanel(p RenderParams) string {
	pr := p.Practices
	if pr == nil {
		return ""
	}

	var b strings.Builder
	if p.State == StateFilter {
		b.WriteString(HeaderStyle.Render("FILTER") + "\n" + InputStyle.Render(p.FilterInput) + "\n\n")
	} else if pr.Filter() != "" {
		b.WriteString(MutedStyle.Render("Filter: "+pr.Filter()) + "\n\n")
	}

	visible := pr.Visible()
	if len(visible) == 0 {
		b.WriteString(MutedStyle.Render("No practices match.") + "\n")
		return b.String()
	}

	mode := "Do"
	if pr.ShowingDont() {
		mode = "Don't"
	}
	b.WriteString(MutedStyle.Render(fmt.Sprintf("Showing %q examples, %d of %d practices", mode, len(visible), pr.Len())) + "\n\n")

	for i, item := range visible {
		selected := i == pr.Cursor()
		title := item.Title
		if selected {
			title = SelectedStyle.Render(title)
		} else {
			title = NormalStyle.Render(title)
		}
		b.WriteString(cursorPrefix(selected) + title + " " + MutedStyle.Render("["+item.Category+"]") + "\n")
		if pr.ShowingDont() {
			b.WriteString("    " + ErrorStyle.Render("✗ ") + item.Dont + "\n")
		} else {
			b.WriteString("    " + DoneStyle.Render("✓ ") + item.Do + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// footerHelp returns the key hints for the active panel.
func footerHelp(p RenderParams, id lesson.SectionID) string {
	if p.State == StateFilter {
		return "enter apply • esc clear"
	}

	var local string
	switch id {
	case lesson.SectionHierarchy:
		local = "↑/↓ move • space toggle"
	case lesson.SectionSpacing:
		local = "↑/↓ slider • ←/→ adjust • r reset"
	case lesson.SectionNavigation:
		local = "←/→ pattern • ↑/↓ app tab"
	case lesson.SectionAccessibility:
		local = "↑/↓ move • space check • x poor/good"
	case lesson.SectionSummary:
		local = "↑/↓ move • / filter • x do/don't • y copy"
	}

	full := local + " • c complete • tab next • 1-5 jump • ? help • q quit"
	compact := local + " • c • tab • ? • q"
	return compactHelp(full, compact, p.Width)
}

// renderHelp renders the help screen.
func renderHelp(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 6

	b.WriteString(HeaderStyle.Render("HELP") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	for i, section := range p.HelpSections {
		b.WriteString(NormalStyle.Render(section.Title) + "\n")
		b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, 40)) + "\n")
		for _, binding := range section.Bindings {
			// Pad keys to 12 cells for alignment
			keys := runewidth.FillRight(binding.Keys, 12)
			b.WriteString(MutedStyle.Render("  "+keys) + " " + binding.Desc + "\n")
		}
		if i < len(p.HelpSections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("Press any key to close"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// wrapInBox wraps content in a box.
func wrapInBox(content string, width, height int) string {
	boxWidth := width - 2
	if boxWidth < MinWidth-2 {
		boxWidth = MinWidth - 2
	}

	// Don't force height - let content determine size
	style := BoxStyle.Width(boxWidth)

	return style.Render(content)
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 100 {
		return full
	}
	return compact
}
