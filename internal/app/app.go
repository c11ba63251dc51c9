package app

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/homescreen/internal/config"
	"github.com/henri123lemoine/homescreen/internal/debug"
	"github.com/henri123lemoine/homescreen/internal/lesson"
	"github.com/henri123lemoine/homescreen/internal/ui"
	"github.com/henri123lemoine/homescreen/internal/widget"
)

// State represents the current UI state.
type State int

const (
	StateLesson State = iota
	StateFilter
	StateHelp
)

const defaultWidth = 100

// Model is the main application model.
type Model struct {
	// Configuration
	config  *config.Config
	content *lesson.Content

	// Lesson progress, the only cross-widget state
	tracker *lesson.Tracker

	// Widgets
	tabs       *widget.Tabs
	hierarchy  *widget.Hierarchy
	spacing    *widget.Spacing
	navigation *widget.Navigation
	checklist  *widget.Checklist
	practices  *widget.Practices

	// State
	state  State
	err    error
	notice string

	// Filter
	filterInput textinput.Model

	// UI
	width        int
	height       int
	keys         KeyMap
	progress     progress.Model
	checklistBar progress.Model
	theme        string
	markdown     *ui.Markdown
	intros       map[lesson.SectionID]string

	shouldQuit bool
}

// New creates a new Model showing the configured start section.
func New(cfg *config.Config, content *lesson.Content) Model {
	filterInput := textinput.New()
	filterInput.Placeholder = "filter practices..."
	filterInput.CharLimit = 50

	sections := lesson.AllSections
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.String()
	}

	m := Model{
		config:       cfg,
		content:      content,
		tracker:      lesson.NewTracker(sections),
		tabs:         widget.NewTabs(names, 0),
		hierarchy:    widget.NewHierarchy(),
		spacing:      widget.NewSpacing(content.Spacing),
		navigation:   widget.NewNavigation(content.Navigation),
		checklist:    widget.NewChecklist(content.Checklist),
		practices:    widget.NewPractices(content.Practices),
		state:        StateLesson,
		filterInput:  filterInput,
		width:        defaultWidth,
		keys:         KeyMapFromConfig(&cfg.Keys),
		progress:     progress.New(progress.WithDefaultGradient()),
		checklistBar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.checklistBar.Width = 24
	if err := m.tabs.SelectName(cfg.StartSection().String()); err != nil {
		debug.Log("start section: %v", err)
	}
	m.theme = resolveTheme(cfg.UI)
	m.resize(defaultWidth)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if msg.Width != m.width {
			m.resize(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		// Handle quit globally; while typing a filter only ctrl+c quits
		if msg.Type == tea.KeyCtrlC || (key.Matches(msg, m.keys.Quit) && m.state != StateFilter) {
			m.shouldQuit = true
			return m, tea.Quit
		}

		// Delegate to state-specific handler
		return m.handleKeyPress(msg)

	case SectionCompletedMsg:
		if msg.Done {
			m.notice = "Lesson complete! Every section is done."
		} else {
			m.notice = fmt.Sprintf("%s complete (%d%%)", m.sectionTitle(msg.Section), int(msg.Ratio*100+0.5))
		}
		return m, nil

	case PracticeCopiedMsg:
		m.notice = fmt.Sprintf("Copied %q to clipboard", msg.Title)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// resolveTheme picks a concrete markdown style once, before the program owns
// the terminal, so later resizes never query it.
func resolveTheme(cfg config.UIConfig) string {
	if !cfg.Markdown {
		return ""
	}
	switch cfg.Theme {
	case "", "auto":
		if lipgloss.HasDarkBackground() {
			return "dark"
		}
		return "light"
	}
	return cfg.Theme
}

// resize rebuilds everything that depends on the terminal width.
func (m *Model) resize(width int) {
	m.width = width

	barWidth := width - 16
	if barWidth < 10 {
		barWidth = 10
	}
	m.progress.Width = barWidth

	if !m.config.UI.Markdown {
		m.intros = make(map[lesson.SectionID]string)
		for _, s := range m.content.Sections {
			m.intros[s.ID] = ui.NormalStyle.Render(s.Intro)
		}
		return
	}

	wrap := ui.MarkdownWrap(width - 8)
	if m.markdown != nil && m.markdown.Width() == wrap && m.intros != nil {
		return
	}

	defer debug.Timed("render intros")()
	md, err := ui.NewMarkdown(m.theme, wrap)
	if err != nil {
		debug.Log("markdown renderer unavailable: %v", err)
	}
	m.markdown = md
	m.intros = make(map[lesson.SectionID]string)
	for _, s := range m.content.Sections {
		m.intros[s.ID] = md.Render(s.Intro)
	}
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateLesson:
		return m.handleLessonKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleLessonKeys handles keys shared by every panel, then defers to the
// active panel.
func (m Model) handleLessonKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.NextSection):
		m.tabs.Next()
		debug.With("panel switched", "section", m.activeSection())
		return m, nil
	case key.Matches(msg, m.keys.PrevSection):
		m.tabs.Prev()
		debug.With("panel switched", "section", m.activeSection())
		return m, nil
	case key.Matches(msg, m.keys.Jump):
		if err := m.tabs.Select(int(msg.String()[0] - '1')); err != nil {
			debug.With("jump ignored", "key", msg.String(), "err", err)
			return m, nil
		}
		debug.With("panel switched", "section", m.activeSection())
		return m, nil
	case key.Matches(msg, m.keys.Complete):
		cmd := m.complete(m.activeSection())
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
		return m, nil
	}

	switch m.activeSection() {
	case lesson.SectionHierarchy:
		return m.handleHierarchyKeys(msg)
	case lesson.SectionSpacing:
		return m.handleSpacingKeys(msg)
	case lesson.SectionNavigation:
		return m.handleNavigationKeys(msg)
	case lesson.SectionAccessibility:
		return m.handleChecklistKeys(msg)
	case lesson.SectionSummary:
		return m.handlePracticesKeys(msg)
	}
	return m, nil
}

func (m Model) handleHierarchyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.hierarchy.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.hierarchy.MoveDown()
	case key.Matches(msg, m.keys.Toggle):
		m.hierarchy.ToggleSelected()
	}
	return m, nil
}

func (m Model) handleSpacingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.spacing.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.spacing.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.spacing.Decrement()
	case key.Matches(msg, m.keys.Right):
		m.spacing.Increment()
	case key.Matches(msg, m.keys.Reset):
		m.spacing.Reset()
	}
	return m, nil
}

func (m Model) handleNavigationKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.navigation.Prev()
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Toggle):
		m.navigation.Next()
	case key.Matches(msg, m.keys.Up):
		m.navigation.PrevTab()
	case key.Matches(msg, m.keys.Down):
		m.navigation.NextTab()
	}
	return m, nil
}

func (m Model) handleChecklistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.checklist.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.checklist.MoveDown()
	case key.Matches(msg, m.keys.Examples):
		m.checklist.ToggleExample()
	case key.Matches(msg, m.keys.Toggle):
		m.checklist.ToggleSelected()
		if m.config.Lesson.AutoComplete && m.checklist.Complete() {
			cmd := m.complete(lesson.SectionAccessibility)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handlePracticesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.practices.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.practices.MoveDown()
	case key.Matches(msg, m.keys.Examples):
		m.practices.ToggleExamples()
	case key.Matches(msg, m.keys.Copy):
		if p, ok := m.practices.Selected(); ok {
			return m, copyPractice(p)
		}
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.filterInput.SetValue(m.practices.Filter())
		m.filterInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateLesson
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = StateLesson
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.practices.SetFilter("")
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.state = StateLesson
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.practices.SetFilter(m.filterInput.Value())
	return m, cmd
}

// complete marks id complete and reports the first completion.
func (m *Model) complete(id lesson.SectionID) tea.Cmd {
	if m.tracker.IsComplete(id) {
		debug.With("section already complete", "section", id)
		return nil
	}
	if err := m.tracker.MarkComplete(id); err != nil {
		debug.With("mark complete rejected", "section", id, "err", err)
		m.err = err
		return nil
	}

	ratio := m.tracker.ProgressRatio()
	done := m.tracker.Done()
	debug.With("section completed", "section", id, "progress", ratio, "done", done)
	return func() tea.Msg {
		return SectionCompletedMsg{Section: id, Ratio: ratio, Done: done}
	}
}

// copyPractice copies a practice with both examples to the clipboard.
func copyPractice(p lesson.PracticeContent) tea.Cmd {
	return func() tea.Msg {
		text := fmt.Sprintf("%s\nDo: %s\nDon't: %s\n", p.Title, p.Do, p.Dont)
		if err := clipboard.WriteAll(text); err != nil {
			debug.With("clipboard write failed", "practice", p.Title, "err", err)
			return ErrorMsg{Err: fmt.Errorf("clipboard: %w", err)}
		}
		return PracticeCopiedMsg{Title: p.Title}
	}
}

func (m Model) activeSection() lesson.SectionID {
	return lesson.SectionID(m.tabs.ActiveName())
}

func (m Model) sectionTitle(id lesson.SectionID) string {
	if s := m.content.Section(id); s != nil && s.Title != "" {
		return s.Title
	}
	return id.String()
}

// View renders the UI.
func (m Model) View() string {
	ratio := m.tracker.ProgressRatio()
	return ui.Render(ui.RenderParams{
		State:        int(m.state),
		Width:        m.width,
		Height:       m.height,
		Err:          m.err,
		Notice:       m.notice,
		Content:      m.content,
		Sections:     m.tracker.Sections(),
		Active:       m.tabs.Active(),
		Completed:    m.tracker.Completed(),
		Progress:     ratio,
		ProgressBar:  m.progress.ViewAs(ratio),
		ChecklistBar: m.checklistBar.ViewAs(m.checklist.Progress()),
		Intro:        m.intros[m.activeSection()],
		FilterInput:  m.filterInput.View(),
		ShowProgress: m.config.UI.ShowProgress,
		ShowTips:     m.config.UI.ShowTips,
		Hierarchy:    m.hierarchy,
		Spacing:      m.spacing,
		Navigation:   m.navigation,
		Checklist:    m.checklist,
		Practices:    m.practices,
		HelpSections: m.helpSections(),
	})
}

// helpSections lists the active key bindings for the help screen.
func (m Model) helpSections() []ui.HelpSection {
	group := func(title string, bindings ...key.Binding) ui.HelpSection {
		s := ui.HelpSection{Title: title}
		for _, b := range bindings {
			h := b.Help()
			s.Bindings = append(s.Bindings, ui.HelpBinding{Keys: h.Key, Desc: h.Desc})
		}
		return s
	}

	return []ui.HelpSection{
		group("Sections", m.keys.NextSection, m.keys.PrevSection, m.keys.Jump, m.keys.Complete),
		group("Panels", m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Toggle, m.keys.Reset),
		group("Accessibility & best practices", m.keys.Examples, m.keys.Filter, m.keys.Copy, m.keys.Cancel),
		group("General", m.keys.Help, m.keys.Quit),
	}
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Progress returns the lesson completion ratio.
func (m Model) Progress() float64 {
	return m.tracker.ProgressRatio()
}
