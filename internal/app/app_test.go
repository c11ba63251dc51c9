package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/homescreen/internal/config"
	"github.com/henri123lemoine/homescreen/internal/lesson"
	"github.com/henri123lemoine/homescreen/internal/widget"
)

// testConfig uses a fixed theme so no test queries the terminal.
func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.UI.Theme = "dark"
	return cfg
}

func newTestModel(t *testing.T, cfg *config.Config) Model {
	t.Helper()
	content, err := lesson.DefaultContent()
	if err != nil {
		t.Fatalf("DefaultContent() error: %v", err)
	}
	return New(cfg, content)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
)

// press feeds msgs through Update and returns the final model and the last
// command.
func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestNewModel(t *testing.T) {
	cfg := testConfig()
	model := newTestModel(t, cfg)

	if model.state != StateLesson {
		t.Errorf("Expected initial state StateLesson, got %d", model.state)
	}

	if model.config != cfg {
		t.Error("Config not set correctly")
	}

	if model.activeSection() != lesson.SectionHierarchy {
		t.Errorf("Expected hierarchy panel first, got %q", model.activeSection())
	}

	if model.Progress() != 0 {
		t.Errorf("Expected no progress, got %v", model.Progress())
	}

	if len(model.intros) != len(lesson.AllSections) {
		t.Errorf("Expected an intro per section, got %d", len(model.intros))
	}
}

func TestNewModelStartSection(t *testing.T) {
	cfg := testConfig()
	cfg.Lesson.StartSection = "navigation"

	model := newTestModel(t, cfg)
	if model.activeSection() != lesson.SectionNavigation {
		t.Errorf("Expected navigation panel, got %q", model.activeSection())
	}

	cfg.Lesson.StartSection = "onboarding"
	model = newTestModel(t, cfg)
	if model.activeSection() != lesson.SectionHierarchy {
		t.Errorf("Expected unknown start section to fall back to hierarchy, got %q", model.activeSection())
	}
}

func TestSectionTransitions(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, _ = press(t, m, keyTab)
	if m.activeSection() != lesson.SectionSpacing {
		t.Errorf("Expected spacing after tab, got %q", m.activeSection())
	}

	m, _ = press(t, m, keyShiftTab, keyShiftTab)
	if m.activeSection() != lesson.SectionSummary {
		t.Errorf("Expected shift+tab to wrap to summary, got %q", m.activeSection())
	}

	m, _ = press(t, m, runes("3"))
	if m.activeSection() != lesson.SectionNavigation {
		t.Errorf("Expected navigation after '3', got %q", m.activeSection())
	}
}

func TestMarkCompleteIsIdempotent(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, cmd := press(t, m, runes("c"))
	if cmd == nil {
		t.Fatal("Expected a completion command the first time")
	}
	msg, ok := cmd().(SectionCompletedMsg)
	if !ok {
		t.Fatalf("Expected SectionCompletedMsg, got %T", cmd())
	}
	if msg.Section != lesson.SectionHierarchy {
		t.Errorf("Expected hierarchy completed, got %q", msg.Section)
	}

	m, cmd = press(t, m, runes("c"))
	if cmd != nil {
		t.Error("Expected no command when completing again")
	}
	if m.Progress() != 0.2 {
		t.Errorf("Expected progress 0.2 after completing hierarchy twice, got %v", m.Progress())
	}
}

func TestCompleteEverySection(t *testing.T) {
	m := newTestModel(t, testConfig())

	var cmd tea.Cmd
	for _, k := range []string{"5", "2", "4", "1", "3"} {
		m, cmd = press(t, m, runes(k), runes("c"))
	}
	if m.Progress() != 1.0 {
		t.Fatalf("Expected progress 1.0, got %v", m.Progress())
	}

	m, _ = press(t, m, cmd())
	if !strings.Contains(m.notice, "Lesson complete") {
		t.Errorf("Expected lesson complete notice, got %q", m.notice)
	}
}

func TestNoticeClearsOnNextKey(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, cmd := press(t, m, runes("c"))
	m, _ = press(t, m, cmd())
	if m.notice == "" {
		t.Fatal("Expected a notice after completing a section")
	}

	m, _ = press(t, m, keyDown)
	if m.notice != "" {
		t.Errorf("Expected notice to clear, got %q", m.notice)
	}
}

func TestChecklistAutoComplete(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, runes("4"))

	total := m.checklist.Total()
	var cmd tea.Cmd
	for i := 0; i < total; i++ {
		m, cmd = press(t, m, keySpace)
		if i < total-1 {
			if cmd != nil {
				t.Fatalf("Unexpected completion after %d items", i+1)
			}
			m, _ = press(t, m, keyDown)
		}
	}

	if cmd == nil {
		t.Fatal("Expected completion once every item is checked")
	}
	if !m.tracker.IsComplete(lesson.SectionAccessibility) {
		t.Error("Expected accessibility section to be complete")
	}

	// Unchecking and rechecking must not complete twice
	m, _ = press(t, m, keySpace)
	_, cmd = press(t, m, keySpace)
	if cmd != nil {
		t.Error("Expected no second completion")
	}
}

func TestChecklistAutoCompleteDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Lesson.AutoComplete = false

	m := newTestModel(t, cfg)
	m, _ = press(t, m, runes("4"))
	for i := 0; i < m.checklist.Total(); i++ {
		m, _ = press(t, m, keySpace, keyDown)
	}

	if !m.checklist.Complete() {
		t.Fatal("Expected every item checked")
	}
	if m.tracker.IsComplete(lesson.SectionAccessibility) {
		t.Error("Expected accessibility to stay incomplete without auto_complete")
	}
}

func TestHierarchyKeys(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, _ = press(t, m, keySpace)
	if !m.hierarchy.ShowGuide {
		t.Error("Expected guide toggled on")
	}
	if !strings.Contains(m.View(), "2 PRIMARY") {
		t.Error("Expected guide tags in the view")
	}

	m, _ = press(t, m, keyDown, keyEnter)
	if m.hierarchy.ProperSizes {
		t.Error("Expected proper sizes toggled off")
	}
	if m.hierarchy.Score() != 1 {
		t.Errorf("Expected score 1, got %d", m.hierarchy.Score())
	}
}

func TestSpacingKeys(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, runes("2"), keyRight)

	if got := m.spacing.Value(widget.SectionSpacing); got != 32 {
		t.Errorf("Expected section spacing 32, got %d", got)
	}

	m, _ = press(t, m, keyDown, keyRight)
	if got := m.spacing.Value(widget.CardPadding); got != 24 {
		t.Errorf("Expected card padding 24, got %d", got)
	}
	for i := 0; i < 10; i++ {
		m, _ = press(t, m, keyRight)
	}
	if got := m.spacing.Value(widget.CardPadding); got != 32 {
		t.Errorf("Expected card padding clamped at 32, got %d", got)
	}

	m, _ = press(t, m, runes("r"))
	if got := m.spacing.Value(widget.CardPadding); got != 16 {
		t.Errorf("Expected card padding reset to 16, got %d", got)
	}
	if got := m.spacing.Value(widget.SectionSpacing); got != 24 {
		t.Errorf("Expected section spacing reset to 24, got %d", got)
	}

	m, _ = press(t, m, keyDown, keyLeft)
	if got := m.spacing.Value(widget.ElementGap); got != 8 {
		t.Errorf("Expected element gap 8, got %d", got)
	}
}

func TestNavigationKeys(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, runes("3"))

	if m.navigation.Selected() != widget.NavBottomTabs {
		t.Fatalf("Expected bottom tabs by default, got %q", m.navigation.Selected())
	}

	m, _ = press(t, m, keyRight)
	if m.navigation.Selected() != widget.NavDrawer {
		t.Errorf("Expected drawer, got %q", m.navigation.Selected())
	}

	m, _ = press(t, m, keyLeft, keyLeft)
	if m.navigation.Selected() != widget.NavTopTabs {
		t.Errorf("Expected wrap to top tabs, got %q", m.navigation.Selected())
	}
}

func TestNavigationPhoneTabKeys(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, runes("3"))

	if got := m.navigation.ActiveTab().ID; got != "home" {
		t.Fatalf("Expected the phone on home, got %q", got)
	}

	m, _ = press(t, m, keyDown, keyDown)
	if got := m.navigation.ActiveTab().ID; got != "create" {
		t.Errorf("Expected create tab, got %q", got)
	}
	if m.navigation.Selected() != widget.NavBottomTabs {
		t.Errorf("Expected tab keys to keep the pattern, got %q", m.navigation.Selected())
	}

	m, _ = press(t, m, keyUp, keyUp, keyUp)
	if got := m.navigation.ActiveTab().ID; got != "profile" {
		t.Errorf("Expected wrap to profile, got %q", got)
	}
	if !strings.Contains(m.View(), "Your Profile") {
		t.Error("Expected the phone heading to follow the open tab")
	}
}

func TestFilterMode(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, runes("5"), runes("/"))

	if m.state != StateFilter {
		t.Fatalf("Expected StateFilter after '/', got %d", m.state)
	}

	// 'q' is typed, not quit
	m, _ = press(t, m, runes("q"))
	if m.shouldQuit {
		t.Error("Expected 'q' to be typed into the filter")
	}
	if m.practices.Filter() != "q" {
		t.Errorf("Expected filter 'q', got %q", m.practices.Filter())
	}

	m, _ = press(t, m, keyEsc)
	if m.state != StateLesson {
		t.Errorf("Expected StateLesson after esc, got %d", m.state)
	}
	if m.practices.Filter() != "" {
		t.Errorf("Expected filter cleared, got %q", m.practices.Filter())
	}

	m, _ = press(t, m, runes("/"), runes("navigation"), keyEnter)
	if m.state != StateLesson {
		t.Errorf("Expected StateLesson after enter, got %d", m.state)
	}
	if m.practices.Filter() != "navigation" {
		t.Errorf("Expected filter kept after enter, got %q", m.practices.Filter())
	}
	if len(m.practices.Visible()) >= m.practices.Len() {
		t.Error("Expected the filter to narrow the list")
	}
}

func TestFilterOnlyOnSummary(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, runes("/"))

	if m.state != StateLesson {
		t.Errorf("Expected '/' to be ignored outside the summary panel, got %d", m.state)
	}
}

func TestExamplesToggle(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, runes("5"), runes("x"))

	if !m.practices.ShowingDont() {
		t.Error("Expected don't examples after 'x'")
	}
}

func TestAccessibilityExampleToggle(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, runes("4"))

	if !m.checklist.ShowingGood() {
		t.Fatal("Expected the good example first")
	}

	m, _ = press(t, m, runes("x"))
	if m.checklist.ShowingGood() {
		t.Error("Expected the poor example after 'x'")
	}
	if !strings.Contains(m.View(), "Issues:") {
		t.Error("Expected the issues list in the view")
	}
	if m.practices.ShowingDont() {
		t.Error("Expected practices examples to be left alone")
	}
}

func TestHelp(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, _ = press(t, m, runes("?"))
	if m.state != StateHelp {
		t.Errorf("Expected StateHelp after '?', got %d", m.state)
	}
	if !strings.Contains(m.View(), "mark section complete") {
		t.Error("Expected help screen to list the complete key")
	}

	m, _ = press(t, m, runes("z"))
	if m.state != StateLesson {
		t.Errorf("Expected any key to close help, got %d", m.state)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, cmd := press(t, m, runes("q"))
	if !m.ShouldQuit() {
		t.Error("Expected ShouldQuit after 'q'")
	}
	if cmd == nil {
		t.Error("Expected tea.Quit command")
	}
}

func TestCtrlCQuitsWhileFiltering(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, runes("5"), runes("/"), tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.ShouldQuit() {
		t.Error("Expected ctrl+c to quit from filter mode")
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})
	if m.width != 140 || m.height != 50 {
		t.Errorf("Expected 140x50, got %dx%d", m.width, m.height)
	}
	if m.progress.Width != 124 {
		t.Errorf("Expected progress width 124, got %d", m.progress.Width)
	}
}

func TestResizeReusesMarkdownForSameWidth(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})
	md := m.markdown
	if md == nil || md.Width() != 132 {
		t.Fatalf("Expected a renderer wrapping at 132, got %+v", md)
	}

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 140, Height: 30})
	if m.markdown != md {
		t.Error("Expected the renderer to be reused when the width is unchanged")
	}

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.markdown == md || m.markdown.Width() != 82 {
		t.Errorf("Expected a new renderer wrapping at 82, got %d", m.markdown.Width())
	}
}

func TestMarkdownDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.UI.Markdown = false

	m := newTestModel(t, cfg)
	intro := m.intros[lesson.SectionHierarchy]
	if intro == "" {
		t.Fatal("Expected a plain intro")
	}
	if !strings.Contains(intro, "**headline**") {
		t.Errorf("Expected markdown source to be shown unrendered, got %q", intro)
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	for _, want := range []string{"0/5 complete", "Welcome back, Sarah!", "Tip:"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	cfg := config.DefaultConfig().Keys
	cfg.Complete = "m"
	cfg.Up = ""

	km := KeyMapFromConfig(&cfg)

	if !key.Matches(runes("m"), km.Complete) {
		t.Error("Expected 'm' to mark complete")
	}
	if key.Matches(runes("c"), km.Complete) {
		t.Error("Expected 'c' to no longer mark complete")
	}
	if !key.Matches(runes("k"), km.Up) {
		t.Error("Expected empty up binding to fall back to defaults")
	}
	if !key.Matches(keySpace, km.Toggle) {
		t.Error("Expected space to toggle")
	}
}

func TestCopyPractice(t *testing.T) {
	m := newTestModel(t, testConfig())

	_, cmd := press(t, m, runes("y"))
	if cmd != nil {
		t.Error("Expected 'y' to do nothing outside the summary panel")
	}

	// The command touches the system clipboard, so only check it exists
	m, cmd = press(t, m, runes("5"), runes("y"))
	if cmd == nil {
		t.Fatal("Expected a copy command on the summary panel")
	}

	m, _ = press(t, m, PracticeCopiedMsg{Title: "One primary action"})
	if !strings.Contains(m.notice, "One primary action") {
		t.Errorf("Expected copy notice, got %q", m.notice)
	}

	m, _ = press(t, m, ErrorMsg{Err: errors.New("no clipboard")})
	if m.err == nil || !strings.Contains(m.View(), "no clipboard") {
		t.Error("Expected clipboard error to be shown")
	}
}
