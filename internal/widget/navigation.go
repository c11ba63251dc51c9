package widget

import (
	"fmt"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

// NavPattern identifies a navigation pattern.
type NavPattern string

// Navigation patterns the renderer knows how to draw.
const (
	NavBottomTabs NavPattern = lesson.PatternBottomTabs
	NavDrawer     NavPattern = lesson.PatternDrawer
	NavTopTabs    NavPattern = lesson.PatternTopTabs
)

// PhoneTab is one destination of the mock app.
type PhoneTab struct {
	ID      string
	Label   string
	Icon    string
	Heading string
}

// PhoneTabs lists the mock app's destinations in bar order.
var PhoneTabs = []PhoneTab{
	{ID: "home", Label: "Home", Icon: "⌂", Heading: "Home Feed"},
	{ID: "search", Label: "Search", Icon: "◎", Heading: "Search & Discover"},
	{ID: "create", Label: "Create", Icon: "+", Heading: "Create New Post"},
	{ID: "notifications", Label: "Alerts", Icon: "♪", Heading: "Notifications"},
	{ID: "profile", Label: "Profile", Icon: "☺", Heading: "Your Profile"},
}

// Navigation is a single-choice picker over navigation patterns. It also
// tracks which destination is open inside the mock app.
type Navigation struct {
	options  []NavPattern
	selected int
	tab      int
}

// NewNavigation offers the patterns declared in content, selecting the
// declared default or the first pattern. The mock app opens on home.
func NewNavigation(c lesson.NavigationContent) *Navigation {
	n := &Navigation{}
	for _, p := range c.Patterns {
		n.options = append(n.options, NavPattern(p.ID))
	}
	if len(n.options) == 0 {
		n.options = []NavPattern{NavBottomTabs, NavDrawer, NavTopTabs}
	}
	if c.Default != "" {
		_ = n.Select(NavPattern(c.Default))
	}
	return n
}

// Options returns the patterns on offer.
func (n *Navigation) Options() []NavPattern {
	return n.options
}

// Selected returns the chosen pattern.
func (n *Navigation) Selected() NavPattern {
	return n.options[n.selected]
}

// Index returns the position of the chosen pattern.
func (n *Navigation) Index() int {
	return n.selected
}

// Select chooses a pattern. Patterns not on offer are rejected.
func (n *Navigation) Select(p NavPattern) error {
	for i, o := range n.options {
		if o == p {
			n.selected = i
			return nil
		}
	}
	return fmt.Errorf("navigation pattern %q: %w", p, lesson.ErrInvalidArgument)
}

// Next selects the following pattern, wrapping around.
func (n *Navigation) Next() {
	n.selected = wrap(n.selected+1, len(n.options))
}

// Prev selects the preceding pattern, wrapping around.
func (n *Navigation) Prev() {
	n.selected = wrap(n.selected-1, len(n.options))
}

// ActiveTab returns the destination open in the mock app.
func (n *Navigation) ActiveTab() PhoneTab {
	return PhoneTabs[n.tab]
}

// SelectTab opens the destination with the given id. Unknown ids are
// rejected.
func (n *Navigation) SelectTab(id string) error {
	for i, t := range PhoneTabs {
		if t.ID == id {
			n.tab = i
			return nil
		}
	}
	return fmt.Errorf("phone tab %q: %w", id, lesson.ErrInvalidArgument)
}

// NextTab opens the following destination, wrapping around.
func (n *Navigation) NextTab() {
	n.tab = wrap(n.tab+1, len(PhoneTabs))
}

// PrevTab opens the preceding destination, wrapping around.
func (n *Navigation) PrevTab() {
	n.tab = wrap(n.tab-1, len(PhoneTabs))
}
