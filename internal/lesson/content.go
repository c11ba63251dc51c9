package lesson

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Content is the fixed text and configuration of the lesson.
type Content struct {
	Title      string            `yaml:"title"`
	Subtitle   string            `yaml:"subtitle"`
	Sections   []SectionContent  `yaml:"sections"`
	Hierarchy  HierarchyContent  `yaml:"hierarchy"`
	Spacing    SpacingContent    `yaml:"spacing"`
	Navigation NavigationContent `yaml:"navigation"`
	Checklist  ChecklistContent  `yaml:"checklist"`
	Practices  []PracticeContent `yaml:"practices"`
}

// SectionContent is the text shown at the top of a section's panel.
type SectionContent struct {
	ID    SectionID `yaml:"id"`
	Title string    `yaml:"title"`
	Intro string    `yaml:"intro"` // markdown
	Tip   string    `yaml:"tip"`
}

// HierarchyContent describes the hierarchy demo's toggles.
type HierarchyContent struct {
	Options []ToggleContent `yaml:"options"`
}

// ToggleContent labels one boolean toggle.
type ToggleContent struct {
	Key         string `yaml:"key"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// SpacingContent describes the spacing demo's sliders.
type SpacingContent struct {
	Sliders []SliderContent `yaml:"sliders"`
}

// SliderContent declares a slider's bounds and label.
type SliderContent struct {
	Key         string `yaml:"key"`
	Label       string `yaml:"label"`
	Unit        string `yaml:"unit"`
	Min         int    `yaml:"min"`
	Max         int    `yaml:"max"`
	Step        int    `yaml:"step"`
	Default     int    `yaml:"default"`
	Description string `yaml:"description"`
}

// Navigation pattern IDs the phone mock can draw.
const (
	PatternBottomTabs = "bottom-tabs"
	PatternDrawer     = "drawer"
	PatternTopTabs    = "top-tabs"
)

// KnownPattern reports whether id names a drawable navigation pattern.
func KnownPattern(id string) bool {
	switch id {
	case PatternBottomTabs, PatternDrawer, PatternTopTabs:
		return true
	}
	return false
}

// NavigationContent lists the navigation patterns on offer.
type NavigationContent struct {
	Default  string           `yaml:"default"`
	Patterns []PatternContent `yaml:"patterns"`
}

// PatternContent describes one navigation pattern.
type PatternContent struct {
	ID          string   `yaml:"id"`
	Label       string   `yaml:"label"`
	BestFor     string   `yaml:"best_for"`
	Description string   `yaml:"description"`
	Pros        []string `yaml:"pros"`
	Cons        []string `yaml:"cons"`
}

// ChecklistContent lists the accessibility checklist categories.
type ChecklistContent struct {
	Categories []CategoryContent `yaml:"categories"`
	Poor       ExampleContent    `yaml:"poor"`
	Good       ExampleContent    `yaml:"good"`
}

// CategoryContent is one group of checklist items.
type CategoryContent struct {
	ID    string        `yaml:"id"`
	Title string        `yaml:"title"`
	Items []ItemContent `yaml:"items"`
}

// ItemContent is one checklist item.
type ItemContent struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// ExampleContent is one side of the before/after accessibility example.
type ExampleContent struct {
	Title string   `yaml:"title"`
	Notes []string `yaml:"notes"`
}

// PracticeContent is one entry of the best-practices list.
type PracticeContent struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Do       string `yaml:"do"`
	Dont     string `yaml:"dont"`
}

var (
	defaultOnce    sync.Once
	defaultContent *Content
	defaultErr     error
)

// DefaultContent returns the content embedded in the binary. It is parsed
// once; callers must not modify the result.
func DefaultContent() (*Content, error) {
	defaultOnce.Do(func() {
		defaultContent, defaultErr = ParseContent(contentYAML)
	})
	return defaultContent, defaultErr
}

// ParseContent parses and validates lesson content.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse lesson content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the content covers every section and that every
// declared identifier and bound is consistent.
func (c *Content) Validate() error {
	seen := make(map[SectionID]bool)
	for _, s := range c.Sections {
		if !s.ID.Valid() {
			return fmt.Errorf("content: section %q: %w", s.ID, ErrInvalidArgument)
		}
		if seen[s.ID] {
			return fmt.Errorf("content: duplicate section %q", s.ID)
		}
		seen[s.ID] = true
	}
	for _, id := range AllSections {
		if !seen[id] {
			return fmt.Errorf("content: missing section %q", id)
		}
	}

	for _, s := range c.Spacing.Sliders {
		if s.Step <= 0 || s.Min > s.Max {
			return fmt.Errorf("content: slider %q has bounds [%d,%d] step %d", s.Key, s.Min, s.Max, s.Step)
		}
		if (s.Max-s.Min)%s.Step != 0 {
			return fmt.Errorf("content: slider %q max %d is not a multiple of %d from %d", s.Key, s.Max, s.Step, s.Min)
		}
		if s.Default < s.Min || s.Default > s.Max || (s.Default-s.Min)%s.Step != 0 {
			return fmt.Errorf("content: slider %q default %d is not on its scale", s.Key, s.Default)
		}
	}

	if len(c.Navigation.Patterns) == 0 {
		return fmt.Errorf("content: no navigation patterns")
	}
	patterns := make(map[string]bool)
	for _, p := range c.Navigation.Patterns {
		if !KnownPattern(p.ID) {
			return fmt.Errorf("content: navigation pattern %q: %w", p.ID, ErrInvalidArgument)
		}
		if patterns[p.ID] {
			return fmt.Errorf("content: duplicate navigation pattern %q", p.ID)
		}
		patterns[p.ID] = true
	}
	if c.Navigation.Default != "" && c.Navigation.Pattern(c.Navigation.Default) == nil {
		return fmt.Errorf("content: default navigation pattern %q is not declared", c.Navigation.Default)
	}

	items := make(map[string]bool)
	for _, cat := range c.Checklist.Categories {
		for _, it := range cat.Items {
			if items[it.ID] {
				return fmt.Errorf("content: duplicate checklist item %q", it.ID)
			}
			items[it.ID] = true
		}
	}
	return nil
}

// Section returns the content for id, or nil.
func (c *Content) Section(id SectionID) *SectionContent {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i]
		}
	}
	return nil
}

// Slider returns the slider declared under key.
func (s SpacingContent) Slider(key string) (SliderContent, bool) {
	for _, sl := range s.Sliders {
		if sl.Key == key {
			return sl, true
		}
	}
	return SliderContent{}, false
}

// Option returns the toggle declared under key.
func (h HierarchyContent) Option(key string) (ToggleContent, bool) {
	for _, o := range h.Options {
		if o.Key == key {
			return o, true
		}
	}
	return ToggleContent{}, false
}

// Pattern returns the pattern with the given id, or nil.
func (n NavigationContent) Pattern(id string) *PatternContent {
	for i := range n.Patterns {
		if n.Patterns[i].ID == id {
			return &n.Patterns[i]
		}
	}
	return nil
}
