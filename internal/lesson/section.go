package lesson

import (
	"fmt"
	"strings"
)

// SectionID identifies one of the fixed lesson sections.
type SectionID string

// Lesson sections, in display order.
const (
	SectionHierarchy     SectionID = "hierarchy"
	SectionSpacing       SectionID = "spacing"
	SectionNavigation    SectionID = "navigation"
	SectionAccessibility SectionID = "accessibility"
	SectionSummary       SectionID = "summary"
)

// AllSections is the ordered list of every lesson section.
var AllSections = []SectionID{
	SectionHierarchy,
	SectionSpacing,
	SectionNavigation,
	SectionAccessibility,
	SectionSummary,
}

// String returns the section's identifier.
func (s SectionID) String() string {
	return string(s)
}

// Valid reports whether s is one of AllSections.
func (s SectionID) Valid() bool {
	return IndexOf(s) >= 0
}

// IndexOf returns the position of s in AllSections, or -1.
func IndexOf(s SectionID) int {
	for i, id := range AllSections {
		if id == s {
			return i
		}
	}
	return -1
}

// ParseSectionID parses a section name as written in config or on the
// command line. Matching ignores case and surrounding whitespace.
func ParseSectionID(s string) (SectionID, error) {
	id := SectionID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("unknown section %q: %w", s, ErrInvalidArgument)
	}
	return id, nil
}
