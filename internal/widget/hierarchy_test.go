package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

func TestHierarchyDefaults(t *testing.T) {
	h := NewHierarchy()
	assert.False(t, h.ShowGuide, "guide starts hidden")
	assert.True(t, h.ProperSizes)
	assert.True(t, h.ProperContrast)
	assert.Equal(t, len(HierarchyCues), h.Score())
}

func TestHierarchyToggleFlipsOneValue(t *testing.T) {
	h := NewHierarchy()

	assert.NoError(t, h.Toggle(HierarchyContrast))
	assert.False(t, h.ProperContrast)
	assert.True(t, h.ProperSizes)
	assert.False(t, h.ShowGuide)
	assert.Equal(t, 1, h.Score())

	assert.NoError(t, h.Toggle(HierarchyContrast))
	assert.True(t, h.ProperContrast)
}

func TestHierarchyGuideDoesNotScore(t *testing.T) {
	h := NewHierarchy()
	assert.NoError(t, h.Set(HierarchyGuide, true))
	assert.True(t, h.Enabled(HierarchyGuide))
	assert.Equal(t, 2, h.Score())
}

func TestHierarchyUnknownOption(t *testing.T) {
	h := NewHierarchy()
	assert.ErrorIs(t, h.Toggle(HierarchyOption(42)), lesson.ErrInvalidArgument)
	assert.Equal(t, 2, h.Score())
}

func TestHierarchyToggleSelected(t *testing.T) {
	h := NewHierarchy()
	h.MoveDown()
	assert.Equal(t, HierarchySizes, h.Selected())

	h.ToggleSelected()
	assert.False(t, h.ProperSizes)

	for i := 0; i < 10; i++ {
		h.MoveDown()
	}
	assert.Equal(t, HierarchyContrast, h.Selected())
}

func TestHierarchyOptionKeysMatchContent(t *testing.T) {
	c, err := lesson.DefaultContent()
	assert.NoError(t, err)
	for _, o := range HierarchyOptions {
		_, ok := c.Hierarchy.Option(o.Key())
		assert.True(t, ok, "content has no label for %q", o.Key())
	}
}
