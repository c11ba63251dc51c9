package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

func TestNewSpacingFromContent(t *testing.T) {
	c, err := lesson.DefaultContent()
	require.NoError(t, err)

	s := NewSpacing(c.Spacing)
	require.Len(t, s.Sliders(), 3)
	assert.Equal(t, SectionSpacing, s.Sliders()[0].Key)
	assert.Equal(t, 24, s.Value(SectionSpacing))
	assert.Equal(t, 16, s.Value(CardPadding))
	assert.Equal(t, 12, s.Value(ElementGap))
	assert.True(t, s.Balanced())
}

func TestNewSpacingFallsBackForMissingSliders(t *testing.T) {
	s := NewSpacing(lesson.SpacingContent{})

	tests := []struct {
		key                     string
		min, max, step, initial int
	}{
		{SectionSpacing, 8, 48, 8, 24},
		{CardPadding, 8, 32, 8, 16},
		{ElementGap, 4, 24, 4, 12},
	}
	for _, tt := range tests {
		sl := s.Slider(tt.key)
		require.NotNil(t, sl, tt.key)
		assert.Equal(t, tt.min, sl.Min, tt.key)
		assert.Equal(t, tt.max, sl.Max, tt.key)
		assert.Equal(t, tt.step, sl.Step, tt.key)
		assert.Equal(t, tt.initial, sl.Value(), tt.key)
	}
}

func TestSpacingSetCardPaddingOutOfBounds(t *testing.T) {
	s := NewSpacing(lesson.SpacingContent{})

	assert.ErrorIs(t, s.Set(CardPadding, 40), lesson.ErrInvalidArgument)
	assert.Equal(t, 16, s.Value(CardPadding))
}

func TestSpacingSetUnknownSlider(t *testing.T) {
	s := NewSpacing(lesson.SpacingContent{})
	assert.ErrorIs(t, s.Set("line_height", 12), lesson.ErrInvalidArgument)
}

func TestSpacingCursorAdjustsFocusedSlider(t *testing.T) {
	s := NewSpacing(lesson.SpacingContent{})

	s.MoveDown()
	assert.Equal(t, 1, s.Cursor())
	s.Increment()
	assert.Equal(t, 24, s.Value(CardPadding))
	assert.Equal(t, 24, s.Value(SectionSpacing), "other sliders must not move")
	assert.Equal(t, 12, s.Value(ElementGap), "other sliders must not move")

	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 2, s.Cursor(), "cursor clamps at the last slider")
	s.MoveUp()
	s.MoveUp()
	s.MoveUp()
	assert.Equal(t, 0, s.Cursor())
}

func TestSpacingBalanced(t *testing.T) {
	s := NewSpacing(lesson.SpacingContent{})
	require.NoError(t, s.Set(SectionSpacing, 16))
	require.NoError(t, s.Set(ElementGap, 16))
	assert.False(t, s.Balanced())

	s.Reset()
	assert.True(t, s.Balanced())
}
