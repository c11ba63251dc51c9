package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

func TestNavigationDefaultFromContent(t *testing.T) {
	c, err := lesson.DefaultContent()
	require.NoError(t, err)

	n := NewNavigation(c.Navigation)
	assert.Equal(t, NavBottomTabs, n.Selected())
	assert.Equal(t, []NavPattern{NavBottomTabs, NavDrawer, NavTopTabs}, n.Options())
}

func TestNavigationNextPrevWrap(t *testing.T) {
	n := NewNavigation(lesson.NavigationContent{})

	n.Prev()
	assert.Equal(t, NavTopTabs, n.Selected())
	n.Next()
	assert.Equal(t, NavBottomTabs, n.Selected())
	n.Next()
	assert.Equal(t, NavDrawer, n.Selected())
}

func TestNavigationSelect(t *testing.T) {
	n := NewNavigation(lesson.NavigationContent{})

	require.NoError(t, n.Select(NavDrawer))
	assert.Equal(t, 1, n.Index())

	err := n.Select("hamburger")
	assert.ErrorIs(t, err, lesson.ErrInvalidArgument)
	assert.Equal(t, NavDrawer, n.Selected(), "rejected Select must keep the choice")
}

func TestNavigationStartsOnHomeTab(t *testing.T) {
	n := NewNavigation(lesson.NavigationContent{})
	assert.Equal(t, "home", n.ActiveTab().ID)
	assert.Equal(t, "Home Feed", n.ActiveTab().Heading)
}

func TestNavigationTabsWrap(t *testing.T) {
	n := NewNavigation(lesson.NavigationContent{})

	n.PrevTab()
	assert.Equal(t, "profile", n.ActiveTab().ID)
	n.NextTab()
	n.NextTab()
	assert.Equal(t, "search", n.ActiveTab().ID)
}

func TestNavigationSelectTab(t *testing.T) {
	n := NewNavigation(lesson.NavigationContent{})

	require.NoError(t, n.SelectTab("notifications"))
	assert.Equal(t, "Notifications", n.ActiveTab().Heading)

	assert.ErrorIs(t, n.SelectTab("explore"), lesson.ErrInvalidArgument)
	assert.Equal(t, "notifications", n.ActiveTab().ID, "rejected SelectTab must keep the tab")
}

func TestNavigationTabSurvivesPatternChange(t *testing.T) {
	n := NewNavigation(lesson.NavigationContent{})
	require.NoError(t, n.SelectTab("create"))

	n.Next()
	assert.Equal(t, NavDrawer, n.Selected())
	assert.Equal(t, "create", n.ActiveTab().ID)
}
