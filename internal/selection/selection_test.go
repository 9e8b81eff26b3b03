package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func openWith(n int) *Controller {
	c := New()
	c.Open(true)
	c.SetResults(n)
	return c
}

func TestInitialState(t *testing.T) {
	c := New()
	assert.False(t, c.IsOpen())
	assert.Equal(t, NoSelection, c.Index())
}

func TestOpenRequiresQueryOrResults(t *testing.T) {
	c := New()
	assert.False(t, c.Open(false), "nothing to show: open is a no-op")
	assert.False(t, c.IsOpen())

	assert.True(t, c.Open(true))
	assert.True(t, c.IsOpen())
}

func TestNavigationClampsAtBothEnds(t *testing.T) {
	c := openWith(3)

	c.Navigate(-1)
	assert.Equal(t, NoSelection, c.Index(), "upward from -1 is a no-op")

	c.Navigate(+1)
	assert.Equal(t, 0, c.Index(), "first downward step lands on 0")
	c.Navigate(-1)
	assert.Equal(t, 0, c.Index(), "-1 unreachable once navigation starts")

	c.Navigate(+1)
	c.Navigate(+1)
	assert.Equal(t, 2, c.Index())
	c.Navigate(+1)
	assert.Equal(t, 2, c.Index(), "past the last result is a no-op, no wrap")
}

func TestNavigateWhileClosedIsNoOp(t *testing.T) {
	c := New()
	c.SetResults(3)
	c.Navigate(+1)
	assert.Equal(t, NoSelection, c.Index())
}

func TestSetResultsResetsSelection(t *testing.T) {
	c := openWith(3)
	c.Navigate(+1)
	c.Navigate(+1)
	assert.Equal(t, 1, c.Index())

	closed := c.SetResults(5)
	assert.False(t, closed)
	assert.Equal(t, NoSelection, c.Index(), "no implicit auto-select of the first result")
	assert.True(t, c.IsOpen())
}

func TestEmptyResultsCloseTheDropdown(t *testing.T) {
	c := openWith(3)
	closed := c.SetResults(0)
	assert.True(t, closed)
	assert.False(t, c.IsOpen())
	assert.Equal(t, NoSelection, c.Index())
}

func TestHoverPreviewSelects(t *testing.T) {
	c := openWith(4)
	c.Hover(2)
	assert.Equal(t, 2, c.Index())
	assert.True(t, c.IsOpen(), "hover must not commit")

	c.Hover(99)
	assert.Equal(t, 2, c.Index(), "out-of-range hover ignored")
}

func TestSelectCommitsAndCloses(t *testing.T) {
	c := openWith(4)
	idx, ok := c.Select(1)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.False(t, c.IsOpen())
	assert.Equal(t, NoSelection, c.Index())
}

func TestSelectInvalidIndex(t *testing.T) {
	c := openWith(2)
	_, ok := c.Select(5)
	assert.False(t, ok)
	assert.True(t, c.IsOpen())

	c.Close()
	_, ok = c.Select(0)
	assert.False(t, ok, "select while closed is a no-op")
}

func TestCloseResetsSelection(t *testing.T) {
	c := openWith(3)
	c.Navigate(+1)
	c.Close()
	assert.False(t, c.IsOpen())
	assert.Equal(t, NoSelection, c.Index())
}

func TestCurrent(t *testing.T) {
	c := openWith(3)
	_, ok := c.Current()
	assert.False(t, ok)

	c.Navigate(+1)
	idx, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}
