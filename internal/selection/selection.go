// Package selection tracks the highlighted index over a result list and the
// open/closed dropdown state. It owns only indices: it holds no copy of the
// results and must be re-synced whenever the list changes.
package selection

// NoSelection is the index meaning "nothing highlighted".
const NoSelection = -1

// Controller is the dropdown state machine. Closed implies index == -1;
// Open allows index in [-1, n-1]. Index -1 is unreachable via navigation:
// the first downward step lands on 0 and navigation never wraps.
type Controller struct {
	open  bool
	index int
	count int
}

// New returns a closed controller with no selection.
func New() *Controller {
	return &Controller{index: NoSelection}
}

// IsOpen reports whether the dropdown is open.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Index returns the highlighted index, or NoSelection.
func (c *Controller) Index() int {
	return c.index
}

// Count returns the size of the result list last synced via SetResults.
func (c *Controller) Count() int {
	return c.count
}

// Current returns the highlighted index and whether one is committed-able.
func (c *Controller) Current() (int, bool) {
	if !c.open || c.index < 0 || c.index >= c.count {
		return NoSelection, false
	}
	return c.index, true
}

// Open transitions Closed -> Open, but only when there is a non-empty query
// or a non-empty result list to show. Returns whether the dropdown is open
// afterwards.
func (c *Controller) Open(hasQueryOrResults bool) bool {
	if c.open {
		return true
	}
	if !hasQueryOrResults {
		return false
	}
	c.open = true
	return true
}

// Close transitions to Closed and resets the selection.
func (c *Controller) Close() {
	c.open = false
	c.index = NoSelection
}

// SetResults re-syncs the controller with a replaced result list. The
// selection always resets to -1 (no implicit auto-select of the first
// result); an empty list while open closes the dropdown. Returns true if
// the dropdown closed as a consequence.
func (c *Controller) SetResults(count int) (closed bool) {
	if count < 0 {
		count = 0
	}
	c.count = count
	c.index = NoSelection
	if c.open && count == 0 {
		c.open = false
		return true
	}
	return false
}

// Navigate moves the highlight by delta (+1/-1), clamping at both ends:
// stepping past the last result or above the first is a no-op, and -1 is
// never re-entered once navigation has started. No-op while closed or when
// there are no results.
func (c *Controller) Navigate(delta int) {
	if !c.open || c.count == 0 {
		return
	}
	next := c.index + delta
	if c.index == NoSelection && delta > 0 {
		next = 0
	}
	if next < 0 || next >= c.count {
		return
	}
	c.index = next
}

// Hover preview-selects an index directly (mouse hover over a row). Out of
// range indices are ignored.
func (c *Controller) Hover(index int) {
	if !c.open || index < 0 || index >= c.count {
		return
	}
	c.index = index
}

// Select commits an index and closes the dropdown, returning the committed
// index. Returns NoSelection, false when the index is invalid or the
// dropdown is closed.
func (c *Controller) Select(index int) (int, bool) {
	if !c.open || index < 0 || index >= c.count {
		return NoSelection, false
	}
	c.index = index
	c.open = false
	committed := c.index
	c.index = NoSelection
	return committed, true
}
