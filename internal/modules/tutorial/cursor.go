package tutorial

// Cursor walks the steps of one tutorial. Moves past either end are no-ops.
type Cursor struct {
	tutorial *Tutorial
	index    int
}

func NewCursor(t *Tutorial) *Cursor {
	return &Cursor{tutorial: t}
}

func (c *Cursor) Tutorial() *Tutorial {
	return c.tutorial
}

func (c *Cursor) Index() int {
	return c.index
}

func (c *Cursor) Total() int {
	return c.tutorial.StepCount()
}

func (c *Cursor) Current() (Step, bool) {
	return c.tutorial.Step(c.index)
}

func (c *Cursor) HasNext() bool {
	return c.index < c.Total()-1
}

func (c *Cursor) HasPrevious() bool {
	return c.index > 0
}

func (c *Cursor) Next() bool {
	if !c.HasNext() {
		return false
	}
	c.index++
	return true
}

func (c *Cursor) Previous() bool {
	if !c.HasPrevious() {
		return false
	}
	c.index--
	return true
}

func (c *Cursor) First() bool {
	if c.Total() == 0 {
		return false
	}
	c.index = 0
	return true
}

func (c *Cursor) Last() bool {
	if c.Total() == 0 {
		return false
	}
	c.index = c.Total() - 1
	return true
}
