package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Pages    int
	Page     int
	Autoplay bool
	Open     bool
}

// PageCount returns the number of panels
func (c *ModelContext) PageCount() int {
	return c.Pages
}

// CurrentPage returns the logical page shown
func (c *ModelContext) CurrentPage() int {
	return c.Page
}

// AutoplayEnabled reports whether autoplay is running
func (c *ModelContext) AutoplayEnabled() bool {
	return c.Autoplay
}

// PanelOpen reports whether a panel is open in the pager
func (c *ModelContext) PanelOpen() bool {
	return c.Open
}
