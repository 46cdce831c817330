package domain

// Panel is one page of the carousel
type Panel struct {
	Path  string // source file ("" for generated panels)
	Name  string // file name without extension
	Title string // front matter title, falls back to Name
	Color string // border color from front matter ("" for default)
	Body  string // content below the front matter
}

// DisplayTitle returns the title shown in the panel header
func (p Panel) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

// PanelSet is the ordered set of panels shown by one swiper.
// Insertion order is display order; the set is replaced wholesale.
type PanelSet struct {
	Dir    string
	Panels []Panel
}

// Len returns the number of panels
func (s PanelSet) Len() int {
	return len(s.Panels)
}

// At returns the panel at index i, or false if i is out of range
func (s PanelSet) At(i int) (Panel, bool) {
	if i < 0 || i >= len(s.Panels) {
		return Panel{}, false
	}
	return s.Panels[i], true
}

// Titles returns the display titles in order
func (s PanelSet) Titles() []string {
	titles := make([]string, len(s.Panels))
	for i, p := range s.Panels {
		titles[i] = p.DisplayTitle()
	}
	return titles
}

// ScanProgress represents the current loading state
type ScanProgress struct {
	IsScanning  bool
	PanelsFound int
	CurrentDir  string
}
