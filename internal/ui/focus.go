package ui

// Pane identifies a focusable region of the question list screen.
type Pane int

const (
	PaneQuestions Pane = iota
	PaneCategories
)

func (p Pane) String() string {
	switch p {
	case PaneQuestions:
		return "questions"
	case PaneCategories:
		return "categories"
	default:
		return "unknown"
	}
}

// FocusManager tracks and rotates focus across panes.
type FocusManager struct {
	Current Pane
	Order   []Pane // Tab order for focus rotation
}

// NewFocusManager starts focused on the first pane in order.
func NewFocusManager(order ...Pane) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next pane in order and returns it.
func (f *FocusManager) Next() Pane {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := -1
	for i, p := range f.Order {
		if p == f.Current {
			idx = i
			break
		}
	}
	f.Current = f.Order[(idx+1)%len(f.Order)]
	return f.Current
}

// Is reports whether p has focus.
func (f *FocusManager) Is(p Pane) bool {
	return f.Current == p
}
