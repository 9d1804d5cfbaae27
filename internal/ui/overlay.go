package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal View shown above the question list. Modals close
// themselves by emitting DismissModalMsg.
type Overlay struct {
	View View
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Remove takes v out of the stack wherever it sits. It reports whether v
// was open.
func (s *OverlayStack) Remove(v View) bool {
	for i := len(s.Stack) - 1; i >= 0; i-- {
		if s.Stack[i].View == v {
			s.Stack = append(s.Stack[:i], s.Stack[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether v is open.
func (s *OverlayStack) Contains(v View) bool {
	for _, o := range s.Stack {
		if o.View == v {
			return true
		}
	}
	return false
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
