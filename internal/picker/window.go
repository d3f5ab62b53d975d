package picker

// Window is the contiguous [Begin, End] range of the working view chosen for
// display. End is an upper bound: when the list is shorter than the viewport
// it can point past the last record.
type Window struct {
	Begin int
	End   int
}

// NewWindow returns the rows to draw for a viewport of height rows so that
// selected stays visible. The window is anchored at the top until the
// selection moves past the first screen, then it ends on the selection.
func NewWindow(selected, height int) Window {
	if height < 1 {
		height = 1
	}
	if selected >= height {
		return Window{Begin: selected + 1 - height, End: selected}
	}
	return Window{Begin: 0, End: height - 1}
}

// Contains reports whether index i falls inside the window.
func (w Window) Contains(i int) bool { return i >= w.Begin && i <= w.End }

// Above returns how many records are scrolled off above the window.
func (w Window) Above() int { return w.Begin }

// Below returns how many of count records are hidden below the window.
func (w Window) Below(count int) int {
	if n := count - 1 - w.End; n > 0 {
		return n
	}
	return 0
}
