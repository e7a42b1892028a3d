package regionlist

// viewport tracks the cursor and the first visible row of the list.
// Scroll indicators take one line each when rows are hidden above or below.
type viewport struct {
	selected int
	offset   int
	height   int
}

// window returns the visible row range [start, end) and whether the
// above/below indicators are shown
func (v viewport) window(total int) (start, end int, above, below bool) {
	if total <= 0 || v.height <= 0 {
		return 0, 0, false, false
	}

	start = v.offset
	above = start > 0
	avail := v.height
	if above {
		avail--
	}
	if start+avail < total {
		below = true
		avail--
	}
	if avail < 1 {
		avail = 1
	}
	end = min(total, start+avail)
	return start, end, above, below
}

// clamp keeps the cursor within total rows
func (v *viewport) clamp(total int) {
	if total <= 0 {
		v.selected = 0
		v.offset = 0
		return
	}
	v.selected = max(0, min(v.selected, total-1))
	v.ensureSelectedVisible(total)
}

// move shifts the cursor by delta rows
func (v *viewport) move(delta, total int) {
	v.selected += delta
	v.clamp(total)
}

// ensureSelectedVisible adjusts the offset so the cursor row is drawn
func (v *viewport) ensureSelectedVisible(total int) {
	if v.selected < v.offset {
		v.offset = v.selected
	}

	for v.offset < total-1 {
		_, end, _, _ := v.window(total)
		if v.selected < end {
			break
		}
		v.offset++
	}

	// pull the window back up when it leaves blank space at the bottom
	for v.offset > 0 {
		prev := viewport{selected: v.selected, offset: v.offset - 1, height: v.height}
		ps, pe, _, _ := prev.window(total)
		s, e, _, _ := v.window(total)
		if pe < total || v.selected < ps || v.selected >= pe || pe-ps <= e-s {
			break
		}
		v.offset--
	}
}
