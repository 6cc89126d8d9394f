package domain

// Move relocates the element at from to position to, shifting every
// element strictly between the two positions by one. It reports
// whether a move happened: from == to or any index outside [0, len)
// is a no-op, never an error.
func Move[T any](s []T, from, to int) ([]T, bool) {
	if from == to || from < 0 || to < 0 || from >= len(s) || to >= len(s) {
		return s, false
	}
	moved := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = moved
	return s, true
}

// AdjustCursor recomputes a cursor into an ordered collection after
// the element at from moved to to, so the cursor keeps denoting the
// same logical element (or the moved element's new position when the
// cursor sat exactly on it).
func AdjustCursor(cursor, from, to int) int {
	switch {
	case cursor == from:
		return to
	case from < cursor && cursor <= to:
		return cursor - 1
	case to <= cursor && cursor < from:
		return cursor + 1
	default:
		return cursor
	}
}

// CursorAfterDelete recomputes a cursor after the element at deleted
// was removed. tasks is the sequence after removal. Deleting before
// the cursor shifts it left; deleting the cursor's own element resets
// it to the first enabled position (or 0 if none remains).
func CursorAfterDelete(cursor, deleted int, tasks []Task) int {
	switch {
	case deleted < cursor:
		return cursor - 1
	case deleted == cursor:
		if idx := NextEnabled(tasks, 0); idx >= 0 {
			return idx
		}
		return 0
	default:
		return cursor
	}
}
