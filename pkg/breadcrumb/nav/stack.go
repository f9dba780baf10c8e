package nav

// pageStack is the ordered history of visited pages; the tail is the
// page currently shown. It carries no locking of its own: the
// Coordinator serializes every access under its mutex.
type pageStack struct {
	entries []Page
}

// reset discards any history and restarts the stack with a single root.
func (s *pageStack) reset(root Page) {
	s.entries = append(s.entries[:0], root)
}

func (s *pageStack) push(page Page) {
	s.entries = append(s.entries, page)
}

// pop removes and returns the tail entry. The boolean is false when the
// stack is empty; root protection is the Coordinator's job, not ours.
func (s *pageStack) pop() (Page, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	page := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return page, true
}

// peek returns a copy of the tail entry without mutation.
func (s *pageStack) peek() (Page, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *pageStack) depth() int {
	return len(s.entries)
}

// snapshot returns a copy of the history, root first.
func (s *pageStack) snapshot() []Page {
	out := make([]Page, len(s.entries))
	copy(out, s.entries)
	return out
}
