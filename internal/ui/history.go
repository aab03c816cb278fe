package ui

// History is a bounded list of entered lines with a navigation cursor.
// The line being edited before navigation started is kept as a draft and
// restored when navigating past the newest entry.
type History struct {
	entries []string
	max     int
	cursor  int
	draft   string
}

// NewHistory keeps at most max lines; max <= 0 disables history.
func NewHistory(max int) *History {
	return &History{max: max}
}

// Push appends line and resets navigation. Repeating the newest entry is a
// no-op.
func (h *History) Push(line string) {
	defer h.reset()
	if h.max <= 0 {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if over := len(h.entries) - h.max; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
}

// Prev moves to the previous (older) entry.
func (h *History) Prev(current string) (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves to the next (newer) entry, ending at the draft.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.cursor], true
}

// Entries returns the stored lines, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *History) reset() {
	h.cursor = len(h.entries)
	h.draft = ""
}
