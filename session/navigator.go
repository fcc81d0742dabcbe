package session

import "sync"

// Navigator moves the portal to another page. A replace navigation swaps the
// current history entry so going back cannot land on it again.
type Navigator interface {
	Navigate(path string, replace bool)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(path string, replace bool)

func (f NavigatorFunc) Navigate(path string, replace bool) {
	f(path, replace)
}

// History is an in-process Navigator that keeps a back stack.
type History struct {
	mu      sync.Mutex
	entries []string
}

var _ Navigator = (*History)(nil)

func NewHistory(start string) *History {
	return &History{entries: []string{start}}
}

func (h *History) Navigate(path string, replace bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if replace && len(h.entries) > 0 {
		h.entries[len(h.entries)-1] = path
		return
	}
	h.entries = append(h.entries, path)
}

// Back pops the current entry and returns the new current page.
func (h *History) Back() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) > 1 {
		h.entries = h.entries[:len(h.entries)-1]
	}
	return h.current()
}

func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current()
}

// Entries returns a copy of the back stack, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

func (h *History) current() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}
