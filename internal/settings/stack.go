// Package settings holds the bounded stack of saved colour settings.
package settings

import "rgbhsl/internal/colormodel"

// Capacity is the number of slots in a Stack.
const Capacity = 10

// Entry is one saved palette entry: a colour plus the brightness it was
// saved with.
type Entry struct {
	Color      colormodel.RGB `json:"color" yaml:"color"`
	Brightness uint8          `json:"brightness" yaml:"brightness"`
}

// Stack is a fixed-capacity LIFO of entries.
//
// A Stack is not safe for concurrent use. Hosts that call it from more
// than one goroutine must serialise access themselves.
type Stack struct {
	slots [Capacity]Entry
	top   int
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push stores e on top of the stack. It returns false and leaves the stack
// untouched when all slots are taken.
func (s *Stack) Push(e Entry) bool {
	if s.top == Capacity {
		return false
	}
	s.slots[s.top] = e
	s.top++
	return true
}

// Pop removes and returns the top entry.
//
// Popping an empty stack is not reported: it returns whatever is in the
// bottom slot (the zero Entry if nothing was ever pushed, otherwise the
// last entry that occupied it) and the stack stays empty. This matches the
// behaviour existing callers depend on; use TryPop to detect emptiness.
func (s *Stack) Pop() Entry {
	if s.top != 0 {
		s.top--
	}
	return s.slots[s.top]
}

// TryPop is Pop with an explicit empty result.
func (s *Stack) TryPop() (Entry, bool) {
	if s.top == 0 {
		return Entry{}, false
	}
	return s.Pop(), true
}

// Len returns the number of occupied slots.
func (s *Stack) Len() int { return s.top }

// Cap returns the fixed capacity.
func (s *Stack) Cap() int { return Capacity }

// Entries returns a copy of the occupied slots, bottom first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, s.top)
	copy(out, s.slots[:s.top])
	return out
}
