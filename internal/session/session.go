// Package session owns the tester state shared by every host surface: the
// settings stack and the brightness stored by a default push.
//
// An application creates one Session and hands it to the TUI, REPL or MCP
// server. Unlike settings.Stack, a Session is safe for concurrent use.
package session

import (
	"sync"

	"rgbhsl/internal/colormodel"
	"rgbhsl/internal/settings"
	"rgbhsl/pkg/logging"
)

const subsystem = "Session"

// Session serialises access to a settings stack and logs every action.
type Session struct {
	mu                sync.Mutex
	stack             *settings.Stack
	defaultBrightness uint8
}

// New returns a session with an empty stack. defaultBrightness is the
// value PushDefault stores.
func New(defaultBrightness uint8) *Session {
	return &Session{
		stack:             settings.NewStack(),
		defaultBrightness: defaultBrightness,
	}
}

// DefaultBrightness returns the brightness PushDefault stores.
func (s *Session) DefaultBrightness() uint8 {
	return s.defaultBrightness
}

// ToHSL converts c and logs the result.
func (s *Session) ToHSL(c colormodel.RGB) colormodel.HSL {
	hsl := colormodel.RGBToHSL(c)
	logging.Debug(subsystem, "%s -> %s", c, hsl)
	return hsl
}

// ToRGB converts c and logs the result.
func (s *Session) ToRGB(c colormodel.HSL) colormodel.RGB {
	rgb := colormodel.HSLToRGB(c)
	logging.Debug(subsystem, "%s -> %s", c, rgb)
	return rgb
}

// ScaleLuminosity applies a brightness factor to c.
func (s *Session) ScaleLuminosity(c colormodel.HSL, factor float32) colormodel.HSL {
	out := colormodel.ScaleLuminosity(c, factor)
	logging.Debug(subsystem, "luminosity %g x %g = %g", c.Luminosity, factor, out.Luminosity)
	return out
}

// Push saves c with the given brightness. It returns false when the stack is full.
func (s *Session) Push(c colormodel.RGB, brightness uint8) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stack.Push(settings.Entry{Color: c, Brightness: brightness}) {
		logging.Warn(subsystem, "stack full (%d entries), %s not saved", s.stack.Cap(), c.Hex())
		return false
	}
	logging.Info(subsystem, "saved %s brightness %d (%d/%d)", c.Hex(), brightness, s.stack.Len(), s.stack.Cap())
	return true
}

// PushDefault saves c with the session's default brightness.
func (s *Session) PushDefault(c colormodel.RGB) bool {
	return s.Push(c, s.defaultBrightness)
}

// Pop returns the most recently saved entry. On an empty stack it returns
// the stale bottom slot, exactly like settings.Stack.Pop, and logs a warning.
func (s *Session) Pop() settings.Entry {
	e, _ := s.PopChecked()
	return e
}

// PopChecked is Pop that also reports whether an entry was actually removed.
// The returned entry is the same one Pop would return.
func (s *Session) PopChecked() (settings.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stack.Len() == 0 {
		e := s.stack.Pop()
		logging.Warn(subsystem, "stack empty, returning bottom slot %s", e.Color.Hex())
		return e, false
	}
	e := s.stack.Pop()
	logging.Info(subsystem, "restored %s brightness %d (%d/%d)", e.Color.Hex(), e.Brightness, s.stack.Len(), s.stack.Cap())
	return e, true
}

// Saved returns the occupied slots, bottom first.
func (s *Session) Saved() []settings.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Entries()
}

// Capacity returns the size of the stack.
func (s *Session) Capacity() int {
	return settings.Capacity
}
