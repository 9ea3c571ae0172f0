// Package tui implements the interactive colour tester on Bubble Tea.
//
// The tester has one input field per RGB channel, one per HSL component and
// one for brightness. Control-key bindings take the place of the buttons of
// a classic tester window:
//
//	enter   show the RGB fields in the swatch
//	ctrl+l  convert the RGB fields to HSL
//	ctrl+g  convert the HSL fields to RGB
//	ctrl+b  scale luminosity by brightness/255
//	ctrl+p  push the RGB fields and brightness on the settings stack
//	ctrl+o  pop the stack into the fields
//	ctrl+y  copy the swatch colour as hex
//
// All state that outlives a keystroke lives in the session.Session passed
// to New, so the same stack can be shared with other surfaces.
//
// Log entries from logging.InitForTUI are shown in a short activity pane
// below the status line.
package tui
