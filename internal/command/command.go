// Package command maps raw key presses and text lines to the symbolic pen
// commands understood by the session loop.
package command

import (
	"strings"

	"github.com/ironsheep/airpaint/internal/imaging"
)

// Command is one user request, dispatched between frames.
type Command int

const (
	// None means no input, or input that maps to nothing. It is ignored.
	None Command = iota
	SetRed
	SetGreen
	SetBlue
	Increase
	Decrease
	Clear
	Save
	Circle
	Square
	Quit
)

var names = [...]string{
	None:     "none",
	SetRed:   "red",
	SetGreen: "green",
	SetBlue:  "blue",
	Increase: "increase",
	Decrease: "decrease",
	Clear:    "clear",
	Save:     "save",
	Circle:   "circle",
	Square:   "square",
	Quit:     "quit",
}

// aliases are extra accepted spellings for Parse.
var aliases = map[string]Command{
	"+":         Increase,
	"-":         Decrease,
	"bigger":    Increase,
	"smaller":   Decrease,
	"rectangle": Square,
	"rect":      Square,
	"exit":      Quit,
}

// String returns the command name used by Parse.
func (c Command) String() string {
	if c < 0 || int(c) >= len(names) {
		return "none"
	}
	return names[c]
}

// Color returns the pen color selected by a set-color command.
func (c Command) Color() (imaging.RGBColor, bool) {
	switch c {
	case SetRed:
		return imaging.Red, true
	case SetGreen:
		return imaging.Green, true
	case SetBlue:
		return imaging.Blue, true
	}
	return imaging.RGBColor{}, false
}

// FromKey maps a key code, as returned by a window toolkit key poll, to a
// command. Negative codes (no key pressed) and unbound keys return None.
//
// Bindings:
//   - q: quit
//   - r, g, b: pen color
//   - + and -: pen size
//   - c: clear the canvas
//   - s: save the canvas
//   - o: circle
//   - p: rectangle
func FromKey(key int) Command {
	if key < 0 {
		return None
	}
	switch rune(key & 0xff) {
	case 'q', 'Q':
		return Quit
	case 'r':
		return SetRed
	case 'g':
		return SetGreen
	case 'b':
		return SetBlue
	case '+', '=':
		return Increase
	case '-', '_':
		return Decrease
	case 'c':
		return Clear
	case 's':
		return Save
	case 'o':
		return Circle
	case 'p':
		return Square
	}
	return None
}

// Parse maps one line of text to a command. A single character is treated
// as a key press; anything longer must be a command name. Matching is case
// insensitive and ignores surrounding space.
func Parse(s string) Command {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return FromKey(int(s[0]))
	}
	s = strings.ToLower(s)
	for i, n := range names {
		if n == s {
			return Command(i)
		}
	}
	if c, ok := aliases[s]; ok {
		return c
	}
	return None
}
