package theme

import "strings"

// Mode is the visual mode of the interface.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode returns the mode named by s. Unknown values report false.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// Flip returns the other mode.
func (m Mode) Flip() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// Hint is the system-level colour scheme preference, when one is known.
type Hint int

const (
	HintNone Hint = iota
	HintLight
	HintDark
)

// ParseHint reads a prefers-color-scheme value ("dark", "light"). Anything
// else is HintNone.
func ParseHint(s string) Hint {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(s), `"`)) {
	case "dark":
		return HintDark
	case "light":
		return HintLight
	default:
		return HintNone
	}
}
