package vim

import (
	"fmt"
	"strings"
)

// OpenIn defines how a newly opened path is placed relative to existing
// editor views.
type OpenIn string

const (
	OpenCurrentWindow OpenIn = "current-window" // reuse the current window
	OpenTab           OpenIn = "tab"            // one new tab per path
	OpenSplit         OpenIn = "split"          // stacked horizontal splits
	OpenVSplit        OpenIn = "vsplit"         // side-by-side vertical splits
)

// ParseOpenIn parses a string into an OpenIn mode. The empty string maps to
// OpenCurrentWindow.
func ParseOpenIn(s string) (OpenIn, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "current-window", "current_window":
		return OpenCurrentWindow, nil
	case "tab":
		return OpenTab, nil
	case "split":
		return OpenSplit, nil
	case "vsplit":
		return OpenVSplit, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: current-window, tab, split, vsplit)", ErrInvalidOpenIn, s)
	}
}

// layoutCommand returns the ex command that creates the view for this mode,
// or "" when the current window is reused.
func (o OpenIn) layoutCommand() (string, error) {
	switch o {
	case OpenCurrentWindow, "":
		return "", nil
	case OpenTab:
		return "tabnew", nil
	case OpenSplit:
		return "split", nil
	case OpenVSplit:
		return "vsplit", nil
	default:
		return "", fmt.Errorf("%w: %q (supported: current-window, tab, split, vsplit)", ErrInvalidOpenIn, string(o))
	}
}
