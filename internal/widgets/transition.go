package widgets

import (
	"strings"
	"time"
)

const (
	// EnterAnimation is how long the page-enter class stays applied.
	EnterAnimation = 320 * time.Millisecond
	// ExitDelay is the pause before navigating away.
	ExitDelay = 240 * time.Millisecond
)

// LinkClick describes a click on a navigation link.
type LinkClick struct {
	Href   string
	Target string
	Meta   bool
	Ctrl   bool
	Shift  bool
	Alt    bool
}

// Intercepts reports whether the page-exit transition should run before
// following the link. In-page anchors, mail and script links, modified
// clicks and new-tab targets navigate immediately.
func Intercepts(c LinkClick) bool {
	href := c.Href
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
		return false
	}
	if c.Meta || c.Ctrl || c.Shift || c.Alt {
		return false
	}
	return c.Target != "_blank"
}
