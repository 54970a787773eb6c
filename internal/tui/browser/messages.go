package browser

import (
	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/modal"
)

// Catalog Messages

// CatalogLoadedMsg delivers the outcome of an asynchronous catalog load.
type CatalogLoadedMsg struct {
	Result catalog.Result
}

// Modal Messages

// modalFrameMsg is the next render opportunity after opening the modal.
type modalFrameMsg struct{}

// modalFinishMsg fires once the exit animation of a close has elapsed.
type modalFinishMsg struct {
	Token modal.Token
}

// Widget Messages

// slideTickMsg advances the slider.
type slideTickMsg struct{}

// notifyMsg shows the next notification.
type notifyMsg struct{}

// notifyExpireMsg auto-dismisses a notification.
type notifyExpireMsg struct {
	ID int
}

// notifyRemoveMsg drops a notification after its exit animation.
type notifyRemoveMsg struct {
	ID int
}

// Theme Messages

// ThemeChangedMsg reports a persisted theme change.
type ThemeChangedMsg struct {
	Theme string
	Err   error
}

// Error Messages

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
