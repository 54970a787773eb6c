// Package widgets holds the decorative page widgets: the hero slider, the
// "someone just took a template" notification ticker and the page
// transition rules. They carry no data of their own beyond rotation indexes
// and timers, and every operation is a no-op when its target is absent.
package widgets
