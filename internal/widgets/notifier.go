package widgets

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// FirstNotificationDelay keeps the first popup clear of the page enter animation.
	FirstNotificationDelay = 4 * time.Second
	// NotificationLifetime is how long a popup stays before auto-dismissal.
	NotificationLifetime = 5500 * time.Millisecond
	// DismissAnimation is the exit animation length.
	DismissAnimation = 220 * time.Millisecond

	minNotificationGap = 15 * time.Second
	notificationJitter = 30 * time.Second
	maxTitleRunes      = 80
	maxMinutesAgo      = 15
)

var (
	notificationNames = []string{
		"Mia", "Noah", "Liam", "Emma", "Olivia", "Ava", "Isabella", "Sophia",
		"Lucas", "Ethan", "Amelia", "Jack", "Leo", "Aria", "Ivy", "Zoe",
	}
	notificationZones = []string{
		"PST", "MST", "CST", "EST", "GMT", "CET", "EET", "IST", "SGT", "JST", "AEST", "NZST",
	}
	fallbackTemplates = []string{
		"LinkedIn Enrichment Sheets",
		"AI Email Sales",
		"YouTube Research Pipeline",
		"Slack Alerts",
		"Knowledge Base Sync",
	}
)

// Notification is one social-proof popup.
type Notification struct {
	ID         int
	Who        string
	Template   string
	Zone       string
	MinutesAgo int
	Dismissed  bool
}

// Initial returns the avatar letter.
func (n Notification) Initial() string {
	r, _ := utf8.DecodeRuneInString(n.Who)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// Title is the popup headline.
func (n Notification) Title() string {
	return n.Who + ` just took "` + n.Template + `"`
}

// Meta is the popup subline.
func (n Notification) Meta() string {
	return "from " + n.Zone + " • " + strconv.Itoa(n.MinutesAgo) + " min ago"
}

// Pools are the value lists and pacing a page script needs to generate
// notifications on its own.
type Pools struct {
	Names     []string `json:"names"`
	Zones     []string `json:"zones"`
	Fallback  []string `json:"fallback"`
	MaxTitle  int      `json:"maxTitle"`
	MinGapMS  int64    `json:"minGapMs"`
	JitterMS  int64    `json:"jitterMs"`
	MaxMinute int      `json:"maxMinute"`
}

// ClientPools returns copies of the notification pools.
func ClientPools() Pools {
	return Pools{
		Names:     append([]string(nil), notificationNames...),
		Zones:     append([]string(nil), notificationZones...),
		Fallback:  append([]string(nil), fallbackTemplates...),
		MaxTitle:  maxTitleRunes,
		MinGapMS:  minNotificationGap.Milliseconds(),
		JitterMS:  notificationJitter.Milliseconds(),
		MaxMinute: maxMinutesAgo,
	}
}

// Notifier generates notifications and tracks the ones on screen.
type Notifier struct {
	rng    *rand.Rand
	nextID int
	active []Notification
}

// NewNotifier creates a Notifier. A nil rng is seeded from the clock.
func NewNotifier(rng *rand.Rand) *Notifier {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Notifier{rng: rng}
}

// Next creates and shows a notification. titles are the card titles
// currently on screen; when empty a fixed fallback list is used.
func (n *Notifier) Next(titles []string) Notification {
	n.nextID++
	note := Notification{
		ID:         n.nextID,
		Who:        sample(n.rng, notificationNames),
		Template:   n.pickTemplate(titles),
		Zone:       sample(n.rng, notificationZones),
		MinutesAgo: n.rng.Intn(maxMinutesAgo) + 1,
	}
	n.active = append(n.active, note)
	return note
}

// NextDelay returns the wait before the following notification, in [15s, 45s).
func (n *Notifier) NextDelay() time.Duration {
	return minNotificationGap + time.Duration(n.rng.Int63n(int64(notificationJitter)))
}

// Dismiss marks a notification as leaving. It reports false when the
// notification is unknown or already leaving.
func (n *Notifier) Dismiss(id int) bool {
	for i := range n.active {
		if n.active[i].ID != id {
			continue
		}
		if n.active[i].Dismissed {
			return false
		}
		n.active[i].Dismissed = true
		return true
	}
	return false
}

// Remove drops a notification after its exit animation.
func (n *Notifier) Remove(id int) {
	for i := range n.active {
		if n.active[i].ID == id {
			n.active = append(n.active[:i], n.active[i+1:]...)
			return
		}
	}
}

// Active returns the notifications on screen, oldest first.
func (n *Notifier) Active() []Notification {
	return append([]Notification(nil), n.active...)
}

func (n *Notifier) pickTemplate(titles []string) string {
	candidates := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return sample(n.rng, fallbackTemplates)
	}
	return truncateRunes(sample(n.rng, candidates), maxTitleRunes)
}

func sample(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

