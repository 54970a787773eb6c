package render

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
)

// MaxBadges is the number of integrations shown on a card.
const MaxBadges = 6

// BadgeOutcome classifies how a badge's icon was settled.
type BadgeOutcome string

const (
	// BadgeResolved means a prober confirmed a loadable source.
	BadgeResolved BadgeOutcome = "resolved"
	// BadgeDropped means every candidate failed and the badge was removed.
	BadgeDropped BadgeOutcome = "dropped"
	// BadgeDeferred means no prober was configured; the client continues the fallback.
	BadgeDeferred BadgeOutcome = "deferred"
)

// Badge is one integration icon on a card.
type Badge struct {
	Name       string
	Src        string
	Candidates string
	Exts       string
	CIdx       int
	EIdx       int
	Deferred   bool
}

// Badges builds the icon badges for the first MaxBadges integrations, in
// their original order. With a prober, badges whose candidates are all
// missing are left out.
func (r *Renderer) Badges(ctx context.Context, integrations []string) []Badge {
	if len(integrations) > MaxBadges {
		integrations = integrations[:MaxBadges]
	}
	badges := make([]Badge, 0, len(integrations))
	for _, name := range integrations {
		fb := r.resolver.Fallback(name)
		if r.prober == nil {
			badges = append(badges, badgeFrom(name, fb, true))
			r.observe(BadgeDeferred)
			continue
		}
		if _, ok := icons.Probe(ctx, fb, r.prober); !ok {
			r.observe(BadgeDropped)
			continue
		}
		badges = append(badges, badgeFrom(name, fb, false))
		r.observe(BadgeResolved)
	}
	return badges
}

func badgeFrom(name string, fb *icons.Fallback, deferred bool) Badge {
	cIdx, eIdx := fb.Cursor()
	return Badge{
		Name:       name,
		Src:        fb.Source(),
		Candidates: strings.Join(fb.Candidates(), "|"),
		Exts:       strings.Join(fb.Extensions(), ","),
		CIdx:       cIdx,
		EIdx:       eIdx,
		Deferred:   deferred,
	}
}
