package carousels

import "github.com/gracemeadow/meadowlane-backend/pkg/enums"

// slotCardinalities maps the slugs that deviate from the ordered default.
// Singleton slots hold at most one active item; the curation service consults
// this table instead of matching slug strings at call sites.
var slotCardinalities = map[string]enums.SlotCardinality{
	"recipes-weekly-pick":    enums.SlotSingleton,
	"healing-featured-video": enums.SlotSingleton,
	"home-hero-video":        enums.SlotSingleton,
	"vlogs-featured":         enums.SlotSingleton,
}

// SlotCardinality returns the configured cardinality for a slug. Unlisted
// slugs are ordered multi-item carousels.
func SlotCardinality(slug string) enums.SlotCardinality {
	if c, ok := slotCardinalities[slug]; ok {
		return c
	}
	return enums.SlotOrdered
}
