package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CarouselMetrics records counters for the carousel subsystem.
type CarouselMetrics struct {
	toggles    *prometheus.CounterVec
	singletons *prometheus.CounterVec
	gapCloses  prometheus.Counter
	cacheHits  *prometheus.CounterVec
}

// NewCarouselMetrics registers the carousel metrics on the provided registerer.
func NewCarouselMetrics(reg prometheus.Registerer) *CarouselMetrics {
	if reg == nil {
		return &CarouselMetrics{}
	}
	toggles := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carousel_membership_toggles_total",
		Help: "Membership toggle calls by slug and outcome.",
	}, []string{"slug", "outcome"})
	singletons := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carousel_singleton_swaps_total",
		Help: "Singleton slot swaps and clears by slug.",
	}, []string{"slug", "op"})
	gapCloses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carousel_gap_closes_total",
		Help: "Order index compactions after item removal.",
	})
	cacheHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carousel_render_cache_total",
		Help: "Render cache lookups by result.",
	}, []string{"result"})
	reg.MustRegister(toggles, singletons, gapCloses, cacheHits)
	return &CarouselMetrics{
		toggles:    toggles,
		singletons: singletons,
		gapCloses:  gapCloses,
		cacheHits:  cacheHits,
	}
}

// IncToggle counts a membership toggle outcome (added, removed, noop).
func (c *CarouselMetrics) IncToggle(slug, outcome string) {
	if c == nil || c.toggles == nil {
		return
	}
	c.toggles.WithLabelValues(slug, outcome).Inc()
}

// IncSingleton counts a singleton slot operation (set, clear).
func (c *CarouselMetrics) IncSingleton(slug, op string) {
	if c == nil || c.singletons == nil {
		return
	}
	c.singletons.WithLabelValues(slug, op).Inc()
}

// IncGapClose counts one order index compaction.
func (c *CarouselMetrics) IncGapClose() {
	if c == nil || c.gapCloses == nil {
		return
	}
	c.gapCloses.Inc()
}

// IncCache counts a render cache lookup result (hit, miss, bypass).
func (c *CarouselMetrics) IncCache(result string) {
	if c == nil || c.cacheHits == nil {
		return
	}
	c.cacheHits.WithLabelValues(result).Inc()
}
