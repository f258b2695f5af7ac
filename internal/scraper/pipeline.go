package scraper

import (
	"strings"

	"go.uber.org/zap"

	"github.com/maskins/ticketwatch/internal/performance"
)

const (
	// defaultElementCap bounds per-selector iteration against pathological
	// pages with thousands of matching nodes.
	defaultElementCap = 250
	// defaultContainerCap bounds how many coarse containers per fallback
	// selector are line-split in pass 2.
	defaultContainerCap = 6
)

// defaultRowSelectors are tried most specific first: purpose-built
// performance row classes, then generic table and list rows.
var defaultRowSelectors = []string{
	".performance-row",
	"[class*='performance']",
	"[class*='event-date']",
	"tr",
	"li",
}

// defaultFallbackSelectors are the coarse content containers scanned when no
// structured rows matched.
var defaultFallbackSelectors = []string{
	"section",
	"main",
	"[role='main']",
	".event",
	".events",
	".performances",
	"body",
}

// Options configures an Extractor. The zero value is usable: selector lists
// and caps fall back to the defaults above, and relative booking links are
// left unresolved when SiteOrigin is empty.
type Options struct {
	// SiteOrigin resolves site-relative booking links ("/book/123") to
	// absolute URLs, e.g. "https://ticketing.example.com".
	SiteOrigin string
	// RowSelectors override the pass-1 row queries, most specific first.
	RowSelectors []string
	// FallbackSelectors override the pass-2 coarse container queries.
	FallbackSelectors []string
	// ElementCap bounds per-selector element iteration in pass 1.
	ElementCap int
	// ContainerCap bounds per-selector container iteration in pass 2.
	ContainerCap int
}

func (o Options) withDefaults() Options {
	if len(o.RowSelectors) == 0 {
		o.RowSelectors = defaultRowSelectors
	}
	if len(o.FallbackSelectors) == 0 {
		o.FallbackSelectors = defaultFallbackSelectors
	}
	if o.ElementCap <= 0 {
		o.ElementCap = defaultElementCap
	}
	if o.ContainerCap <= 0 {
		o.ContainerCap = defaultContainerCap
	}
	return o
}

// Extractor runs the two-pass extraction pipeline over page regions.
type Extractor struct {
	opts Options
	log  *zap.Logger
}

// NewExtractor creates an extractor. A nil logger disables logging.
func NewExtractor(opts Options, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{opts: opts.withDefaults(), log: log}
}

// Extract runs the pipeline over every region in order, concatenates the
// per-region results, and dedups the combined list. Nested frames often
// repeat the main document's rows, so the final dedup is not optional.
func (e *Extractor) Extract(regions []Region) []performance.Record {
	var combined []performance.Record
	for i, region := range regions {
		records := e.ExtractRegion(region)
		e.log.Debug("region extracted", zap.Int("region", i), zap.Int("records", len(records)))
		combined = append(combined, records...)
	}
	return performance.Dedup(combined)
}

// ExtractRegion extracts the candidate records of a single region:
// structured pass first, line-splitting fallback only when the structured
// pass found nothing. The result is deduplicated.
func (e *Extractor) ExtractRegion(region Region) []performance.Record {
	records := performance.Dedup(e.structuredPass(region))
	if len(records) > 0 {
		return records
	}
	e.log.Debug("structured pass empty, falling back to line splitting")
	return performance.Dedup(e.fallbackPass(region))
}

// structuredPass walks the row selectors most specific first and stops at
// the first selector that yields records, so generic tr/li queries never
// re-extract rows a purpose-built class already matched.
func (e *Extractor) structuredPass(region Region) []performance.Record {
	for _, selector := range e.opts.RowSelectors {
		elements, err := region.Query(selector)
		if err != nil {
			e.log.Debug("row query failed", zap.String("selector", selector), zap.Error(err))
			continue
		}
		if len(elements) > e.opts.ElementCap {
			elements = elements[:e.opts.ElementCap]
		}

		var records []performance.Record
		for _, element := range elements {
			if rec, ok := e.extractRow(element); ok {
				records = append(records, rec)
			}
		}
		if len(records) > 0 {
			e.log.Debug("rows matched", zap.String("selector", selector), zap.Int("records", len(records)))
			return records
		}
	}
	return nil
}

// extractRow turns one row-like element into a record. Rows whose text holds
// neither a date nor a time are not performance content and are dropped.
func (e *Extractor) extractRow(element Element) (performance.Record, bool) {
	raw, err := element.Text()
	if err != nil {
		return performance.Record{}, false
	}
	text := CollapseSpaces(raw)
	if text == "" {
		return performance.Record{}, false
	}

	date, clock := ParseRow(text)
	if date == "" && clock == "" {
		return performance.Record{}, false
	}

	href, hasBookingLink := e.bookingLink(element)
	return performance.Record{
		Date:   date,
		Time:   clock,
		Status: performance.Classify(text, hasBookingLink),
		Href:   href,
		Raw:    text,
	}, true
}

// bookingLink searches an element's links for the first whose own text
// carries a purchase-intent word and returns its resolved target. A hinted
// link whose target cannot be read still counts as a booking link.
func (e *Extractor) bookingLink(element Element) (string, bool) {
	links, err := element.Links()
	if err != nil {
		return "", false
	}
	for _, link := range links {
		text, err := link.Text()
		if err != nil || !performance.HasBookingHint(text) {
			continue
		}
		target, err := link.Target()
		if err != nil {
			return "", true
		}
		return e.resolveTarget(target), true
	}
	return "", false
}

// resolveTarget makes a site-relative link target absolute.
func (e *Extractor) resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") && e.opts.SiteOrigin != "" {
		return strings.TrimSuffix(e.opts.SiteOrigin, "/") + target
	}
	return target
}

// fallbackPass line-splits a bounded handful of coarse containers and keeps
// the lines the row parser recognizes. Link detection is not attempted in
// this degraded path.
func (e *Extractor) fallbackPass(region Region) []performance.Record {
	var records []performance.Record
	for _, selector := range e.opts.FallbackSelectors {
		elements, err := region.Query(selector)
		if err != nil {
			e.log.Debug("fallback query failed", zap.String("selector", selector), zap.Error(err))
			continue
		}
		if len(elements) > e.opts.ContainerCap {
			elements = elements[:e.opts.ContainerCap]
		}

		for _, element := range elements {
			text, err := element.Text()
			if err != nil {
				continue
			}
			for _, line := range SplitLines(text) {
				date, clock := ParseRow(line)
				if date == "" && clock == "" {
					continue
				}
				records = append(records, performance.Record{
					Date:   date,
					Time:   clock,
					Status: performance.Classify(line, false),
					Raw:    line,
				})
			}
		}
	}
	return records
}
