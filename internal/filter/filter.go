// Package filter selects performance records by availability status.
//
// Filters are written as comma-separated expressions of include and exclude
// terms: "available,limited" keeps only those statuses, "not:sold_out"
// keeps everything else. Include and exclude terms may be mixed; excludes
// are applied after includes.
package filter

import (
	"fmt"
	"strings"

	"github.com/maskins/ticketwatch/internal/performance"
)

// Filter holds a parsed filter expression.
type Filter struct {
	include map[performance.Status]bool
	exclude map[performance.Status]bool
}

// Parse parses a filter expression. An empty expression yields a filter
// that keeps everything.
func Parse(expr string) (*Filter, error) {
	f := &Filter{
		include: make(map[performance.Status]bool),
		exclude: make(map[performance.Status]bool),
	}

	for _, term := range strings.Split(expr, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		negated := false
		if rest, ok := strings.CutPrefix(term, "not:"); ok {
			negated = true
			term = rest
		}

		status, ok := performance.ParseStatus(term)
		if !ok {
			return nil, fmt.Errorf("unknown status %q in filter expression", term)
		}
		if negated {
			f.exclude[status] = true
		} else {
			f.include[status] = true
		}
	}

	return f, nil
}

// Keep reports whether a record passes the filter.
func (f *Filter) Keep(rec performance.Record) bool {
	if len(f.include) > 0 && !f.include[rec.Status] {
		return false
	}
	return !f.exclude[rec.Status]
}

// Apply returns the records that pass the filter, preserving order.
func (f *Filter) Apply(records []performance.Record) []performance.Record {
	kept := make([]performance.Record, 0, len(records))
	for _, rec := range records {
		if f.Keep(rec) {
			kept = append(kept, rec)
		}
	}
	return kept
}
