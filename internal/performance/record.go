package performance

// Record represents one performance listing extracted from the event page.
//
// Date is free-form calendar text, ideally "<Weekday> <day> <Month> <year>"
// with the weekday optional. Time is uppercased with internal whitespace
// removed ("7:30PM", "19:30"). Href is the absolute booking URL when a
// booking-like link was found, empty otherwise. Raw carries the source text
// the record was derived from and is diagnostic only.
//
// Records are immutable once constructed; the pipeline only filters and
// re-orders slices of them.
type Record struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status Status `json:"status"`
	Href   string `json:"href,omitempty"`
	Raw    string `json:"raw"`
}

// Key returns the identity of a record for deduplication purposes.
// Raw is deliberately excluded: two rows scraped from different page
// structures that describe the same performance collapse to one record.
func (r Record) Key() string {
	return r.Date + "|" + r.Time + "|" + string(r.Status) + "|" + r.Href
}

// PerformanceKey identifies the performance itself, independent of its
// current status or booking link. Snapshot diffing uses it to recognise the
// same date/time slot across runs even when its availability changed.
func (r Record) PerformanceKey() string {
	return r.Date + "|" + r.Time
}
