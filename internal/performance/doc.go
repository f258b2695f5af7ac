// Package performance provides types and functions for managing ticketing
// performance records.
//
// The performance package handles record representation, availability
// classification, deduplication, and chronological ordering. Classification
// runs an ordered rule table over scraped row text so that precedence between
// co-occurring phrases ("sold out" next to a "Book" link) is explicit and
// testable. Ordering tolerates malformed date/time text by pushing those
// records to the end of the sort rather than failing.
package performance
