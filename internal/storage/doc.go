// Package storage persists the latest check's performance records so the
// next run can tell which performances became bookable.
//
// A snapshot is one JSON file per watched event page, keyed by the
// performance's (date, time) slot. There is no history beyond the previous
// run: the watcher only needs to answer "what changed since last time".
package storage
