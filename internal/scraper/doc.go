// Package scraper turns loosely structured text harvested from a ticketing
// event page into performance records.
//
// The package defines the region/element/link contract through which page
// content reaches the extractor, a regex pattern library for performance row
// text, and a two-pass extraction pipeline: a precise pass over row-like
// elements with booking-link inspection, and a fallback pass that splits
// coarse content blocks into lines when no structured rows were found. Any
// failure reading a single element degrades to skipping that element; the
// pipeline itself never fails.
package scraper
