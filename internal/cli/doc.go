// Package cli implements the command-line interface for ticketwatch.
//
// The cli package provides the Cobra-based CLI that checks a ticketing page
// for performance availability, formats output (text/JSON), persists run
// snapshots, and reports newly bookable performances through the configured
// notifier. It coordinates the browser, scraper, storage, filter, and
// notifier packages.
package cli
