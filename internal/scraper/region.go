package scraper

// Region is one browsing context on the event page: the main document or a
// nested frame. The extractor queries regions one at a time, in the order
// the page collaborator supplies them.
//
// Every call may fail; the extractor treats a failure as "no data from this
// element" and continues, so implementations are free to return errors for
// detached nodes, navigated-away frames, and similar transient conditions.
type Region interface {
	// Query returns the elements matching a CSS-like selector.
	Query(selector string) ([]Element, error)
}

// Element is one queried node believed to hold performance row content.
type Element interface {
	// Text returns the element's visible text. Whitespace is preserved as
	// rendered; callers normalize or line-split as needed.
	Text() (string, error)
	// Links returns the link-like controls (anchors and buttons) among the
	// element's descendants.
	Links() ([]Link, error)
}

// Link is an anchor or button that may be a booking affordance.
type Link interface {
	// Text returns the link's visible text.
	Text() (string, error)
	// Target returns the link's destination, possibly site-relative, or an
	// empty string when it has none (a button, an anchor without href).
	Target() (string, error)
}
