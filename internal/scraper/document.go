package scraper

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// DocumentRegion adapts a parsed HTML document to the Region contract. The
// browser collaborator wraps each frame's HTML in one; tests and the offline
// input path parse saved pages the same way.
type DocumentRegion struct {
	doc *goquery.Document
}

// NewDocumentRegion parses HTML from r into a queryable region.
func NewDocumentRegion(r io.Reader) (*DocumentRegion, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &DocumentRegion{doc: doc}, nil
}

// Query returns the elements matching a CSS selector.
func (d *DocumentRegion) Query(selector string) ([]Element, error) {
	var elements []Element
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		elements = append(elements, &selectionElement{sel: sel})
	})
	return elements, nil
}

// selectionElement wraps one matched node.
type selectionElement struct {
	sel *goquery.Selection
}

func (e *selectionElement) Text() (string, error) {
	return e.sel.Text(), nil
}

func (e *selectionElement) Links() ([]Link, error) {
	var links []Link
	e.sel.Find("a, button").Each(func(_ int, sel *goquery.Selection) {
		links = append(links, &selectionLink{sel: sel})
	})
	return links, nil
}

// selectionLink wraps one anchor or button node.
type selectionLink struct {
	sel *goquery.Selection
}

func (l *selectionLink) Text() (string, error) {
	return l.sel.Text(), nil
}

func (l *selectionLink) Target() (string, error) {
	href, _ := l.sel.Attr("href")
	return href, nil
}
