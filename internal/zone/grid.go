package zone

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

const gridCellClass = "card-grid__cell"

// parseCardGrid extracts the card grid entries from a listing page: one
// (detail URL, thumbnail URL) pair per grid cell anchor, in document order.
// Cells without a link or image are dropped. Thumbnail URLs lose their query
// string so cache keys stay stable across CDN parameter changes.
func parseCardGrid(r io.Reader, baseURL string) ([]Card, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var cards []Card
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, gridCellClass) {
			if card, ok := cardFromCell(n, baseURL); ok {
				cards = append(cards, card)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return cards, nil
}

func cardFromCell(cell *html.Node, baseURL string) (Card, bool) {
	anchor := findElement(cell, "a")
	if anchor == nil {
		return Card{}, false
	}
	href := attrValue(anchor, "href")
	if href == "" {
		return Card{}, false
	}
	img := findElement(anchor, "img")
	if img == nil {
		return Card{}, false
	}
	src := attrValue(img, "src")
	if src == "" {
		return Card{}, false
	}
	src, _, _ = strings.Cut(src, "?")

	detail := href
	if !strings.HasPrefix(detail, "http") {
		detail = baseURL + detail
	}
	return Card{DetailURL: detail, ImageURL: src}, true
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, value := range strings.Fields(attrValue(n, "class")) {
		if value == class {
			return true
		}
	}
	return false
}
