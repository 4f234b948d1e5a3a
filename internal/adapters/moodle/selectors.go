package moodle

import "github.com/PuerkitoBio/goquery"

// ContentSelector locates the element holding a content page's body text.
type ContentSelector struct {
	Name  string
	Match func(doc *goquery.Document) *goquery.Selection
}

// Within matches the first inner element found under the first landmark.
func Within(landmark string, inner string) ContentSelector {
	return ContentSelector{
		Name: landmark + " " + inner,
		Match: func(doc *goquery.Document) *goquery.Selection {
			return doc.Find(landmark).First().Find(inner).First()
		},
	}
}

// Landmark matches the first element for selector.
func Landmark(selector string) ContentSelector {
	return ContentSelector{
		Name: selector,
		Match: func(doc *goquery.Document) *goquery.Selection {
			return doc.Find(selector).First()
		},
	}
}

// DefaultContentSelectors covers the page layouts seen on the platform,
// most specific first.
func DefaultContentSelectors() []ContentSelector {
	return []ContentSelector{
		Within("#region-main", "div.box"),
		Within("#region-main", "div.activity-body"),
		Within("#region-main", "div.mod_page_content"),
		Landmark("#region-main"),
	}
}
