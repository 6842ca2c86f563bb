package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// viaMetadata is the last-resort extractor for pages where neither article
// extractor finds body text. It scrapes OpenGraph tags and falls back to
// visible text pulled out of the DOM.
func viaMetadata(body []byte) (*Document, error) {
	doc := &Document{Extractor: "metadata"}

	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(bytes.NewReader(body)); err == nil {
		doc.Title = og.Title
		doc.Description = og.Description
		doc.SiteName = og.SiteName
	}

	parsed, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		if doc.Title == "" && doc.Description == "" {
			return nil, fmt.Errorf("metadata: %w", err)
		}
		doc.Text = doc.Description
		return doc, nil
	}

	if doc.Title == "" {
		doc.Title = domTitle(parsed)
	}
	if doc.Description == "" {
		doc.Description = domDescription(parsed)
	}

	parsed.Find("script, style, noscript").Remove()
	text := strings.TrimSpace(parsed.Find("body").Text())
	text = whitespaceRe.ReplaceAllString(text, " ")
	if text == "" {
		text = doc.Description
	}
	doc.Text = text

	if doc.Title == "" && doc.Text == "" {
		return nil, fmt.Errorf("metadata: page has no extractable content")
	}
	return doc, nil
}

func domTitle(doc *goquery.Document) string {
	if title := doc.Find("title").First().Text(); title != "" {
		return strings.TrimSpace(title)
	}
	if h1 := doc.Find("h1").First().Text(); h1 != "" {
		return strings.TrimSpace(h1)
	}
	return ""
}

func domDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find("meta[name='description']").First().Attr("content"); ok && desc != "" {
		return strings.TrimSpace(desc)
	}
	if p := doc.Find("p").First().Text(); p != "" {
		return strings.TrimSpace(p)
	}
	return ""
}
