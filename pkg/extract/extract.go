// Package extract turns fetched HTML into readable text. It runs a chain of
// extractors from most to least precise: trafilatura for article content,
// go-readability when trafilatura finds nothing, and a plain metadata scrape
// as the last resort.
package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Modes for the extracted body.
const (
	ModeText     = "text"
	ModeMarkdown = "markdown"
)

// Document is the readable form of a page.
type Document struct {
	Title       string
	Author      string
	SiteName    string
	Description string
	Language    string
	Text        string
	// Markdown is only set when extraction ran in ModeMarkdown.
	Markdown string
	// Extractor names the stage that produced the text.
	Extractor string
}

// Content returns the body in the requested mode, preferring markdown when
// it was produced.
func (d *Document) Content() string {
	if d.Markdown != "" {
		return d.Markdown
	}
	return d.Text
}

// FromHTML extracts a document from raw HTML. The page URL helps the
// extractors resolve relative links and score candidate nodes. mode selects
// plain text or markdown output.
func FromHTML(body []byte, pageURL string, mode string) (*Document, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	if doc, err := viaTrafilatura(body, parsedURL, mode); err == nil && doc.Text != "" {
		return doc, nil
	}
	if doc, err := viaReadability(body, parsedURL); err == nil && doc.Text != "" {
		return doc, nil
	}
	return viaMetadata(body)
}

func viaTrafilatura(body []byte, pageURL *url.URL, mode string) (*Document, error) {
	result, err := trafilatura.Extract(bytes.NewReader(body), trafilatura.Options{
		OriginalURL: pageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}

	doc := &Document{
		Title:       result.Metadata.Title,
		Author:      result.Metadata.Author,
		SiteName:    result.Metadata.Sitename,
		Description: result.Metadata.Description,
		Language:    result.Metadata.Language,
		Text:        strings.TrimSpace(result.ContentText),
		Extractor:   "trafilatura",
	}

	if mode == ModeMarkdown && result.ContentNode != nil {
		rendered, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		markdown, err := htmltomarkdown.ConvertString(rendered)
		if err != nil {
			return nil, fmt.Errorf("markdown: %w", err)
		}
		doc.Markdown = strings.TrimSpace(markdown)
	}
	return doc, nil
}

func viaReadability(body []byte, pageURL *url.URL) (*Document, error) {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}
	return &Document{
		Title:       article.Title,
		Author:      article.Byline,
		SiteName:    article.SiteName,
		Description: article.Excerpt,
		Text:        strings.TrimSpace(article.TextContent),
		Extractor:   "readability",
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
