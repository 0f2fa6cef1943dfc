// Package htmlutil wraps document parsing with charset detection and
// fragment handling shared by the facade.
package htmlutil

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// MaxDocumentSize limits document input to 10MB to prevent memory exhaustion
const MaxDocumentSize = 10 * 1024 * 1024

// Validate checks document size and returns error if empty or too large
func Validate(src string) error {
	if len(src) == 0 {
		return fmt.Errorf("document content required")
	}
	if len(src) > MaxDocumentSize {
		return fmt.Errorf("document exceeds maximum size of %d bytes", MaxDocumentSize)
	}
	return nil
}

// DetectCharset detects and returns charset from raw document bytes
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// LoadDocument parses a full document with automatic charset detection
func LoadDocument(src string) (*goquery.Document, error) {
	if err := Validate(src); err != nil {
		return nil, err
	}

	data := []byte(src)
	detected := DetectCharset(data)

	reader := bytes.NewReader(data)
	utf8Reader, err := charset.NewReader(reader, detected)
	if err != nil {
		// Fallback to direct parsing
		return goquery.NewDocumentFromReader(strings.NewReader(src))
	}

	return goquery.NewDocumentFromReader(utf8Reader)
}

// ParseFragment parses markup as body content and returns detached nodes
func ParseFragment(src string) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(strings.TrimSpace(src)), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}

	for _, node := range nodes {
		node.Parent = nil
		node.PrevSibling = nil
		node.NextSibling = nil
	}

	return nodes, nil
}

// NewElement constructs a single unattached element node. Tag name
// legality is not validated; unknown names get a zero atom.
func NewElement(name string) *html.Node {
	name = strings.ToLower(name)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
}

// Render serializes nodes back to markup
func Render(nodes []*html.Node) string {
	var buf bytes.Buffer
	for _, node := range nodes {
		html.Render(&buf, node)
	}
	return buf.String()
}

// Text collects the text content under a node
func Text(n *html.Node) string {
	var buf bytes.Buffer
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return buf.String()
}

// NormalizeWhitespace collapses multiple spaces into one
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
