package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// FlattenHTML reduces pasted HTML notes to visible plain text so the
// extraction rules can run over them. Scripts, styles and other invisible
// elements are skipped; block-level elements end the current line so the
// line-oriented rules still see field boundaries. On unparseable input the
// original text is returned unchanged.
func FlattenHTML(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}
	return strings.TrimSpace(flattenVisibleText(doc))
}

func flattenVisibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "br":
				buf.WriteString("\n")
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && isBlockElement(n.Data) {
			buf.WriteString("\n")
		}
	}

	walk(n)
	return buf.String()
}

func isBlockElement(tag string) bool {
	switch tag {
	case "p", "div", "li", "tr", "ul", "ol", "table",
		"h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre":
		return true
	}
	return false
}
