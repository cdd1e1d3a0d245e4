package extraction

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// collapseWhitespace trims a string and squeezes internal whitespace runs to
// single spaces.
func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// flattenHTML reduces an HTML fragment to plain text, keeping a space between
// adjacent elements so "<p>a</p><p>b</p>" becomes "a b" rather than "ab".
func flattenHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return collapseWhitespace(fragment)
	}

	parts := make([]string, 0)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return collapseWhitespace(strings.Join(parts, " "))
}
