package markup

import "strings"

// Comments converts HTML comment markers into Confluence placeholders so
// authoring notes survive the import as editor-only hints. Comment text
// inside code blocks is entity-escaped by the renderer and therefore
// untouched here.
func Comments() Pass {
	return Pass{
		Name: "comments",
		Apply: func(html string) (string, error) {
			html = strings.ReplaceAll(html, "<!--", "<ac:placeholder>")
			html = strings.ReplaceAll(html, "-->", "</ac:placeholder>")
			return html, nil
		},
	}
}
