package markup

import (
	"regexp"
	"strings"
)

var (
	// Definition lines appear either bare or opening a paragraph; in-text
	// markers never sit at line start so the anchor keeps them apart.
	footnoteDefPattern  = regexp.MustCompile(`(?m)^(?:<p>)?(\[\^(\d)\][^\n]*)`)
	footnoteHrefPattern = regexp.MustCompile(`href="(.*?)"`)
)

// FootnoteRefs removes footnote definition lines from the flow and replaces
// every in-text [^n] marker with a superscript link to the definition's
// target. A definition with no extractable href fails the pass; it is the
// only conversion that can reject a document.
func FootnoteRefs() Pass {
	return Pass{Name: "footnotes", Apply: convertFootnoteRefs}
}

func convertFootnoteRefs(html string) (string, error) {
	matches := footnoteDefPattern.FindAllStringSubmatch(html, -1)
	for _, m := range matches {
		def := strings.ReplaceAll(m[1], "</p>", "")
		def = strings.ReplaceAll(def, "<p>", "")
		id := m[2]

		href := footnoteHrefPattern.FindStringSubmatch(def)
		if href == nil {
			return "", &FootnoteError{Definition: def}
		}

		html = strings.ReplaceAll(html, def, "")
		html = strings.ReplaceAll(html, "<p></p>\n", "")
		html = strings.ReplaceAll(html, "<p></p>", "")

		superscript := `<a href="` + href[1] + `"><sup>` + id + `</sup></a>`
		html = strings.ReplaceAll(html, "[^"+id+"]", superscript)
	}
	return html, nil
}
