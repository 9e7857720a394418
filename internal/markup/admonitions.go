package markup

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	panelInfo    = "info"
	panelNote    = "note"
	panelWarning = "warning"
)

const panelClose = "</p></ac:rich-text-body></ac:structured-macro></p>"

func panelOpen(panel string) string {
	return `<p><ac:structured-macro ac:name="` + panel + `"><ac:rich-text-body><p>`
}

// Sigil pairs let authors request a panel explicitly. The markers are
// paragraph-delimited so ordinary tildes in prose never trigger them.
var sigilPanels = []struct {
	open  string
	close string
	panel string
}{
	{"<p>~?", "?~</p>", panelInfo},
	{"<p>~!", "!~</p>", panelNote},
	{"<p>~%", "%~</p>", panelWarning},
}

var (
	blockquotePattern   = regexp.MustCompile(`(?s)<blockquote>(.*?)</blockquote>`)
	noteQuotePattern    = regexp.MustCompile(`(?i)^<.*>Note`)
	warningQuotePattern = regexp.MustCompile(`(?i)^<.*>Warning`)
	firstTagPattern     = regexp.MustCompile(`<.*?>`)
)

var labelStripPatterns = map[string][]*regexp.Regexp{
	"Note":    compileLabelPatterns("Note"),
	"Warning": compileLabelPatterns("Warning"),
}

// compileLabelPatterns covers the literal phrasings a leading label shows up
// in after rendering: bare, spaced colon, tag-wrapped, and emphasis-wrapped
// with the colon inside or outside the tag.
func compileLabelPatterns(label string) []*regexp.Regexp {
	templates := []string{
		`%s:\s`,
		`%s\s:\s`,
		`<.*?>%s:\s<.*?>`,
		`<.*?>%s\s:\s<.*?>`,
		`<(?:em|strong)>%s:<.*?>\s`,
		`<(?:em|strong)>%s\s:<.*?>\s`,
		`<(?:em|strong)>%s<.*?>:\s`,
		`<(?:em|strong)>%s\s<.*?>:\s`,
	}
	patterns := make([]*regexp.Regexp, 0, len(templates))
	for _, tpl := range templates {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+fmt.Sprintf(tpl, label)))
	}
	return patterns
}

// Admonitions converts panel sigils and rendered blockquotes into structured
// panel macros. Blockquotes are classified by their leading Note/Warning
// label, case-insensitively, and default to info panels.
func Admonitions() Pass {
	return Pass{Name: "admonitions", Apply: convertAdmonitions}
}

func convertAdmonitions(html string) (string, error) {
	out := html
	for _, sigil := range sigilPanels {
		out = strings.ReplaceAll(out, sigil.open, panelOpen(sigil.panel))
		out = strings.ReplaceAll(out, sigil.close, panelClose)
	}
	return convertBlockquotes(out), nil
}

func convertBlockquotes(html string) string {
	matches := blockquotePattern.FindAllStringSubmatch(html, -1)
	for _, m := range matches {
		content := strings.TrimSpace(m[1])

		panel := panelInfo
		switch {
		case noteQuotePattern.MatchString(content):
			panel = panelNote
			content = stripLabel(content, "Note")
		case warningQuotePattern.MatchString(content):
			panel = panelWarning
			content = stripLabel(content, "Warning")
		}

		html = strings.ReplaceAll(html, m[0], wrapPanel(panel, content))
	}
	return html
}

func stripLabel(content, label string) string {
	out := strings.TrimSpace(content)
	for _, pattern := range labelStripPatterns[label] {
		out = pattern.ReplaceAllString(out, "")
	}
	return recapitalize(out)
}

// recapitalize uppercases the first character after the first HTML tag, a
// cosmetic fix for quotes whose sentence lost its lead word with the label.
// A quote with no tag is left untouched.
func recapitalize(s string) string {
	loc := firstTagPattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	idx := loc[1]
	if idx >= len(s) {
		return s
	}
	r, size := utf8.DecodeRuneInString(s[idx:])
	up := unicode.ToUpper(r)
	if up == r {
		return s
	}
	return s[:idx] + string(up) + s[idx+size:]
}

// wrapPanel produces exactly one panel per quote: the first paragraph opens
// the rich-text body and the last closes it, so multi-paragraph quotes stay
// inside a single macro.
func wrapPanel(panel, content string) string {
	first := strings.Index(content, "<p>")
	last := strings.LastIndex(content, "</p>")
	if first == -1 || last == -1 || last < first {
		opening := strings.TrimSuffix(panelOpen(panel), "<p>")
		closing := strings.TrimPrefix(panelClose, "</p>")
		return opening + content + closing
	}

	var b strings.Builder
	b.WriteString(content[:first])
	b.WriteString(panelOpen(panel))
	b.WriteString(content[first+len("<p>") : last])
	b.WriteString(panelClose)
	b.WriteString(content[last+len("</p>"):])
	return strings.TrimSpace(b.String())
}
