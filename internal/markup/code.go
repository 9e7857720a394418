package markup

import (
	"regexp"
	"strings"
)

const (
	codeTheme = "Midnight"
	codeLang  = "none"
)

var (
	codeBlockPattern   = regexp.MustCompile(`(?s)<pre><code.*?>.*?</code></pre>`)
	codeContentPattern = regexp.MustCompile(`(?s)<pre><code.*?>(.*?)</code></pre>`)
	codeClassPattern   = regexp.MustCompile(`code class="([^"]*)"`)
)

// CodeBlocks converts rendered code blocks into Confluence code macros. The
// language comes from the block's class attribute with the `language-`
// prefix stripped; blocks without a class render with language "none".
func CodeBlocks() Pass {
	return Pass{Name: "code", Apply: convertCodeBlocks}
}

func convertCodeBlocks(html string) (string, error) {
	blocks := codeBlockPattern.FindAllString(html, -1)
	for _, block := range blocks {
		lang := codeLang
		if m := codeClassPattern.FindStringSubmatch(block); m != nil {
			if cleaned := strings.TrimPrefix(m[1], "language-"); cleaned != "" {
				lang = cleaned
			}
		}

		content := codeContentPattern.FindStringSubmatch(block)[1]
		content = decodeEntities(content)

		var b strings.Builder
		b.WriteString(`<ac:structured-macro ac:name="code">`)
		b.WriteString(`<ac:parameter ac:name="theme">` + codeTheme + `</ac:parameter>`)
		b.WriteString(`<ac:parameter ac:name="linenumbers">true</ac:parameter>`)
		b.WriteString(`<ac:parameter ac:name="language">` + lang + `</ac:parameter>`)
		b.WriteString(`<ac:plain-text-body><![CDATA[`)
		b.WriteString(escapeCDATA(content))
		b.WriteString(`]]></ac:plain-text-body>`)
		b.WriteString(`</ac:structured-macro>`)

		html = strings.ReplaceAll(html, block, b.String())
	}
	return html, nil
}

// decodeEntities reverses the renderer's escaping exactly once. `&amp;` is
// decoded last so pre-escaped source text is not double-decoded.
func decodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// escapeCDATA splits a literal "]]>" across CDATA sections so code samples
// containing the terminator cannot break the macro body.
func escapeCDATA(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}
