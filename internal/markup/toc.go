package markup

import "regexp"

// doctoc blocks are HTML comments, so this pass must run before Comments
// turns comment markers into placeholders.
var doctocPattern = regexp.MustCompile(`(?s)<!-- START doctoc.*?END doctoc -->`)

const tocMacro = `<p>
    <ac:structured-macro ac:name="toc">
      <ac:parameter ac:name="printable">true</ac:parameter>
      <ac:parameter ac:name="style">disc</ac:parameter>
      <ac:parameter ac:name="maxLevel">7</ac:parameter>
      <ac:parameter ac:name="minLevel">1</ac:parameter>
      <ac:parameter ac:name="type">list</ac:parameter>
      <ac:parameter ac:name="outline">clear</ac:parameter>
      <ac:parameter ac:name="include">.*</ac:parameter>
    </ac:structured-macro>
    </p>`

// TableOfContents replaces doctoc comment blocks with the TOC macro.
func TableOfContents() Pass {
	return Pass{
		Name: "toc",
		Apply: func(html string) (string, error) {
			return doctocPattern.ReplaceAllString(html, tocMacro), nil
		},
	}
}
