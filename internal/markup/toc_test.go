package markup

import (
	"strings"
	"testing"
)

func TestTableOfContentsReplacesDoctocBlock(t *testing.T) {
	input := "<h1>Guide</h1>\n" +
		"<!-- START doctoc -->\n" +
		"<ul>\n<li><a href=\"#guide\">Guide</a></li>\n</ul>\n" +
		"<!-- END doctoc -->\n" +
		"<p>Body</p>"

	pass := TableOfContents()
	got, err := pass.Apply(input)
	if err != nil {
		t.Fatalf("apply toc pass: %v", err)
	}

	if strings.Contains(got, "doctoc") {
		t.Fatalf("expected doctoc block removed, got %q", got)
	}
	for _, param := range []string{
		`<ac:structured-macro ac:name="toc">`,
		`<ac:parameter ac:name="printable">true</ac:parameter>`,
		`<ac:parameter ac:name="style">disc</ac:parameter>`,
		`<ac:parameter ac:name="maxLevel">7</ac:parameter>`,
		`<ac:parameter ac:name="minLevel">1</ac:parameter>`,
		`<ac:parameter ac:name="type">list</ac:parameter>`,
		`<ac:parameter ac:name="outline">clear</ac:parameter>`,
		`<ac:parameter ac:name="include">.*</ac:parameter>`,
	} {
		if !strings.Contains(got, param) {
			t.Fatalf("expected macro parameter %q in %q", param, got)
		}
	}
	if !strings.Contains(got, "<h1>Guide</h1>") || !strings.Contains(got, "<p>Body</p>") {
		t.Fatalf("expected surrounding content preserved, got %q", got)
	}
}

func TestTableOfContentsMatchesEachBlockSeparately(t *testing.T) {
	input := "<!-- START doctoc -->\n<ul></ul>\n<!-- END doctoc -->\n" +
		"<p>Between</p>\n" +
		"<!-- START doctoc -->\n<ul></ul>\n<!-- END doctoc -->"

	pass := TableOfContents()
	got, err := pass.Apply(input)
	if err != nil {
		t.Fatalf("apply toc pass: %v", err)
	}

	if !strings.Contains(got, "<p>Between</p>") {
		t.Fatalf("expected content between blocks preserved, got %q", got)
	}
	if count := strings.Count(got, `ac:name="toc"`); count != 2 {
		t.Fatalf("expected 2 toc macros, got %d", count)
	}
}

func TestTableOfContentsIgnoresOrdinaryComments(t *testing.T) {
	input := "<p>Body</p>\n<!-- just a note -->"

	pass := TableOfContents()
	got, err := pass.Apply(input)
	if err != nil {
		t.Fatalf("apply toc pass: %v", err)
	}
	if got != input {
		t.Fatalf("expected ordinary comment untouched\nwant: %s\ngot:  %s", input, got)
	}
}
