package workspace

import (
	"regexp"
	"strings"
)

// entryPattern matches one index line: `* [Title](path/to/file.md)`. The
// title and target captures are both taken as written, unescaped.
var entryPattern = regexp.MustCompile(`^\* \[(.*)\]\((.*)\)`)

// Entry is one parsed index line. Target is relative to the workspace root.
type Entry struct {
	Title  string
	Target string
}

// ParseEntry parses a single index line. The second return reports whether
// the line matched the entry grammar.
func ParseEntry(line string) (Entry, bool) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{Title: m[1], Target: m[2]}, true
}

// SanitizeFolderName derives a plan folder name from an entry title: the
// `.md` extension is dropped and spaces become underscores.
func SanitizeFolderName(name string) string {
	name = strings.TrimSuffix(name, ".md")
	return strings.ReplaceAll(name, " ", "_")
}
