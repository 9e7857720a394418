package workspace

import "testing"

func TestParseEntry(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		match  bool
		title  string
		target string
	}{
		{
			name:   "simple entry",
			line:   "* [Getting Started](Getting Started.md)",
			match:  true,
			title:  "Getting Started",
			target: "Getting Started.md",
		},
		{
			name:   "nested target",
			line:   "* [Team Handbook](guides/index.md)",
			match:  true,
			title:  "Team Handbook",
			target: "guides/index.md",
		},
		{
			name:   "escaped target",
			line:   `* [Notes](My\ Notes.md)`,
			match:  true,
			title:  "Notes",
			target: `My\ Notes.md`,
		},
		{name: "heading", line: "# Welcome"},
		{name: "blank", line: ""},
		{name: "indented entry", line: "  * [A](a.md)"},
		{name: "dash bullet", line: "- [A](a.md)"},
		{name: "prose", line: "Just some text."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry, ok := ParseEntry(tc.line)
			if ok != tc.match {
				t.Fatalf("expected match=%v for %q, got %v", tc.match, tc.line, ok)
			}
			if !tc.match {
				return
			}
			if entry.Title != tc.title {
				t.Fatalf("expected title %q, got %q", tc.title, entry.Title)
			}
			if entry.Target != tc.target {
				t.Fatalf("expected target %q, got %q", tc.target, entry.Target)
			}
		})
	}
}

func TestSanitizeFolderName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Topic.md", "My_Topic"},
		{"index.md", "index"},
		{"B", "B"},
		{"Already_Clean", "Already_Clean"},
		{"Spaces only", "Spaces_only"},
		{"Team Handbook.md", "Team_Handbook"},
	}

	for _, tc := range cases {
		if got := SanitizeFolderName(tc.in); got != tc.want {
			t.Fatalf("SanitizeFolderName(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
