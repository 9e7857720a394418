package markup

import (
	"errors"
	"strings"
	"testing"
)

func TestFootnotesConvertMarkerAndRemoveDefinition(t *testing.T) {
	input := "<p>Use service tokens[^1] for automation.</p>\n" +
		"<p>[^1]: See <a href=\"https://example.com/tokens\">the guide</a></p>\n"

	got, err := convertFootnoteRefs(input)
	if err != nil {
		t.Fatalf("convertFootnoteRefs: %v", err)
	}

	want := "<p>Use service tokens<a href=\"https://example.com/tokens\"><sup>1</sup></a> for automation.</p>\n"
	if got != want {
		t.Fatalf("unexpected conversion\nwant: %s\ngot:  %s", want, got)
	}
}

func TestFootnotesBareDefinitionLine(t *testing.T) {
	input := "<p>Deploys go through CI[^2] only.</p>\n" +
		"[^2]: <a href=\"https://ci.example.com\">pipeline</a>\n"

	got, err := convertFootnoteRefs(input)
	if err != nil {
		t.Fatalf("convertFootnoteRefs: %v", err)
	}

	if strings.Contains(got, "[^2]") {
		t.Fatalf("expected marker replaced, got %q", got)
	}
	if strings.Contains(got, "pipeline") {
		t.Fatalf("expected definition removed, got %q", got)
	}
	if !strings.Contains(got, `<a href="https://ci.example.com"><sup>2</sup></a>`) {
		t.Fatalf("expected superscript link, got %q", got)
	}
}

func TestFootnotesDefinitionWithoutHrefFails(t *testing.T) {
	input := "<p>Rollbacks need approval[^3].</p>\n" +
		"<p>[^3]: ask in the ops channel</p>\n"

	_, err := convertFootnoteRefs(input)
	if err == nil {
		t.Fatal("expected error for definition without href")
	}
	if !errors.Is(err, ErrFootnoteHref) {
		t.Fatalf("expected ErrFootnoteHref, got %v", err)
	}

	var fnErr *FootnoteError
	if !errors.As(err, &fnErr) {
		t.Fatalf("expected FootnoteError, got %T", err)
	}
	if fnErr.Definition != "[^3]: ask in the ops channel" {
		t.Fatalf("unexpected definition %q", fnErr.Definition)
	}
}

func TestFootnotesWithoutFootnotesUnchanged(t *testing.T) {
	input := "<p>Nothing referenced here.</p>"

	got, err := convertFootnoteRefs(input)
	if err != nil {
		t.Fatalf("convertFootnoteRefs: %v", err)
	}
	if got != input {
		t.Fatalf("expected input unchanged, got %q", got)
	}
}
