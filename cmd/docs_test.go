package cmd

import (
	"strings"
	"testing"
)

func TestDocsRaw(t *testing.T) {
	out, err := run(t, "docs", "--raw")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.HasPrefix(out, "# selectme") {
		t.Errorf("raw docs start with %q", out[:min(len(out), 20)])
	}
}

func TestDocsRendered(t *testing.T) {
	out, err := run(t, "docs", "--style", "notty", "--width", "60")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if strings.Contains(out, "```") {
		t.Error("code fences left in rendered output")
	}
	for _, want := range []string{"selectme", "Placement", "SELECTME_WIDGET_WIDTH"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered docs missing %q", want)
		}
	}
}

func TestDocsBadStyle(t *testing.T) {
	if _, err := run(t, "docs", "--style", "no-such-style"); err == nil {
		t.Error("expected an error for an unknown style")
	}
}
