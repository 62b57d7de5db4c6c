package fragment

import (
	"strings"
	"testing"
)

func TestSanitizeMarkup_StripsScripts(t *testing.T) {
	got := SanitizeMarkup(`<p>hi</p><script>alert(1)</script>`)
	if strings.Contains(got, "script") {
		t.Fatalf("script survived sanitization: %q", got)
	}
	if !strings.Contains(got, "<p>hi</p>") {
		t.Fatalf("benign markup dropped: %q", got)
	}
}

func TestSanitizeMarkup_KeepsTriggerAttributes(t *testing.T) {
	in := `<button class="btn" data-post="/api/todos/1/toggle" data-target="#todo-1" data-swap="outerHTML">x</button>`
	got := SanitizeMarkup(in)
	for _, attr := range []string{"data-post", "data-target", "data-swap"} {
		if !strings.Contains(got, attr) {
			t.Fatalf("%s stripped from %q", attr, got)
		}
	}
}

func TestSanitizeMarkup_EmptyInput(t *testing.T) {
	if got := SanitizeMarkup("   "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
