package fragment

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// SanitizeMarkup strips dangerous constructs (scripts, event handlers,
// javascript: URLs) from untrusted markup so the result is safe to pass to
// Builder.Raw. Trigger attributes survive sanitization so stored snippets
// keep their interactive behavior.
func SanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(markupSanitizer().Sanitize(trimmed))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs(
			"data-get", "data-post", "data-delete", "data-target", "data-swap",
		).Globally()
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowElements("button", "input", "form", "label", "textarea")
		policy.AllowAttrs("type", "name", "value", "placeholder", "checked", "rows").
			OnElements("input", "textarea", "button")
		markupPolicy = policy
	})
	return markupPolicy
}
