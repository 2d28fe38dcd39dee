// Package markup produces the rich text snippets shown in timeline and room views.
package markup

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces every special HTML character of s by its entity.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
