// internal/selector/escape.go
package selector

import (
	"fmt"
	"strings"
)

// escapeIdentifier makes an arbitrary id or class value safe to embed in a
// selector, following the CSS.escape algorithm for the cases that occur in
// real markup: a leading digit becomes a code-point escape, and anything
// outside the identifier alphabet is backslash-escaped.
func escapeIdentifier(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			if i == 0 {
				fmt.Fprintf(&b, "\\%x ", r)
			} else {
				b.WriteRune(r)
			}
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' || r == '_' || r > 0x80:
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeAttributeValue makes a value safe inside a double-quoted attribute
// selector.
func escapeAttributeValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
