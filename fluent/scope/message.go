package scope

import (
	"fmt"
	"strconv"
	"strings"
)

// Reason is a caller-supplied explanation merged into failure messages. It
// carries no weight in the pass/fail decision.
type Reason struct {
	Format string
	Args   []any
}

// NewReason builds a Reason from the trailing variadic arguments of an
// assertion method. The first argument is the format string; the rest are
// its substitution values. No arguments means no reason.
func NewReason(args ...any) Reason {
	if len(args) == 0 {
		return Reason{}
	}

	if formatStr, ok := args[0].(string); ok {
		return Reason{Format: formatStr, Args: args[1:]}
	}

	// Tolerate a non-string first argument rather than dropping it.
	return Reason{Format: strings.TrimRight(strings.Repeat("%v ", len(args)), " "), Args: args}
}

// String renders the reason for insertion at a {reason} placeholder. An
// empty reason renders as "", a non-empty one as " because ..." with an
// existing "because" prefix left intact.
func (r Reason) String() string {
	s := r.Format
	if len(r.Args) > 0 {
		s = fmt.Sprintf(s, r.Args...)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if !strings.HasPrefix(strings.ToLower(s), "because") {
		s = "because " + s
	}

	return " " + s
}

// expand substitutes {reason} and {0}, {1}, ... tokens in a single pass
// over the template. Rendered arguments are emitted verbatim, never
// re-scanned, so a diagnostic value that happens to contain a token cannot
// corrupt the message. Unknown tokens are left as-is.
func expand(template, reason string, args []string) string {
	var sb strings.Builder

	for i := 0; i < len(template); {
		if template[i] != '{' {
			sb.WriteByte(template[i])
			i++

			continue
		}

		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			sb.WriteString(template[i:])
			break
		}

		token := template[i+1 : i+end]

		if token == "reason" {
			sb.WriteString(reason)
		} else if n, err := strconv.Atoi(token); err == nil && n >= 0 && n < len(args) {
			sb.WriteString(args[n])
		} else {
			sb.WriteString(template[i : i+end+1])
		}

		i += end + 1
	}

	return sb.String()
}
