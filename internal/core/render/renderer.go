// Package render substitutes resolved parameters into command templates.
package render

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// MissingBindingError reports a template placeholder with no bound value.
type MissingBindingError struct {
	Placeholder string
	Template    string
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("no binding for placeholder {%s} in template %q",
		e.Placeholder, e.Template)
}

// Render replaces every {name} occurrence in the template with its bound
// value and returns the literal command line. Substitution is a single pass
// over the template, so bound values are never re-scanned for placeholders.
// No shell escaping is performed, since the result is handed directly to a
// shell; callers must quote bound values that need it. A placeholder absent
// from bindings fails with MissingBindingError.
func Render(template string, bindings map[string]string) (string, error) {
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if _, ok := bindings[m[1]]; !ok {
			return "", &MissingBindingError{Placeholder: m[1], Template: template}
		}
	}
	out := placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		return bindings[strings.Trim(match, "{}")]
	})
	return out, nil
}
