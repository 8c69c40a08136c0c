package gotemplate

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var texReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// pongo2 keeps filters in a process-wide map without locking.
var defaultFiltersOnce sync.Once

func registerDefaultFilters() {
	defaultFiltersOnce.Do(func() {
		if !pongo2.FilterExists("trim") {
			_ = pongo2.RegisterFilter("trim", filterTrim)
		}
		if !pongo2.FilterExists("texescape") {
			_ = pongo2.RegisterFilter("texescape", filterTexEscape)
		}
	})
}

// EscapeTeX escapes the characters LaTeX treats as markup: `50% & x_1`
// becomes `50\% \& x\_1`.
func EscapeTeX(text string) string {
	return texReplacer.Replace(text)
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterTexEscape escapes the characters LaTeX treats as markup so plain text
// can be dropped into a template verbatim.
func filterTexEscape(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(EscapeTeX(in.String())), nil
}
