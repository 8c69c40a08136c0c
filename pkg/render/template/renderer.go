package template

import (
	"io"
)

// TemplateRenderer is the seam the table assembler renders through. The
// pongo2-backed engine in the gotemplate subpackage is the default; callers
// may inject their own implementation.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
