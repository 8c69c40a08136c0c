package table

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplateName is the template the assembler renders, relative to the
// templates filesystem.
const TemplateName = "templates/table.tpl"

// TemplatesFS exposes the embedded template bundle so callers can copy or
// extend the built-in layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
