package scilab

import (
	"io/fs"

	"github.com/goliatone/go-scilab/pkg/table"
)

// EmbeddedTemplates exposes the built-in table template bundle so callers
// can copy or extend it without importing the table package directly.
func EmbeddedTemplates() fs.FS {
	return table.TemplatesFS()
}
