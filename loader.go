package scilab

import (
	"github.com/goliatone/go-scilab/pkg/table"
)

// LoadTable reads a YAML, JSON or JSONC table document from disk.
func LoadTable(path string, options ...table.LoadOption) (TableSpec, error) {
	return table.LoadFile(path, options...)
}

// ParseTable decodes a YAML or JSON table document.
func ParseTable(data []byte, options ...table.LoadOption) (TableSpec, error) {
	return table.Parse(data, options...)
}
