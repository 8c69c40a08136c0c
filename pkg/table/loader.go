package table

import (
	"fmt"
	"html"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

const (
	errorSuffix  = "_error"
	headerSuffix = "_header"
)

// LoadOption configures document parsing.
type LoadOption func(*loadConfig)

type loadConfig struct {
	stripMarkup bool
}

// WithStripMarkup removes HTML tags from the caption and headers, for
// documents exported from web pages or spreadsheets.
func WithStripMarkup() LoadOption {
	return func(cfg *loadConfig) {
		cfg.stripMarkup = true
	}
}

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// LoadFile reads a table document from disk. Files ending in .jsonc or
// .hujson may carry comments and trailing commas.
func LoadFile(path string, options ...LoadOption) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("table: read %s: %w", path, err)
	}
	return parseNamed(data, path, options)
}

// LoadFS reads a table document from fsys.
func LoadFS(fsys fs.FS, path string, options ...LoadOption) (Spec, error) {
	if fsys == nil {
		return Spec{}, fmt.Errorf("table: nil filesystem: %w", ErrInvalidArgument)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Spec{}, fmt.Errorf("table: read %s: %w", path, err)
	}
	return parseNamed(data, path, options)
}

// ParseJSONC standardizes JSON with comments before parsing it.
func ParseJSONC(data []byte, options ...LoadOption) (Spec, error) {
	standard, err := hujson.Standardize(data)
	if err != nil {
		return Spec{}, fmt.Errorf("table: standardize JSONC: %v: %w", err, ErrInvalidDocument)
	}
	return Parse(standard, options...)
}

func parseNamed(data []byte, path string, options []LoadOption) (Spec, error) {
	var (
		spec Spec
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc", ".hujson":
		spec, err = ParseJSONC(data, options...)
	default:
		spec, err = Parse(data, options...)
	}
	if err != nil {
		return Spec{}, fmt.Errorf("table: %s: %w", path, err)
	}
	return spec, nil
}

// Parse decodes a YAML or JSON table document:
//
//	caption: Pendulum
//	label: pendulum
//	float: h
//	style: booktabs
//	data:
//	  length: [0.5, 1.0]
//	  length_error: [0.01, 0.02]
//	  length_header: $L$ (m)
//
// Columns keep their declaration order. A column without a `_header` entry
// uses its key as header.
func Parse(data []byte, options ...LoadOption) (Spec, error) {
	cfg := loadConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return Spec{}, fmt.Errorf("table: document is empty: %w", ErrInvalidDocument)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Spec{}, fmt.Errorf("table: decode document: %v: %w", err, ErrInvalidDocument)
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return Spec{}, fmt.Errorf("table: document must be a mapping: %w", ErrInvalidDocument)
	}

	var (
		spec     Spec
		dataNode *yaml.Node
	)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i].Value, doc.Content[i+1]
		switch key {
		case "caption", "label", "float", "style":
			text, err := scalarText(key, value)
			if err != nil {
				return Spec{}, err
			}
			switch key {
			case "caption":
				spec.Caption = text
			case "label":
				spec.Label = text
			case "float":
				spec.Float = text
			case "style":
				spec.Style = text
			}
		case "data":
			dataNode = value
		}
	}
	if dataNode == nil || dataNode.Kind != yaml.MappingNode {
		return Spec{}, fmt.Errorf("table: document needs a data mapping: %w", ErrInvalidDocument)
	}

	columns, err := parseColumns(dataNode)
	if err != nil {
		return Spec{}, err
	}
	spec.Columns = columns

	if cfg.stripMarkup {
		spec.Caption = stripMarkup(spec.Caption)
		for i := range spec.Columns {
			spec.Columns[i].Header = stripMarkup(spec.Columns[i].Header)
		}
	}
	return spec, nil
}

func parseColumns(node *yaml.Node) ([]Column, error) {
	var (
		columns []Column
		index   = make(map[string]int)
		headers = make(map[string]string)
		errs    = make(map[string][]float64)
		order   []string
	)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch {
		case strings.HasSuffix(key, headerSuffix):
			text, err := scalarText(key, value)
			if err != nil {
				return nil, err
			}
			base := strings.TrimSuffix(key, headerSuffix)
			headers[base] = text
			order = append(order, base)
		case strings.HasSuffix(key, errorSuffix):
			numbers, err := parseNumbers(key, value)
			if err != nil {
				return nil, err
			}
			base := strings.TrimSuffix(key, errorSuffix)
			errs[base] = numbers
			order = append(order, base)
		default:
			if _, exists := index[key]; exists {
				return nil, fmt.Errorf("table: duplicate column %q: %w", key, ErrInvalidDocument)
			}
			numbers, err := parseNumbers(key, value)
			if err != nil {
				return nil, err
			}
			index[key] = len(columns)
			columns = append(columns, Column{Key: key, Header: key, Values: numbers})
		}
	}

	for _, base := range order {
		pos, ok := index[base]
		if !ok {
			return nil, fmt.Errorf("table: header or error entry for unknown column %q: %w", base, ErrInvalidDocument)
		}
		if header, ok := headers[base]; ok {
			columns[pos].Header = header
		}
		if numbers, ok := errs[base]; ok {
			columns[pos].Errors = numbers
		}
	}
	return columns, nil
}

func scalarText(key string, node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("table: %q must be a string (line %d): %w", key, node.Line, ErrInvalidDocument)
	}
	return node.Value, nil
}

func parseNumbers(key string, node *yaml.Node) ([]float64, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("table: %q must be a list of numbers (line %d): %w", key, node.Line, ErrInvalidDocument)
	}
	out := make([]float64, 0, len(node.Content))
	for idx, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("table: %q entry %d is not a number (line %d): %w", key, idx, item.Line, ErrInvalidDocument)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(item.Value), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("table: %q entry %d %q is not a finite number (line %d): %w", key, idx, item.Value, item.Line, ErrInvalidDocument)
		}
		out = append(out, v)
	}
	return out, nil
}

func stripMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := markupSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.StrictPolicy()
	})
	return markupPolicy
}
