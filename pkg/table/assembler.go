package table

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/apex/log"

	rendertemplate "github.com/goliatone/go-scilab/pkg/render/template"
	"github.com/goliatone/go-scilab/pkg/render/template/gotemplate"
)

const cellSeparator = "\t&\t"

// Option configures the assembler.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	styles           *StyleRegistry
	style            string
	escapeText       bool
	logger           log.Interface
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// TemplateName.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the template bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStyleRegistry replaces the built-in style registry.
func WithStyleRegistry(registry *StyleRegistry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.styles = registry
		}
	}
}

// WithStyle selects the default rule style. A style named by the spec takes
// precedence.
func WithStyle(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.style = trimmed
		}
	}
}

// WithEscapedText escapes LaTeX markup characters in the caption and the
// column headers, for documents whose text is plain rather than LaTeX.
// Cells are never escaped.
func WithEscapedText() Option {
	return func(cfg *config) {
		cfg.escapeText = true
	}
}

// WithLogger sets the logger used for debug output. Defaults to log.Log.
func WithLogger(logger log.Interface) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Assembler renders Specs into LaTeX table environments. It holds no
// per-call state and may be shared between goroutines.
type Assembler struct {
	templates  rendertemplate.TemplateRenderer
	styles     *StyleRegistry
	style      string
	escapeText bool
	logger     log.Interface
}

// New constructs an assembler applying any provided options.
func New(options ...Option) (*Assembler, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		style:      DefaultStyleName,
		logger:     log.Log,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.styles == nil {
		cfg.styles = DefaultStyles()
	}
	if !cfg.styles.Has(cfg.style) {
		return nil, fmt.Errorf("table: default style %q not registered: %w", cfg.style, ErrInvalidArgument)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("table: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Assembler{
		templates:  renderer,
		styles:     cfg.styles,
		style:      cfg.style,
		escapeText: cfg.escapeText,
		logger:     cfg.logger,
	}, nil
}

// Styles returns the registry the assembler resolves style names against.
func (a *Assembler) Styles() *StyleRegistry {
	return a.styles
}

// Render validates spec and returns the complete LaTeX table environment.
// Nothing is written to out unless rendering succeeds.
func (a *Assembler) Render(spec Spec, out ...io.Writer) (string, error) {
	if a == nil || a.templates == nil {
		return "", fmt.Errorf("table: assembler is not initialised")
	}
	if err := spec.Validate(); err != nil {
		return "", err
	}

	styleName := a.style
	if spec.Style != "" {
		styleName = spec.Style
	}
	style, err := a.styles.Get(styleName)
	if err != nil {
		return "", err
	}

	cells := make([][]string, len(spec.Columns))
	headers := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		headers[i] = col.Header
		if a.escapeText {
			headers[i] = gotemplate.EscapeTeX(col.Header)
		}
		cells[i], err = a.renderColumn(col)
		if err != nil {
			return "", err
		}
	}

	rows := spec.Rows()
	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		row := make([]string, len(cells))
		for c := range cells {
			row[c] = cells[c][r]
		}
		lines[r] = "\t\t" + strings.Join(row, cellSeparator) + ` \\`
	}
	body := strings.Join(lines, "\n")
	if rows == 0 {
		body = "\t\t"
	}

	result, err := a.templates.RenderTemplate(TemplateName, map[string]any{
		"placement": placement(spec.Float),
		"alignment": strings.Repeat("c", len(spec.Columns)),
		"header":    strings.Join(headers, cellSeparator),
		"body":      body,
		"caption":   spec.Caption,
		"escape":    a.escapeText,
		"label":     spec.Label,
		"rules": map[string]any{
			"top":    style.Top,
			"mid":    style.Mid,
			"bottom": style.Bottom,
		},
	}, out...)
	if err != nil {
		return "", fmt.Errorf("table: render template: %w", err)
	}

	a.logger.WithFields(log.Fields{
		"caption": spec.Caption,
		"columns": len(spec.Columns),
		"rows":    rows,
		"style":   style.Name,
	}).Debug("table rendered")
	return result, nil
}

func (a *Assembler) renderColumn(col Column) ([]string, error) {
	out := make([]string, len(col.Values))
	for i, v := range col.Values {
		if !col.HasErrors() {
			out[i] = FormatValue(v)
			continue
		}
		cell, err := formatCell(v, col.Errors[i], a.logger)
		if err != nil {
			return nil, fmt.Errorf("table: column %q row %d: %w", columnName(col), i, err)
		}
		out[i] = cell
	}
	return out, nil
}

func placement(float string) string {
	trimmed := strings.TrimSpace(float)
	if trimmed == "" {
		return ""
	}
	return "[" + trimmed + "]"
}
