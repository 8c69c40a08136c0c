package table

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Style names the horizontal rules drawn above the header, below the header
// and below the last row.
type Style struct {
	Name   string `json:"name" yaml:"name"`
	Top    string `json:"top" yaml:"top"`
	Mid    string `json:"mid" yaml:"mid"`
	Bottom string `json:"bottom" yaml:"bottom"`
}

var (
	// StyleSimple draws \hline rules.
	StyleSimple = Style{Name: "simple", Top: `\hline`, Mid: `\hline`, Bottom: `\hline`}
	// StyleBooktabs draws the booktabs package rules.
	StyleBooktabs = Style{Name: "booktabs", Top: `\toprule`, Mid: `\midrule`, Bottom: `\bottomrule`}
)

// DefaultStyleName is used when neither the assembler nor the spec picks one.
const DefaultStyleName = "simple"

// StyleRegistry stores styles by name.
type StyleRegistry struct {
	mu     sync.RWMutex
	styles map[string]Style
}

// NewStyleRegistry creates an empty registry.
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{
		styles: make(map[string]Style),
	}
}

// DefaultStyles returns a registry holding StyleSimple and StyleBooktabs.
func DefaultStyles() *StyleRegistry {
	reg := NewStyleRegistry()
	reg.MustRegister(StyleSimple)
	reg.MustRegister(StyleBooktabs)
	return reg
}

// Register adds a style by name. Duplicate names return an error.
func (r *StyleRegistry) Register(style Style) error {
	name := strings.TrimSpace(style.Name)
	if name == "" {
		return fmt.Errorf("table: style name is required: %w", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.styles[name]; exists {
		return fmt.Errorf("table: style %q already registered: %w", name, ErrInvalidArgument)
	}
	style.Name = name
	r.styles[name] = style
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *StyleRegistry) MustRegister(style Style) {
	if err := r.Register(style); err != nil {
		panic(err)
	}
}

// Get retrieves a style by name.
func (r *StyleRegistry) Get(name string) (Style, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	style, ok := r.styles[strings.TrimSpace(name)]
	if !ok {
		return Style{}, fmt.Errorf("table: style %q not found: %w", name, ErrInvalidArgument)
	}
	return style, nil
}

// List returns the registered style names, sorted.
func (r *StyleRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a style is registered.
func (r *StyleRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.styles[strings.TrimSpace(name)]
	return ok
}
