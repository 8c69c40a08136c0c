// Package template defines the renderer-agnostic template contract used to
// lay out LaTeX markup, keeping the assembler independent of a concrete
// template engine.
package template
