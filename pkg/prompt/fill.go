package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-scilab/pkg/table"
)

// Placements lists the float specifiers offered for an unset placement. The
// empty entry leaves the table without one.
var Placements = []string{"", "h", "t", "b", "p", "htbp"}

// Fill asks for every piece of metadata spec leaves empty: caption, label,
// float placement and rule style. Fields already set are never asked for.
// styles lists the names the style question offers; the first entry is the
// default unless table.DefaultStyleName is among them.
func Fill(ctx context.Context, driver Driver, spec *table.Spec, styles []string) error {
	if driver == nil || spec == nil {
		return errors.New("prompt: driver and spec are required")
	}

	if strings.TrimSpace(spec.Caption) == "" {
		caption, err := driver.Input(ctx, InputConfig{
			Message:   "Caption",
			Help:      "Text placed in \\caption{}",
			Validator: required("caption"),
		})
		if err != nil {
			return fmt.Errorf("prompt: caption: %w", err)
		}
		spec.Caption = strings.TrimSpace(caption)
	}

	if strings.TrimSpace(spec.Label) == "" {
		label, err := driver.Input(ctx, InputConfig{
			Message:   "Label",
			Help:      "Referenced as tab:<label>",
			Default:   Slug(spec.Caption),
			Validator: required("label"),
		})
		if err != nil {
			return fmt.Errorf("prompt: label: %w", err)
		}
		spec.Label = strings.TrimSpace(label)
	}

	if spec.Float == "" {
		idx, err := driver.Select(ctx, SelectConfig{
			Message: "Float placement",
			Options: placementLabels(),
		})
		if err != nil {
			return fmt.Errorf("prompt: placement: %w", err)
		}
		if idx > 0 && idx < len(Placements) {
			spec.Float = Placements[idx]
		}
	}

	if spec.Style == "" {
		if len(styles) == 0 {
			return ErrNoStyles
		}
		def := 0
		for i, name := range styles {
			if name == table.DefaultStyleName {
				def = i
			}
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      "Rule style",
			Options:      styles,
			DefaultIndex: def,
		})
		if err != nil {
			return fmt.Errorf("prompt: style: %w", err)
		}
		if idx < 0 || idx >= len(styles) {
			idx = def
		}
		spec.Style = styles[idx]
	}
	return nil
}

// Slug lowercases text and joins its words with dashes, dropping anything
// that is not a letter or a digit: "Pendulum (runs 1-3)" becomes
// "pendulum-runs-1-3".
func Slug(text string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

func placementLabels() []string {
	labels := make([]string, len(Placements))
	for i, p := range Placements {
		if p == "" {
			labels[i] = "none"
			continue
		}
		labels[i] = "[" + p + "]"
	}
	return labels
}

func required(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
