package table_test

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-scilab/pkg/table"
	"github.com/goliatone/go-scilab/pkg/testsupport"
)

func newAssembler(t *testing.T, options ...table.Option) *table.Assembler {
	t.Helper()

	assembler, err := table.New(options...)
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	return assembler
}

func TestAssembler_RenderGolden(t *testing.T) {
	spec := testsupport.MustLoadSpec(t, filepath.Join("testdata", "measurements.yaml"))

	cases := []struct {
		style  string
		golden string
	}{
		{style: "simple", golden: "simple.golden"},
		{style: "booktabs", golden: "booktabs.golden"},
	}

	for _, tc := range cases {
		t.Run(tc.style, func(t *testing.T) {
			assembler := newAssembler(t, table.WithStyle(tc.style))
			got, written := testsupport.CaptureOutput(t, func(w io.Writer) (string, error) {
				return assembler.Render(spec, w)
			})

			goldenPath := filepath.Join("testdata", tc.golden)
			if testsupport.WriteMaybeGolden(t, goldenPath, []byte(got)) {
				return
			}
			want := testsupport.MustReadGoldenString(t, goldenPath)
			if diff := testsupport.CompareGolden(want, got); diff != "" {
				t.Fatalf("table mismatch (-want +got):\n%s", diff)
			}
			if written != got {
				t.Fatalf("writer received %q, want %q", written, got)
			}
		})
	}
}

func TestAssembler_BareColumns(t *testing.T) {
	spec := table.Spec{
		Caption: "Plain",
		Label:   "plain",
		Columns: []table.Column{
			{Key: "a", Header: "Col 1", Values: []float64{1, 2, 3}},
			{Key: "b", Header: "Col 2", Values: []float64{0.5, 1e-7, -4}},
		},
	}

	got, err := newAssembler(t).Render(spec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, `\begin{tabular}{ cc }`) {
		t.Fatalf("expected two alignment specifiers, got:\n%s", got)
	}
	if !strings.Contains(got, "\t\tCol 1\t&\tCol 2 \\\\ \\hline\n") {
		t.Fatalf("expected header row, got:\n%s", got)
	}
	if !strings.HasPrefix(got, "\\begin{table}\n") {
		t.Fatalf("expected no placement argument, got:\n%s", got)
	}

	rows := []string{
		"\t\t$1$\t&\t$0.5$ \\\\",
		"\t\t$2$\t&\t$1 \\cdot 10^{-7}$ \\\\",
		"\t\t$3$\t&\t$-4$ \\\\",
	}
	for _, row := range rows {
		if !strings.Contains(got, row) {
			t.Fatalf("expected row %q in:\n%s", row, got)
		}
	}
	if count := strings.Count(got, ` \\`); count != 4 {
		t.Fatalf("expected header plus 3 data rows, counted %d row terminators", count)
	}
}

func TestAssembler_ExponentialColumn(t *testing.T) {
	spec := testsupport.MustLoadSpec(t, filepath.Join("testdata", "decay.jsonc"))

	got, err := newAssembler(t).Render(spec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		`\begin{tabular}{ c } \toprule`,
		"\t\t$\\lambda$ (s$^{-1}$) \\\\ \\midrule\n",
		"\t\t$( 1.23 \\pm 0.02) \\cdot 10^{-5}$ \\\\\n",
		"\t\t$( 4.50 \\pm 0.03) \\cdot 10^{-7}$ \\\\ \\bottomrule\n",
		`\label{tab:decay}`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}

func TestAssembler_ValidationFailsBeforeOutput(t *testing.T) {
	cases := map[string]table.Spec{
		"no columns": {Caption: "empty"},
		"row mismatch": {Columns: []table.Column{
			{Key: "a", Values: []float64{1, 2}},
			{Key: "b", Values: []float64{1}},
		}},
		"error mismatch": {Columns: []table.Column{
			{Key: "a", Values: []float64{1, 2}, Errors: []float64{0.1}},
		}},
		"negative error": {Columns: []table.Column{
			{Key: "a", Values: []float64{1}, Errors: []float64{-0.1}},
		}},
		"unknown style": {Style: "fancy", Columns: []table.Column{
			{Key: "a", Values: []float64{1}},
		}},
	}

	assembler := newAssembler(t)
	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			var buf strings.Builder
			got, err := assembler.Render(spec, &buf)
			if !errors.Is(err, table.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if got != "" || buf.Len() != 0 {
				t.Fatalf("expected no output, got %q / %q", got, buf.String())
			}
		})
	}
}

func TestAssembler_ZeroRows(t *testing.T) {
	spec := table.Spec{
		Caption: "Nothing yet",
		Label:   "none",
		Columns: []table.Column{{Key: "a", Header: "A"}},
	}
	got, err := newAssembler(t).Render(spec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "\t\tA \\\\ \\hline\n\t\t \\hline\n") {
		t.Fatalf("unexpected empty body:\n%s", got)
	}
}

func TestAssembler_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		table.TemplateName: {Data: []byte("{{ caption }}|{{ alignment }}|{{ rules.top|safe }}")},
	}
	assembler := newAssembler(t, table.WithTemplatesFS(files), table.WithStyle("booktabs"))

	got, err := assembler.Render(table.Spec{
		Caption: "Custom",
		Columns: []table.Column{{Key: "a", Values: []float64{1}}, {Key: "b", Values: []float64{2}}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `Custom|cc|\toprule`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAssembler_CustomStyleRegistry(t *testing.T) {
	registry := table.NewStyleRegistry()
	registry.MustRegister(table.Style{Name: "bare"})

	if _, err := table.New(table.WithStyleRegistry(registry)); !errors.Is(err, table.ErrInvalidArgument) {
		t.Fatalf("expected missing default style to fail, got %v", err)
	}

	assembler := newAssembler(t, table.WithStyleRegistry(registry), table.WithStyle("bare"))
	got, err := assembler.Render(table.Spec{Columns: []table.Column{{Key: "a", Header: "A", Values: []float64{7}}}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, `\hline`) {
		t.Fatalf("bare style should not draw rules:\n%s", got)
	}
}

func TestAssembler_LogsRender(t *testing.T) {
	handler := memory.New()
	logger := &log.Logger{Handler: handler, Level: log.DebugLevel}

	assembler := newAssembler(t, table.WithLogger(logger))
	if _, err := assembler.Render(table.Spec{
		Caption: "Logged",
		Columns: []table.Column{{Key: "a", Values: []float64{1, 2}}},
	}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(handler.Entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(handler.Entries))
	}
	entry := handler.Entries[0]
	if entry.Message != "table rendered" {
		t.Fatalf("unexpected message %q", entry.Message)
	}
	if entry.Fields["rows"] != 2 || entry.Fields["style"] != "simple" {
		t.Fatalf("unexpected fields %v", entry.Fields)
	}
}

func TestAssembler_LogsSkippedCommonFactor(t *testing.T) {
	handler := memory.New()
	logger := &log.Logger{Handler: handler, Level: log.DebugLevel}

	assembler := newAssembler(t, table.WithLogger(logger))
	got, err := assembler.Render(table.Spec{
		Caption: "Mixed",
		Columns: []table.Column{{Key: "a", Values: []float64{0.5, 1.23e-5}, Errors: []float64{0.00002, 2e-7}}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `$0.50000 \pm 2 \cdot 10^{-5}$`) {
		t.Fatalf("expected separate exponential in output:\n%s", got)
	}

	var messages []string
	for _, entry := range handler.Entries {
		messages = append(messages, entry.Message)
	}
	if diff := cmp.Diff([]string{"common factor skipped", "table rendered"}, messages); diff != "" {
		t.Fatalf("log messages mismatch (-want +got):\n%s", diff)
	}
	if handler.Entries[0].Fields["uncertainty"] != "2e-05" {
		t.Fatalf("unexpected fields %v", handler.Entries[0].Fields)
	}
}

func TestAssembler_EscapedText(t *testing.T) {
	spec := table.Spec{
		Caption: "Yield 50% & loss",
		Label:   "yield",
		Columns: []table.Column{{Key: "n_1", Header: "n_1", Values: []float64{0.25}}},
	}

	escaped, err := newAssembler(t, table.WithEscapedText()).Render(spec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"\\caption{ Yield 50\\% \\& loss }",
		"\t\tn\\_1 \\\\ \\hline\n",
		"\t\t$0.25$ \\\\ \\hline\n",
		"\\label{tab:yield}",
	} {
		if !strings.Contains(escaped, want) {
			t.Fatalf("expected %q in output:\n%s", want, escaped)
		}
	}

	plain, err := newAssembler(t).Render(spec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(plain, "\\caption{ Yield 50% & loss }") || !strings.Contains(plain, "\t\tn_1 \\\\ \\hline\n") {
		t.Fatalf("text should pass through unescaped by default:\n%s", plain)
	}
}
