package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/fatih/color"

	"github.com/goliatone/go-scilab/pkg/prompt"
	"github.com/goliatone/go-scilab/pkg/sigfig"
	"github.com/goliatone/go-scilab/pkg/table"
)

type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
	// newDriver builds the prompt driver for --interactive.
	newDriver func() prompt.Driver
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: &log.Logger{
			Handler: cli.New(stderr),
			Level:   log.InfoLevel,
		},
		newDriver: func() prompt.Driver {
			return prompt.NewSurveyDriver()
		},
	}
}

type tableArgs struct {
	path        string
	style       string
	output      string
	templates   string
	stripHTML   bool
	escapeText  bool
	interactive bool
}

func (a *app) run(ctx context.Context, args []string) error {
	cmd := kingpin.New("scilab", "Round measurements to their uncertainty and typeset them as LaTeX tables.")
	cmd.UsageWriter(a.stdout)
	cmd.ErrorWriter(a.stderr)
	// kingpin calls terminate after printing --help; keep the process alive
	// and report success instead.
	helped := false
	cmd.Terminate(func(int) { helped = true })

	verbose := cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()

	sigCmd := cmd.Command("sig", "Round a number to significant digits.")
	sigNumber := sigCmd.Arg("number", "Number to round.").Required().Float64()
	sigDigits := sigCmd.Flag("digits", "Significant digits to keep.").Short('n').Default("1").Int()

	roundCmd := cmd.Command("round", "Round a value to the precision of its uncertainty.")
	roundValue := roundCmd.Arg("value", "Measured value.").Required().Float64()
	roundError := roundCmd.Arg("error", "Uncertainty of the value.").Required().Float64()
	roundLatex := roundCmd.Flag("latex", "Print the pair as an inline math cell.").Bool()

	var targs tableArgs
	tableCmd := cmd.Command("table", "Render a table document as a LaTeX table environment.")
	tableCmd.Arg("file", "YAML, JSON or JSONC table document.").Required().ExistingFileVar(&targs.path)
	tableCmd.Flag("style", "Rule style, overriding the document.").Short('s').StringVar(&targs.style)
	tableCmd.Flag("output", "Output file (stdout if empty).").Short('o').StringVar(&targs.output)
	tableCmd.Flag("templates", "Directory holding a replacement "+table.TemplateName+".").ExistingDirVar(&targs.templates)
	tableCmd.Flag("strip-html", "Remove HTML markup from caption and headers.").BoolVar(&targs.stripHTML)
	tableCmd.Flag("escape-text", "Escape LaTeX markup characters in caption and headers.").BoolVar(&targs.escapeText)
	tableCmd.Flag("interactive", "Ask for missing caption, label, placement and style.").Short('i').BoolVar(&targs.interactive)

	stylesCmd := cmd.Command("styles", "List the available rule styles.")

	selected, err := cmd.Parse(args)
	if helped {
		return nil
	}
	if err != nil {
		return err
	}
	if *verbose {
		a.logger.Level = log.DebugLevel
	}

	switch selected {
	case sigCmd.FullCommand():
		return a.runSig(*sigNumber, *sigDigits)
	case roundCmd.FullCommand():
		return a.runRound(*roundValue, *roundError, *roundLatex)
	case tableCmd.FullCommand():
		return a.runTable(ctx, targs)
	case stylesCmd.FullCommand():
		return a.runStyles()
	}
	return fmt.Errorf("unknown command %q", selected)
}

func (a *app) runSig(number float64, digits int) error {
	rounded, places, err := sigfig.Round(number, digits)
	if err != nil {
		return err
	}
	a.logger.WithFields(log.Fields{
		"number": number,
		"digits": digits,
		"places": places,
	}).Debug("rounded")

	_, err = fmt.Fprintln(a.stdout, formatPlaces(rounded, places))
	return err
}

func (a *app) runRound(value, uncertainty float64, asLatex bool) error {
	if asLatex {
		cell, err := table.FormatCell(value, uncertainty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.stdout, cell)
		return err
	}

	pair, err := sigfig.RoundWithError(value, uncertainty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "%s +/- %s\n", pair.Value, pair.Error)
	return err
}

func (a *app) runTable(ctx context.Context, args tableArgs) error {
	var loadOpts []table.LoadOption
	if args.stripHTML {
		loadOpts = append(loadOpts, table.WithStripMarkup())
	}
	spec, err := table.LoadFile(args.path, loadOpts...)
	if err != nil {
		return err
	}
	if args.style != "" {
		spec.Style = args.style
	}

	options := []table.Option{
		table.WithTemplatesDir(args.templates),
		table.WithLogger(a.logger),
	}
	if args.escapeText {
		options = append(options, table.WithEscapedText())
	}
	assembler, err := table.New(options...)
	if err != nil {
		return err
	}

	var driver prompt.Driver
	if args.interactive {
		driver = a.newDriver()
		if err := prompt.Fill(ctx, driver, &spec, assembler.Styles().List()); err != nil {
			return err
		}
	}

	if args.output == "" {
		_, err := assembler.Render(spec, a.stdout)
		return err
	}

	if driver != nil {
		if _, err := os.Stat(args.output); err == nil {
			overwrite, err := driver.Confirm(ctx, prompt.ConfirmConfig{
				Message: fmt.Sprintf("Overwrite %s?", args.output),
			})
			if err != nil {
				return err
			}
			if !overwrite {
				return errors.New("output file exists")
			}
		}
	}

	out, err := assembler.Render(spec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.logger.Infof("Table written to %s", color.BlueString(args.output))
	return nil
}

func (a *app) runStyles() error {
	assembler, err := table.New(table.WithLogger(a.logger))
	if err != nil {
		return err
	}
	registry := assembler.Styles()
	for _, name := range registry.List() {
		style, err := registry.Get(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(a.stdout, "%-10s %s %s %s\n", name, style.Top, style.Mid, style.Bottom); err != nil {
			return err
		}
	}
	return nil
}

// formatPlaces prints a rounded number with the decimal places the rounding
// implies, so trailing zeros survive ("2.30" for three digits).
func formatPlaces(x float64, places int) string {
	if places < 0 {
		places = 0
	}
	if m := sigfig.Magnitude(x); m < -4 || m >= 16 {
		return sigfig.Canonical(x)
	}
	return strconv.FormatFloat(x, 'f', places, 64)
}
