package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/term"

	verilog "github.com/RazKarapetyan/Parser-Verilog"
	"github.com/RazKarapetyan/Parser-Verilog/config"
	"github.com/RazKarapetyan/Parser-Verilog/diag"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.v> [more.v ...]",
	Short: "Parse one or more structural Verilog files and print their records",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("config", "", "path to a TOML config file (see config.Options)")
	parseCmd.Flags().String("format", "text", "output format (text|json|msgpack)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "json" && format != "msgpack" {
		return fmt.Errorf("unknown --format %q, want text|json|msgpack", format)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	opts := config.Default()
	if configPath != "" {
		opts, err = config.LoadFile(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := shouldColorize(colorMode)

	emitters := make([]*collectingEmitter, len(args))
	silent := format != "text"
	newEmitter := func(i int, path string) verilog.Emitter {
		e := newCollectingEmitter(func(line string) {
			if !silent {
				fmt.Println(line)
			}
		})
		emitters[i] = e
		return e
	}

	results, err := verilog.ReadFiles(context.Background(), args, newEmitter, opts)
	if err != nil {
		return fmt.Errorf("reading files: %w", err)
	}

	anyErrors := false
	for _, res := range results {
		if res.Code != 0 {
			anyErrors = true
		}
		printDiagnostics(res.Diag, useColor)
	}

	if format != "text" {
		if err := printEvents(emitters, format); err != nil {
			return err
		}
	}

	if anyErrors {
		return fmt.Errorf("parsing completed with errors")
	}
	return nil
}

func printEvents(emitters []*collectingEmitter, format string) error {
	var all []event
	for _, e := range emitters {
		if e == nil {
			continue
		}
		all = append(all, e.events...)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	case "msgpack":
		enc := msgpack.NewEncoder(os.Stdout)
		return enc.Encode(all)
	}
	return nil
}

func printDiagnostics(bag *diag.Bag, useColor bool) {
	if bag == nil || bag.Count() == 0 {
		return
	}
	bag.Sort()
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow)
	for _, d := range bag.Items() {
		line := fmt.Sprintf("%s:%d:%d: %s: %s", d.Source, d.Line, d.Col, d.Class, d.Message)
		if !useColor {
			fmt.Fprintln(os.Stderr, line)
			continue
		}
		if d.Severity == diag.SevError {
			errColor.Fprintln(os.Stderr, line)
		} else {
			warnColor.Fprintln(os.Stderr, line)
		}
	}
}

func shouldColorize(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
