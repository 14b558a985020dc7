package main

import (
	"fmt"
	"os"

	"github.com/chrisuehlinger/domtree/dom"
	"github.com/chrisuehlinger/domtree/js"
	"github.com/dop251/goja"
	cli "github.com/urfave/cli/v2"
)

var runCmd = &cli.Command{
	Name:      "run",
	Usage:     "run scripts against a parsed HTML document",
	ArgsUsage: "<file.html>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "script",
			Usage:   "path to a JavaScript file to run after the inline scripts",
			EnvVars: []string{"DOMTREE_SCRIPT"},
		},
		&cli.BoolFlag{
			Name:    "inline",
			Usage:   "execute the document's own script elements",
			Value:   true,
			EnvVars: []string{"DOMTREE_INLINE"},
		},
		&cli.BoolFlag{
			Name:    "check",
			Usage:   "verify tree consistency after the script finishes",
			Value:   true,
			EnvVars: []string{"DOMTREE_CHECK"},
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := configLogger(cctx, cctx.App.ErrWriter)
		if cctx.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one document path")
		}
		doc, err := loadDocument(logger, cctx.Args().First())
		if err != nil {
			return err
		}

		r := js.NewRuntimeWithOutput(cctx.App.Writer)
		r.SetOnError(func(err error) {
			logger.Warn("script error", "err", err)
		})
		se := js.NewScriptExecutor(r)
		se.SetupDocument(doc)

		if cctx.Bool("inline") {
			errs := se.ExecuteScripts(doc)
			logger.Debug("executed inline scripts", "errors", len(errs))
		}

		var result goja.Value
		if scriptPath := cctx.String("script"); scriptPath != "" {
			code, err := os.ReadFile(scriptPath)
			if err != nil {
				return fmt.Errorf("reading script: %w", err)
			}
			result, err = r.ExecuteScript(string(code), scriptPath)
			if err != nil {
				return fmt.Errorf("running %s: %w", scriptPath, err)
			}
		}
		if cctx.Bool("check") {
			if err := dom.CheckTree(doc); err != nil {
				return fmt.Errorf("script left an inconsistent tree: %w", err)
			}
		}
		if result != nil {
			fmt.Fprintln(cctx.App.Writer, js.FormatValue(result))
		}
		return nil
	},
}
