// code-red - JavaScript AST printing tool
//
// Parses a JavaScript file and reprints it in canonical formatting,
// optionally emitting a Source Map Revision 3 document next to the
// output.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	codered "github.com/sahilmob/code-red"
	"github.com/sahilmob/code-red/ast"
	"github.com/sahilmob/code-red/internal/jsparser"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	var (
		outPath   string
		sourceMap bool
		decoded   bool
	)

	root := &cobra.Command{
		Use:     "code-red <file.js>",
		Short:   "Reprint a JavaScript file with optional source map",
		Args:    cobra.ExactArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], outPath, sourceMap, decoded)
		},
		SilenceUsage: true,
	}

	root.Flags().StringVarP(&outPath, "out", "o", "", "write output to file instead of stdout")
	root.Flags().BoolVar(&sourceMap, "source-map", false, "emit a .map file next to the output")
	root.Flags().BoolVar(&decoded, "decoded", false, "emit decoded mapping arrays instead of VLQ")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "code-red: %v\n", err)
		os.Exit(1)
	}
}

func run(path, outPath string, sourceMap, decoded bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	stmts, err := jsparser.ParseStatements(string(src))
	if err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	encode := !decoded
	opts := &codered.PrintOptions{EncodeMappings: &encode}
	if sourceMap {
		opts.SourceMapSource = path
		opts.SourceMapContent = string(src)
	}

	result, err := codered.Print(&ast.Program{Body: stmts}, opts)
	if err != nil {
		return errors.Wrapf(err, "printing %s", path)
	}

	code := result.Code
	if len(code) == 0 || code[len(code)-1] != '\n' {
		code += "\n"
	}

	if outPath == "" {
		fmt.Print(code)
	} else if err := os.WriteFile(outPath, []byte(code), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}

	if sourceMap {
		mapPath := outPath
		if mapPath == "" {
			mapPath = path
		}
		mapPath += ".map"
		doc, err := json.Marshal(result.Map)
		if err != nil {
			return errors.Wrap(err, "encoding source map")
		}
		if err := os.WriteFile(mapPath, doc, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", mapPath)
		}
	}
	return nil
}
