// Command codewc renders a module description to source code.
//
// Usage:
//
//	codewc [options] <input.yaml|input.json>
//
// Examples:
//
//	codewc -target rust address.yaml           # Render to stdout
//	codewc -target thrift -o gen address.yaml  # One file per module under gen/
//	codewc -list                               # Print available targets
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/codewriter"
	"github.com/gogpu/codewriter/internal/manifest"
	"github.com/gogpu/codewriter/writer"
)

var (
	target  = flag.String("target", "rust", "output language ("+strings.Join(codewriter.TargetNames(), ", ")+")")
	output  = flag.String("o", "", "output directory for multi-file output (default: single stream to stdout)")
	verbose = flag.Bool("v", false, "print each written file")
	list    = flag.Bool("list", false, "list available targets")
	version = flag.Bool("version", false, "print version")
)

const codewcVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("codewc version %s\n", codewcVersion)
		return
	}

	if *list {
		for _, t := range codewriter.Targets() {
			fmt.Printf("%-8s %s\n", t.Name, t.Extension)
		}
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	module, err := manifest.Load(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", inputPath, err)
		os.Exit(1)
	}

	t, err := codewriter.Lookup(*target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *output == "" {
		source, err := codewriter.Compile(module, t.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generation error: %v\n", err)
			os.Exit(1)
		}
		if _, err := io.WriteString(os.Stdout, source); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	files := 0
	tree := t.Tree(*output)
	tree.Locate = writer.KeepInline(module, tree.Locate)
	tree.Create = func(location string) (io.WriteCloser, error) {
		files++
		if *verbose {
			fmt.Fprintf(os.Stderr, "writing %s\n", location)
		}
		return writer.CreateFile(location)
	}
	if err := tree.Render(module); err != nil {
		fmt.Fprintf(os.Stderr, "Generation error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s to %s (%d files)\n", inputPath, *output, files)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: codewc [options] <input.yaml|input.json>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  codewc -target rust address.yaml          Render to stdout\n")
	fmt.Fprintf(os.Stderr, "  codewc -target thrift -o gen address.yaml Write files under gen/\n")
	fmt.Fprintf(os.Stderr, "  codewc -list                              List targets\n")
}
