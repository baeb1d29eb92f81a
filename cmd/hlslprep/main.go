// Command hlslprep translates WGSL shaders to HLSL source for offline
// compilation into DXBC bytecode.
//
// Usage:
//
//	hlslprep [options] <input.wgsl>
//
// Examples:
//
//	hlslprep shader.wgsl                 # Translate to stdout
//	hlslprep -o shader.hlsl shader.wgsl  # Translate to file
//	hlslprep -entries shader.wgsl        # Print entry point mapping
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/hlsl"
)

var (
	output  = flag.String("o", "", "output file (default: stdout)")
	entries = flag.Bool("entries", false, "print entry point name mapping")
	version = flag.Bool("version", false, "print version")
)

const hlslprepVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("hlslprep version %s\n", hlslprepVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	ast, err := naga.Parse(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}

	module, err := naga.LowerWithSource(ast, string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lowering error: %v\n", err)
		os.Exit(1)
	}

	code, info, err := hlsl.Compile(module, hlsl.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Translation error: %v\n", err)
		os.Exit(1)
	}

	if *entries {
		for orig, name := range info.EntryPointNames {
			fmt.Fprintf(os.Stderr, "entry point %q -> %q\n", orig, name)
		}
		fmt.Fprintf(os.Stderr, "required shader model: %v\n", info.RequiredShaderModel)
	}

	if *output != "" {
		err = os.WriteFile(*output, []byte(code), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully translated %s to %s (%d bytes)\n", inputPath, *output, len(code))
	} else {
		_, err = os.Stdout.WriteString(code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hlslprep [options] <input.wgsl>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  hlslprep shader.wgsl                Translate to stdout\n")
	fmt.Fprintf(os.Stderr, "  hlslprep -o shader.hlsl shader.wgsl Translate to file\n")
	fmt.Fprintf(os.Stderr, "  hlslprep -entries shader.wgsl       Print entry point mapping\n")
}
