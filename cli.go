package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

func showUsage() {
	fmt.Fprintf(os.Stderr, `minicc - a four-phase compiler front end for a mini imperative language

Usage:
    minicc <command> [arguments]

Commands:
    compile [files...]  Compile files (or stdin) and print the full report
    eval <code>         Compile inline source code
    tokens <file>       Print the token report only
    check <file>        Parse and validate a file without generating code
    help                Show this help message

Examples:
    minicc compile program.mini
    minicc compile a.mini b.mini c.mini
    minicc eval 'int a; a = 5; print a;'
    minicc check program.mini

Use "minicc <command> -h" for more information about a command.
`)
}

func compileCommand(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minicc compile [files...]\n")
		fmt.Fprintf(os.Stderr, "Compile source files and print the token, symbol table, and TAC report.\n")
		fmt.Fprintf(os.Stderr, "With no arguments, one program is read from stdin.\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		if err := WriteReport(os.Stdout, string(src)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	files := fs.Args()

	// Compilations share no state, so independent files can run
	// concurrently. Reports are buffered and written in argument order.
	reports := make([]bytes.Buffer, len(files))
	var g errgroup.Group
	for i, filename := range files {
		g.Go(func() error {
			src, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("error reading file %s: %v", filename, err)
			}
			return WriteReport(&reports[i], string(src))
		})
	}
	err := g.Wait()

	for i, filename := range files {
		if len(files) > 1 {
			fmt.Printf("%s:\n", filename)
		}
		os.Stdout.Write(reports[i].Bytes())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func evalCommand(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minicc eval <code>\n")
		fmt.Fprintf(os.Stderr, "Compile inline source code and print the full report.\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one code argument\n")
		fs.Usage()
		os.Exit(1)
	}

	if err := WriteReport(os.Stdout, fs.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tokensCommand(args []string) {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minicc tokens <file>\n")
		fmt.Fprintf(os.Stderr, "Lex a source file and print the token report.\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filename := fs.Arg(0)
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
		os.Exit(1)
	}

	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(FormatTokens(tokens))
}

func checkCommand(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Show the parsed AST as an s-expression")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minicc check [-v] <file>\n")
		fmt.Fprintf(os.Stderr, "Parse and validate a source file without generating code.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filename := fs.Arg(0)
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
		os.Exit(1)
	}

	prog, err := parseSource(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := Analyze(prog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s: no errors found\n", filename)

	if *verbose {
		fmt.Printf("AST: %s\n", ToSExpr(prog))
	}
}

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "compile":
		compileCommand(args)
	case "eval":
		evalCommand(args)
	case "tokens":
		tokensCommand(args)
	case "check":
		checkCommand(args)
	case "help", "-h", "--help":
		showUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		showUsage()
		os.Exit(1)
	}
}
