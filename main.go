package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/yfyang86/form-repl/pkg/evaluate"
	"github.com/yfyang86/form-repl/pkg/parser"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-hqv]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  -h  show this help")
	fmt.Fprintln(os.Stderr, "  -q  skip the startup banner")
	fmt.Fprintln(os.Stderr, "  -v  trace statements and rule applications to stderr")
}

func printHelp() {
	fmt.Println()
	fmt.Println("FORM REPL Help")
	fmt.Println("==============")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  quit, exit       - Exit the REPL")
	fmt.Println("  help             - Show this help message")
	fmt.Println("  clear            - Clear all definitions")
	fmt.Println()
	fmt.Println("Syntax:")
	fmt.Println("  Symbols x, y, z  - Declare symbols")
	fmt.Println("  Expression e = (x + y)^2  - Define an expression")
	fmt.Println("  Local a = x + 1  - Define a local variable")
	fmt.Println("  id x = 1         - Add substitution rule")
	fmt.Println("  Print e          - Print an expression")
	fmt.Println("  .sort            - Apply all rules and simplify")
	fmt.Println()
}

func main() {
	opts, _, err := getopt.Getopts(os.Args, "hqv")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}

	var quiet bool
	var trace io.Writer
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			usage()
			return
		case 'q':
			quiet = true
		case 'v':
			trace = os.Stderr
		}
	}

	if !quiet {
		fmt.Println("FORM REPL v0.1.0")
		fmt.Println("A symbolic manipulation system")
		fmt.Println("Type 'quit' or 'exit' to exit, 'help' for help")
		fmt.Println()
	}

	ses := evaluate.NewSession(trace)
	errorf := color.New(color.FgRed).FprintfFunc()

	lines := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("FORM> ")
		if !lines.Scan() {
			fmt.Println("Goodbye!")
			break
		}

		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return
		case "help":
			printHelp()
			continue
		case "clear":
			ses = evaluate.NewSession(trace)
			fmt.Println("Environment cleared")
			continue
		}

		p := parser.NewParser(strings.NewReader(line), "")
		stmt, err := p.Parse()
		if err == io.EOF {
			continue
		} else if err != nil {
			errorf(os.Stderr, "Error: %s\n", err)
			continue
		}

		result, err := ses.Evaluate(stmt)
		if err != nil {
			errorf(os.Stderr, "Error: %s\n", err)
			continue
		}
		if result != "" {
			fmt.Printf("  %s\n", result)
		}
	}
}
