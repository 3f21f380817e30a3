package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"lacs/internals"
	"lacs/lexer"
	"lacs/parser"
	"lacs/semantics"
)

const prompt = ">>> "

// Start reads one def per line, runs the front end over it, and prints
// either the synthesized procedures or the diagnostics.
func Start(out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			// io.EOF on ctrl-d, liner.ErrPromptAborted on ctrl-c
			if err == io.EOF || err == liner.ErrPromptAborted {
				return nil
			}
			return err
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		collector := internals.NewErrorCollector()

		lex := lexer.NewLexer("repl", input)
		p := parser.NewParser(lex, "repl")
		program := p.Parse()

		for _, lexErr := range lex.Errors {
			collector.Add(lexErr)
		}
		for _, parseErr := range p.Errors {
			collector.Add(parseErr)
		}

		checker := semantics.NewTypeChecker("repl", collector)
		procedures := checker.Check(program)

		if collector.HasErrors() {
			for _, diag := range collector.Errors {
				fmt.Fprintln(out, diag)
			}
			continue
		}

		for _, proc := range procedures {
			fmt.Fprintln(out, proc)
		}
	}
}
