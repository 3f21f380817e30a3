package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"lacs/internals"
	"lacs/lexer"
	"lacs/parser"
	"lacs/semantics"
)

var CheckCmd = &cobra.Command{
	Use:   "check <source.lacs>",
	Short: "Parse and type-check a Lacs source file",
	Args:  cobra.ExactArgs(1),
	RunE:  checkRun,
}

func checkRun(cmd *cobra.Command, args []string) error {
	target := args[0]

	byteContent, err := os.ReadFile(target)
	if err != nil {
		return err
	}

	procedures, err := Check(target, string(byteContent))
	if err != nil {
		return err
	}

	for _, proc := range procedures {
		fmt.Println(proc)
	}
	return nil
}

// Check runs the whole front end over one source text and returns the
// procedure records, or the collected diagnostics as a single error.
func Check(filePath, content string) ([]*semantics.Procedure, error) {
	collector := internals.NewErrorCollector()

	lex := lexer.NewLexer(filePath, content)
	p := parser.NewParser(lex, filePath)
	program := p.Parse()

	// lexical diagnostics are recovered, they never stop the scan
	for _, lexErr := range lex.Errors {
		collector.Add(lexErr)
	}
	for _, parseErr := range p.Errors {
		collector.Add(parseErr)
	}

	log.Debug().
		Str("file", filePath).
		Int("definitions", len(program.Definitions)).
		Int("diagnostics", len(collector.Errors)).
		Msg("parsed")

	checker := semantics.NewTypeChecker(filePath, collector)
	procedures := checker.Check(program)

	log.Debug().
		Str("file", filePath).
		Int("procedures", len(procedures)).
		Msg("type checked")

	if collector.HasErrors() {
		return nil, collector.Err()
	}
	return procedures, nil
}
