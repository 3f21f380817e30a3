package internals

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// PosError builds a positioned diagnostic, shared by the lexer, the parser
// and the type checker so every message carries file:row:col.
func PosError(filePath string, row, col int, msg ...interface{}) error {
	errMsg := fmt.Sprintf("\033[1;90m%s:%d:%d:\033[0m ERROR: %s", filePath, row, col, fmt.Sprint(msg...))

	return errors.New(errMsg)
}

// ErrorCollector accumulates diagnostics across a whole pass, a failing
// definition never stops the sibling definitions from being checked.
type ErrorCollector struct {
	Errors []error
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		Errors: make([]error, 0),
	}
}

func (ec *ErrorCollector) Add(err error) {
	if err != nil {
		ec.Errors = append(ec.Errors, err)
	}
}

func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.Errors) > 0
}

// Err folds the collected diagnostics into a single error, nil when clean.
func (ec *ErrorCollector) Err() error {
	var result *multierror.Error
	for _, err := range ec.Errors {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
