package semantics

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"lacs/ast"
	"lacs/internals"
	"lacs/lexer"
	"lacs/parser"
	"lacs/types"
)

func parse(t *testing.T, code string) *ast.Program {
	t.Helper()
	lex := lexer.NewLexer("", code)
	p := parser.NewParser(lex, "")
	program := p.Parse()
	require.Empty(t, p.Errors, "unexpected parse errors")
	require.Empty(t, lex.Errors, "unexpected lexical errors")
	return program
}

func check(t *testing.T, code string) ([]*Procedure, *internals.ErrorCollector) {
	t.Helper()
	program := parse(t, code)
	collector := internals.NewErrorCollector()
	checker := NewTypeChecker("", collector)
	return checker.Check(program), collector
}

func TestCanonicalRoundTrip(t *testing.T) {
	procedures, collector := check(t, `def f(x: Int): Int = { var y: Int; y = x + 1; y }`)

	require.False(t, collector.HasErrors(), "unexpected diagnostics: %v", collector.Errors)
	require.Len(t, procedures, 1)

	proc := procedures[0]
	require.Equal(t, "f", proc.Name)
	require.True(t, types.IsInt(proc.ReturnType))
	require.Len(t, proc.Parameters, 1)
	require.Equal(t, "x", proc.Parameters[0].Name)
	require.True(t, types.IsInt(proc.Parameters[0].Type))
	require.Len(t, proc.Locals, 1)
	require.Equal(t, "y", proc.Locals[0].Name)
	require.True(t, types.IsInt(proc.Locals[0].Type))
}

func TestDuplicateProcedureIsDiscarded(t *testing.T) {
	code := `def f(x: Int): Int = { x }
def f(): Int = { 2 }`

	procedures, collector := check(t, code)

	require.True(t, collector.HasErrors())
	require.Contains(t, collector.Err().Error(), "already defined")

	// the first registration stands
	require.Len(t, procedures, 1)
	require.Len(t, procedures[0].Parameters, 1)
}

func TestArithmeticRequiresInt(t *testing.T) {
	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{name: "int plus int", code: `def f(): Int = { 1 + 2 }`, ok: true},
		{name: "all operators", code: `def f(x: Int): Int = { x * 2 + 4 / 2 - 1 % 3 }`, ok: true},
		{name: "function operand plus", code: `def f(g: (Int) => Int): Int = { 1 + g }`, ok: false},
		{name: "function operand star", code: `def f(g: (Int) => Int): Int = { g * 2 }`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, collector := check(t, tt.code)
			if tt.ok {
				require.False(t, collector.HasErrors(), "unexpected diagnostics: %v", collector.Errors)
			} else {
				require.True(t, collector.HasErrors())
				require.Contains(t, collector.Err().Error(), "type mismatch")
			}
		})
	}
}

func TestIfBranchesMustAgree(t *testing.T) {
	okCode := `def max(a: Int, b: Int): Int = { if (a > b) { a } else { b } }`
	_, collector := check(t, okCode)
	require.False(t, collector.HasErrors(), "unexpected diagnostics: %v", collector.Errors)

	badCode := `def f(g: (Int) => Int, x: Int): Int = { if (x < 1) { x } else { g } }`
	_, collector = check(t, badCode)
	require.True(t, collector.HasErrors())
	require.Contains(t, collector.Err().Error(), "else branch")
}

func TestIfResultTypeIsBranchType(t *testing.T) {
	// both branches function typed, the if synthesizes that type
	code := `def pick(g: (Int) => Int, h: (Int) => Int, x: Int): Int = {
		if (x < 0) { g } else { h } (x)
	}`

	procedures, collector := check(t, code)
	require.False(t, collector.HasErrors(), "unexpected diagnostics: %v", collector.Errors)
	require.Len(t, procedures, 1)
}

func TestTestOperandsMustBeInt(t *testing.T) {
	code := `def f(g: (Int) => Int, x: Int): Int = { if (g == x) { 1 } else { 2 } }`

	_, collector := check(t, code)
	require.True(t, collector.HasErrors())
	require.Contains(t, collector.Err().Error(), "type mismatch")
}

func TestCallChecking(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{
			name: "well typed call",
			code: `def apply(g: (Int) => Int, x: Int): Int = { g(x) }`,
		},
		{
			name:     "too few arguments",
			code:     `def apply(g: (Int, Int) => Int, x: Int): Int = { g(x) }`,
			expected: "expects 2 argument(s), got 1",
		},
		{
			name:     "too many arguments",
			code:     `def apply(g: (Int) => Int, x: Int): Int = { g(x, x) }`,
			expected: "expects 1 argument(s), got 2",
		},
		{
			name:     "argument type mismatch",
			code:     `def apply(g: ((Int) => Int) => Int, x: Int): Int = { g(x) }`,
			expected: "argument 1",
		},
		{
			name:     "callee is not a function",
			code:     `def f(x: Int): Int = { x(1) }`,
			expected: "only function types can be called",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, collector := check(t, tt.code)
			if tt.expected == "" {
				require.False(t, collector.HasErrors(), "unexpected diagnostics: %v", collector.Errors)
			} else {
				require.True(t, collector.HasErrors())
				require.Contains(t, collector.Err().Error(), tt.expected)
			}
		})
	}
}

func TestCallOfDeclaredProcedure(t *testing.T) {
	code := `def inc(x: Int): Int = { x + 1 }
def f(): Int = { inc(41) }`

	procedures, collector := check(t, code)
	require.False(t, collector.HasErrors(), "unexpected diagnostics: %v", collector.Errors)
	require.Len(t, procedures, 2)
}

func TestUndeclaredVariable(t *testing.T) {
	code := `def f(): Int = { z = 1 }`

	_, collector := check(t, code)
	require.True(t, collector.HasErrors())
	require.Contains(t, collector.Err().Error(), "not found")
}

func TestAssignToProcedureRejected(t *testing.T) {
	code := `def inc(x: Int): Int = { x + 1 }
def f(): Int = { inc = 1; 2 }`

	_, collector := check(t, code)
	require.True(t, collector.HasErrors())
	require.Contains(t, collector.Err().Error(), "only variables can be assigned")
}

func TestAssignmentTypeMismatch(t *testing.T) {
	code := `def f(g: (Int) => Int): Int = { var y: Int; y = g }`

	_, collector := check(t, code)
	require.True(t, collector.HasErrors())
	require.Contains(t, collector.Err().Error(), "type mismatch")
}

func TestBodyTypeMustMatchReturnType(t *testing.T) {
	code := `def f(g: (Int) => Int): Int = { g }`

	_, collector := check(t, code)
	require.True(t, collector.HasErrors())
	require.Contains(t, collector.Err().Error(), "declared return type")
}

func TestLocalsAreScopedPerProcedure(t *testing.T) {
	// the same local name in two procedures must not clash
	code := `def f(): Int = { var y: Int; y = 1; y }
def g(): Int = { var y: Int; y = 2; y }`

	procedures, collector := check(t, code)
	require.False(t, collector.HasErrors(), "unexpected diagnostics: %v", collector.Errors)
	require.Len(t, procedures, 2)
}

func TestDuplicateDeclarationInSameScope(t *testing.T) {
	code := `def f(x: Int): Int = { var x: Int; x }`

	_, collector := check(t, code)
	require.True(t, collector.HasErrors())
	require.Contains(t, collector.Err().Error(), "already declared")
}

func TestNestedDefinitionVisibility(t *testing.T) {
	code := `def outer(): Int = {
		def inner(x: Int): Int = { x }
		inner(1)
	}`

	procedures, collector := check(t, code)
	require.False(t, collector.HasErrors(), "unexpected diagnostics: %v", collector.Errors)

	// nested procedures stay inside the enclosing body
	require.Len(t, procedures, 1)
	require.Equal(t, "outer", procedures[0].Name)

	leaked := `def outer(): Int = {
		def inner(x: Int): Int = { x }
		inner(1)
	}
def sibling(): Int = { inner(2) }`

	_, collector = check(t, leaked)
	require.True(t, collector.HasErrors())
	require.Contains(t, collector.Err().Error(), "not found")
}

func TestParameterVisibleInNestedDefinition(t *testing.T) {
	// outer scope lookup through the scope chain
	code := `def outer(x: Int): Int = {
		def inner(): Int = { x }
		inner()
	}`

	_, collector := check(t, code)
	require.False(t, collector.HasErrors(), "unexpected diagnostics: %v", collector.Errors)
}

func TestSiblingDefinitionsCheckedAfterFailure(t *testing.T) {
	code := `def bad(): Int = { z }
def good(): Int = { 1 }`

	procedures, collector := check(t, code)
	require.True(t, collector.HasErrors())
	require.Len(t, procedures, 1)
	require.Equal(t, "good", procedures[0].Name)
}

func TestRecheckIsIdempotent(t *testing.T) {
	code := `def f(x: Int): Int = { var y: Int; y = x + 1; y }
def g(h: (Int) => Int): Int = { h(2) }`

	program := parse(t, code)

	first := NewTypeChecker("", internals.NewErrorCollector()).Check(program)
	second := NewTypeChecker("", internals.NewErrorCollector()).Check(program)

	require.Len(t, first, 2)
	if diff := deep.Equal(first, second); diff != nil {
		t.Error(diff)
	}
}
