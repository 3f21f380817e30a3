package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckWellTypedSource(t *testing.T) {
	code := `// increment and apply
def inc(x: Int): Int = { x + 1 }
def twice(g: (Int) => Int, x: Int): Int = { g(g(x)) }`

	procedures, err := Check("main.lacs", code)
	require.NoError(t, err)
	require.Len(t, procedures, 2)
	require.Equal(t, "inc", procedures[0].Name)
	require.Equal(t, "twice", procedures[1].Name)
	require.Equal(t, "(Int) => Int", procedures[0].Type().String())
}

func TestCheckCollectsAllDiagnostics(t *testing.T) {
	code := `def bad(): Int = { z }
def worse(g: (Int) => Int): Int = { 1 + g }`

	procedures, err := Check("main.lacs", code)
	require.Error(t, err)
	require.Nil(t, procedures)
	require.Contains(t, err.Error(), "not found")
	require.Contains(t, err.Error(), "type mismatch")
}

func TestCheckReportsLexicalRecovery(t *testing.T) {
	// the scan recovers past the bad character, the rest still parses
	code := `def f(): Int = { 1 @ + 2 }`

	_, err := Check("main.lacs", code)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid token: @")
}
