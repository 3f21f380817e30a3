package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructuralEquality(t *testing.T) {
	intToInt := &FuncType{Params: []Type{Int}, Return: Int}

	tests := []struct {
		name  string
		a, b  Type
		equal bool
	}{
		{name: "int vs int", a: Int, b: IntType{}, equal: true},
		{name: "int vs function", a: Int, b: intToInt, equal: false},
		{
			name:  "same shape, distinct values",
			a:     intToInt,
			b:     &FuncType{Params: []Type{Int}, Return: Int},
			equal: true,
		},
		{
			name:  "arity differs",
			a:     intToInt,
			b:     &FuncType{Params: []Type{Int, Int}, Return: Int},
			equal: false,
		},
		{
			name:  "parameter type differs",
			a:     &FuncType{Params: []Type{intToInt}, Return: Int},
			b:     &FuncType{Params: []Type{Int}, Return: Int},
			equal: false,
		},
		{
			name:  "return type differs",
			a:     &FuncType{Params: []Type{Int}, Return: intToInt},
			b:     &FuncType{Params: []Type{Int}, Return: Int},
			equal: false,
		},
		{
			name:  "nested function types",
			a:     &FuncType{Params: []Type{intToInt}, Return: intToInt},
			b:     &FuncType{Params: []Type{&FuncType{Params: []Type{Int}, Return: Int}}, Return: &FuncType{Params: []Type{Int}, Return: Int}},
			equal: true,
		},
		{name: "nil operand", a: Int, b: nil, equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.equal, Equal(tt.a, tt.b))
			require.Equal(t, tt.equal, Equal(tt.b, tt.a))
		})
	}
}

func TestTypeSyntax(t *testing.T) {
	require.Equal(t, "Int", Int.String())

	nullary := &FuncType{Return: Int}
	require.Equal(t, "() => Int", nullary.String())

	binary := &FuncType{Params: []Type{Int, Int}, Return: Int}
	require.Equal(t, "(Int, Int) => Int", binary.String())

	higher := &FuncType{Params: []Type{binary}, Return: Int}
	require.Equal(t, "((Int, Int) => Int) => Int", higher.String())
}
