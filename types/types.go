package types

import (
	"bytes"
)

// Type is the type universe of the language: the primitive integer type,
// or a function type (T1, ..., Tn) => T.
type Type interface {
	String() string
	typ()
}

type IntType struct{}

func (IntType) typ()           {}
func (IntType) String() string { return "Int" }

// Int is the only primitive type.
var Int = IntType{}

type FuncType struct {
	Params []Type
	Return Type
}

func (*FuncType) typ() {}
func (f *FuncType) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	for idx, param := range f.Params {
		out.WriteString(param.String())
		if idx+1 <= len(f.Params)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(") => ")
	out.WriteString(f.Return.String())
	return out.String()
}

// Equal checks structural equality, two function types are equal iff they
// have identical arity, parameter types and return type, in order.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}

	switch at := a.(type) {
	case IntType:
		_, ok := b.(IntType)
		return ok
	case *FuncType:
		bt, ok := b.(*FuncType)
		if !ok {
			return false
		}
		if len(at.Params) != len(bt.Params) {
			return false
		}
		for idx := range at.Params {
			if !Equal(at.Params[idx], bt.Params[idx]) {
				return false
			}
		}
		return Equal(at.Return, bt.Return)
	}

	return false
}

// IsInt reports whether t is the primitive integer type.
func IsInt(t Type) bool {
	_, ok := t.(IntType)
	return ok
}
