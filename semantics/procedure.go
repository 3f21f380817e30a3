package semantics

import (
	"bytes"
	"fmt"

	"lacs/types"
)

// Variable is a declared name : type pair, a parameter or a var local.
type Variable struct {
	Name string
	Type types.Type
}

func (v *Variable) String() string {
	return v.Name + ": " + v.Type.String()
}

// Procedure is the record produced by a successfully type checked def.
type Procedure struct {
	Name       string
	ReturnType types.Type
	Parameters []*Variable
	Locals     []*Variable
}

// Type is the callable type of the procedure, consumed by call site checks.
func (p *Procedure) Type() *types.FuncType {
	params := make([]types.Type, 0, len(p.Parameters))
	for _, param := range p.Parameters {
		params = append(params, param.Type)
	}
	return &types.FuncType{Params: params, Return: p.ReturnType}
}

func (p *Procedure) String() string {
	var out bytes.Buffer
	out.WriteString("Procedure\n")
	out.WriteString(fmt.Sprintf("  * name: %v\n", p.Name))
	out.WriteString(fmt.Sprintf("  * return type: %v\n", p.ReturnType))
	out.WriteString("  * parameters: [")
	for idx, param := range p.Parameters {
		out.WriteString(param.String())
		if idx+1 <= len(p.Parameters)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString("]\n  * local variables: [")
	for idx, local := range p.Locals {
		out.WriteString(local.String())
		if idx+1 <= len(p.Locals)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString("]\n")
	return out.String()
}
