package semantics

import (
	"fmt"

	"lacs/ast"
	"lacs/internals"
	"lacs/lexer"
	"lacs/types"
)

// TypeChecker computes one synthesized type per production, bottom up. A
// violation halts the enclosing definition, sibling definitions are still
// checked.
type TypeChecker struct {
	FilePath  string
	symbols   *symbolResolver
	collector *internals.ErrorCollector
}

func NewTypeChecker(filePath string, errCollector *internals.ErrorCollector) *TypeChecker {
	return &TypeChecker{
		FilePath:  filePath,
		symbols:   NewSymbolResolver(),
		collector: errCollector,
	}
}

func (c *TypeChecker) error(tok lexer.Token, msg ...interface{}) error {
	return internals.PosError(c.FilePath, tok.Row, tok.Col, msg...)
}

// Check walks every top level definition and returns the Procedure records
// of the ones that type check, in source order.
func (c *TypeChecker) Check(program *ast.Program) []*Procedure {
	procedures := make([]*Procedure, 0, len(program.Definitions))

	for _, def := range program.Definitions {
		proc, err := c.checkDefinition(def)
		if err != nil {
			c.collector.Add(err)
			continue
		}
		procedures = append(procedures, proc)
	}

	return procedures
}

// checkDefinition checks a single def: parameters and locals populate a
// fresh scope, nested definitions are checked before the statement list
// and stay visible only within this body, and the body type must equal
// the annotated return type. On success the procedure is registered in
// the enclosing scope, a duplicate name keeps the first registration.
func (c *TypeChecker) checkDefinition(def *ast.Definition) (*Procedure, error) {
	returnType := c.typeOf(def.ReturnType)

	proc := &Procedure{
		Name:       def.Name.Value,
		ReturnType: returnType,
	}

	scope := c.symbols.EnterScope()

	for _, param := range def.Params {
		variable, err := c.checkVarDecl(param)
		if err != nil {
			c.symbols.ExitScope(scope)
			return nil, err
		}
		proc.Parameters = append(proc.Parameters, variable)
	}

	for _, local := range def.Locals {
		variable, err := c.checkVarDecl(local)
		if err != nil {
			c.symbols.ExitScope(scope)
			return nil, err
		}
		proc.Locals = append(proc.Locals, variable)
	}

	for _, nested := range def.Nested {
		if _, err := c.checkDefinition(nested); err != nil {
			c.symbols.ExitScope(scope)
			return nil, err
		}
	}

	bodyType, err := c.checkStmts(def.Body)
	c.symbols.ExitScope(scope)
	if err != nil {
		return nil, err
	}

	if !types.Equal(bodyType, returnType) {
		return nil, c.error(def.Name.Token,
			fmt.Sprintf("type mismatch in def (%v), the body is of type %v, but the declared return type is %v", proc.Name, bodyType, returnType))
	}

	ok := c.symbols.Define(proc.Name, &SymbolInfo{
		Name: proc.Name,
		Kind: SymbolProcedure,
		Type: proc.Type(),
	})
	if !ok {
		return nil, c.error(def.Name.Token,
			fmt.Sprintf("procedure (%v) is already defined, the duplicate is discarded", proc.Name))
	}

	return proc, nil
}

// checkVarDecl registers a variable in the current scope and returns it.
func (c *TypeChecker) checkVarDecl(decl *ast.VarDecl) (*Variable, error) {
	variable := &Variable{
		Name: decl.Name.Value,
		Type: c.typeOf(decl.Type),
	}

	ok := c.symbols.Define(variable.Name, &SymbolInfo{
		Name: variable.Name,
		Kind: SymbolVariable,
		Type: variable.Type,
	})
	if !ok {
		return nil, c.error(decl.Name.Token,
			fmt.Sprintf("(%v) is already declared in this scope", variable.Name))
	}

	return variable, nil
}

// typeOf maps a type annotation to its type. A function type keeps its
// full parameter type list.
func (c *TypeChecker) typeOf(node ast.TypeNode) types.Type {
	switch tn := node.(type) {
	case *ast.IntTypeNode:
		return types.Int
	case *ast.FuncTypeNode:
		ft := &types.FuncType{Return: c.typeOf(tn.Return)}
		for _, param := range tn.Params {
			ft.Params = append(ft.Params, c.typeOf(param))
		}
		return ft
	}
	return nil
}

// checkStmts types every statement and synthesizes the type of the last
// one, the earlier types are checked then discarded.
func (c *TypeChecker) checkStmts(block *ast.BlockStatement) (types.Type, error) {
	var last types.Type

	for _, stmt := range block.Statements {
		stmtType, err := c.checkStatement(stmt)
		if err != nil {
			return nil, err
		}
		last = stmtType
	}

	return last, nil
}

func (c *TypeChecker) checkStatement(stmt ast.Statement) (types.Type, error) {
	switch st := stmt.(type) {
	case *ast.AssignStatement:
		return c.checkAssign(st)
	case *ast.ExpressionStatement:
		return c.checkExpression(st.Expression)
	}
	return nil, c.error(stmt.GetToken(), "unsupported statement (", stmt.String(), ")")
}

// checkAssign requires the target to be a declared variable, not a
// procedure, with the same type as the assigned expression.
func (c *TypeChecker) checkAssign(stmt *ast.AssignStatement) (types.Type, error) {
	valueType, err := c.checkExpression(stmt.Value)
	if err != nil {
		return nil, err
	}

	sym, ok := c.symbols.Resolve(stmt.Name.Value)
	if !ok {
		return nil, c.error(stmt.Name.Token,
			fmt.Sprintf("variable (%v) not found, it needs to be declared before it gets assigned", stmt.Name.Value))
	}

	if sym.Kind != SymbolVariable {
		return nil, c.error(stmt.Name.Token,
			fmt.Sprintf("(%v) denotes a procedure, only variables can be assigned", stmt.Name.Value))
	}

	if !types.Equal(sym.Type, valueType) {
		return nil, c.error(stmt.Name.Token,
			fmt.Sprintf("type mismatch, variable (%v) is of type %v, but the expression is of type %v", stmt.Name.Value, sym.Type, valueType))
	}

	return valueType, nil
}

func (c *TypeChecker) checkExpression(expr ast.Expression) (types.Type, error) {
	switch ex := expr.(type) {
	case *ast.Identifier:
		return c.checkIdentifier(ex)
	case *ast.IntegerLiteral:
		return types.Int, nil
	case *ast.BinaryExpression:
		return c.checkBinaryExpression(ex)
	case *ast.IfExpression:
		return c.checkIfExpression(ex)
	case *ast.CallExpression:
		return c.checkCallExpression(ex)
	}
	return nil, c.error(expr.GetToken(), "unsupported expression (", expr.String(), ")")
}

func (c *TypeChecker) checkIdentifier(ident *ast.Identifier) (types.Type, error) {
	sym, ok := c.symbols.Resolve(ident.Value)
	if !ok {
		return nil, c.error(ident.Token,
			fmt.Sprintf("(%v) not found, it needs to be declared before it gets used", ident.Value))
	}
	return sym.Type, nil
}

// checkBinaryExpression covers + - * / %, both operands must be Int and
// the result is Int.
func (c *TypeChecker) checkBinaryExpression(expr *ast.BinaryExpression) (types.Type, error) {
	leftType, err := c.checkExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	if !types.IsInt(leftType) {
		return nil, c.error(expr.Left.GetToken(),
			fmt.Sprintf("type mismatch, expected Int, got %v as left operand of (%v)", leftType, expr.Operator))
	}

	rightType, err := c.checkExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	if !types.IsInt(rightType) {
		return nil, c.error(expr.Right.GetToken(),
			fmt.Sprintf("type mismatch, expected Int, got %v as right operand of (%v)", rightType, expr.Operator))
	}

	return types.Int, nil
}

// checkTest requires both comparison operands to be Int, the test gates an
// if and synthesizes no type of its own.
func (c *TypeChecker) checkTest(test *ast.TestExpression) error {
	leftType, err := c.checkExpression(test.Left)
	if err != nil {
		return err
	}
	if !types.IsInt(leftType) {
		return c.error(test.Left.GetToken(),
			fmt.Sprintf("type mismatch, expected Int, got %v as left operand of (%v)", leftType, test.Operator))
	}

	rightType, err := c.checkExpression(test.Right)
	if err != nil {
		return err
	}
	if !types.IsInt(rightType) {
		return c.error(test.Right.GetToken(),
			fmt.Sprintf("type mismatch, expected Int, got %v as right operand of (%v)", rightType, test.Operator))
	}

	return nil
}

// checkIfExpression requires both branches to synthesize the same type,
// which becomes the type of the whole if.
func (c *TypeChecker) checkIfExpression(expr *ast.IfExpression) (types.Type, error) {
	if err := c.checkTest(expr.Condition); err != nil {
		return nil, err
	}

	consequenceType, err := c.checkStmts(expr.Consequence)
	if err != nil {
		return nil, err
	}

	alternativeType, err := c.checkStmts(expr.Alternative)
	if err != nil {
		return nil, err
	}

	if !types.Equal(consequenceType, alternativeType) {
		return nil, c.error(expr.Token,
			fmt.Sprintf("type mismatch, the if branch is of type %v, but the else branch is of type %v", consequenceType, alternativeType))
	}

	return consequenceType, nil
}

// checkCallExpression requires the callee to have a function type whose
// parameter types match the argument types pairwise, in order. The call
// synthesizes the return type.
func (c *TypeChecker) checkCallExpression(expr *ast.CallExpression) (types.Type, error) {
	calleeType, err := c.checkExpression(expr.Callee)
	if err != nil {
		return nil, err
	}

	funcType, ok := calleeType.(*types.FuncType)
	if !ok {
		return nil, c.error(expr.Callee.GetToken(),
			fmt.Sprintf("(%v) is of type %v, only function types can be called", expr.Callee.String(), calleeType))
	}

	if len(expr.Args) != len(funcType.Params) {
		return nil, c.error(expr.Token,
			fmt.Sprintf("call to (%v) expects %d argument(s), got %d", expr.Callee.String(), len(funcType.Params), len(expr.Args)))
	}

	for idx, arg := range expr.Args {
		argType, err := c.checkExpression(arg)
		if err != nil {
			return nil, err
		}
		if !types.Equal(argType, funcType.Params[idx]) {
			return nil, c.error(arg.GetToken(),
				fmt.Sprintf("type mismatch, argument %d of (%v) is of type %v, expected %v", idx+1, expr.Callee.String(), argType, funcType.Params[idx]))
		}
	}

	return funcType.Return, nil
}
