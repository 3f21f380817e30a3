package semantics

import (
	"lacs/types"
)

type SymbolKind = string

const (
	SymbolVariable  SymbolKind = "variable"
	SymbolProcedure SymbolKind = "procedure"
)

type SymbolInfo struct {
	Name  string
	Kind  SymbolKind
	Type  types.Type
	Depth int
}

type symbolTable struct {
	Parent *symbolTable          // for nested scopes
	Store  map[string]SymbolInfo // current scope's entries
	Depth  int
}

func NewSymbolTable() *symbolTable {
	return &symbolTable{
		Store: make(map[string]SymbolInfo),
	}
}

type symbolResolver struct {
	current *symbolTable
}

func NewSymbolResolver() *symbolResolver {
	return &symbolResolver{
		current: NewSymbolTable(),
	}
}

// Define adds a symbol to the current scope only. It reports false when the
// name is already taken at this level, the first declaration stands.
func (s *symbolResolver) Define(name string, sym *SymbolInfo) bool {
	if _, ok := s.current.Store[name]; ok {
		return false
	}
	sym.Depth = s.current.Depth
	s.current.Store[name] = *sym
	return true
}

// Resolve walks the scope chain outwards, innermost declaration wins.
func (s *symbolResolver) Resolve(name string) (*SymbolInfo, bool) {
	scope := s.current
	for scope != nil {
		if sym, ok := scope.Store[name]; ok {
			return &sym, true
		}
		scope = scope.Parent
	}
	return nil, false
}

func (s *symbolResolver) EnterScope() *symbolTable {
	newScope := NewSymbolTable()
	newScope.Parent = s.current
	newScope.Depth = s.current.Depth + 1
	s.current = newScope
	return newScope
}

func (s *symbolResolver) ExitScope(curr *symbolTable) *symbolTable {
	if curr.Parent != nil {
		s.current = curr.Parent
	}
	return s.current
}
