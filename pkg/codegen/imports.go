package codegen

import (
	"slices"

	"github.com/matzehuels/pagesmith/pkg/layout"
)

// baseline is declared by every generated file.
var baseline = Declaration{Module: "react", Symbols: []string{"useState", "useEffect"}}

// importSet accumulates symbols per module in first-discovery order.
type importSet struct {
	decls []Declaration
	index map[string]int
}

func newImportSet() *importSet {
	s := &importSet{index: map[string]int{}}
	for _, sym := range baseline.Symbols {
		s.add(baseline.Module, sym)
	}
	return s
}

func (s *importSet) add(module, symbol string) {
	i, ok := s.index[module]
	if !ok {
		i = len(s.decls)
		s.index[module] = i
		s.decls = append(s.decls, Declaration{Module: module})
	}
	if !slices.Contains(s.decls[i].Symbols, symbol) {
		s.decls[i].Symbols = append(s.decls[i].Symbols, symbol)
	}
}

func (g *generator) imports(l layout.Layout) []Declaration {
	s := newImportSet()
	walkComponents(l.Columns, func(c layout.Component) {
		def, ok := g.lookup(c.Type)
		if !ok {
			return
		}
		for _, imp := range def.Imports {
			s.add(imp.Module, imp.Symbol)
		}
	})
	return s.decls
}
