package bundle

import (
	"slices"

	"github.com/otaforge/bundlekit/integrity"
)

// Marker opens a module registration statement.  Everything before
// the first marker is the bundle prelude; everything after the last
// registration is the postlude.
const Marker = "__d("

// Module is one unit of code registered in a bundle: a function
// literal body, a numeric id, and the ids of the modules it depends
// on, in order.
type Module struct {
	ID           int
	Code         string
	Dependencies []int

	// Hash is derived from Code at construction, never supplied
	// independently.
	Hash string
}

func NewModule(id int, code string, deps []int) *Module {
	return &Module{
		ID:           id,
		Code:         code,
		Dependencies: slices.Clone(deps),
		Hash:         integrity.HashModule(code),
	}
}

func (m *Module) Clone() *Module {
	return &Module{
		ID:           m.ID,
		Code:         m.Code,
		Dependencies: slices.Clone(m.Dependencies),
		Hash:         m.Hash,
	}
}

// Bundle is the parsed form of a bundle: bootstrap text, modules by
// id, and trailing bootstrap text.
type Bundle struct {
	Prelude  string
	Modules  map[int]*Module
	Postlude string
}

func (b *Bundle) Clone() *Bundle {
	res := &Bundle{
		Prelude:  b.Prelude,
		Modules:  make(map[int]*Module, len(b.Modules)),
		Postlude: b.Postlude,
	}
	for id, m := range b.Modules {
		res.Modules[id] = m.Clone()
	}
	return res
}

// IDs returns the module ids in ascending order.
func (b *Bundle) IDs() []int {
	ids := make([]int, 0, len(b.Modules))
	for id := range b.Modules {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
