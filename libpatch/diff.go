package libpatch

import (
	"slices"

	"github.com/otaforge/bundlekit/bundle"
	"github.com/otaforge/bundlekit/debug"
)

// Diff produces the minimal patch transforming from into to.
// Operations are emitted in ascending id order, deletions first, so
// the result is deterministic for a given pair of bundles.
func Diff(from, to *bundle.Bundle) *Patch {
	p := &Patch{}
	if from.Prelude != to.Prelude {
		prelude := to.Prelude
		p.Prelude = &prelude
	}
	if from.Postlude != to.Postlude {
		postlude := to.Postlude
		p.Postlude = &postlude
	}
	for _, id := range from.IDs() {
		if _, present := to.Modules[id]; !present {
			p.Ops = append(p.Ops, &Delete{ID: id})
		}
	}
	for _, id := range to.IDs() {
		tm := to.Modules[id]
		fm, present := from.Modules[id]
		if !present {
			p.Ops = append(p.Ops, &Add{
				ID:           id,
				Code:         tm.Code,
				Dependencies: slices.Clone(tm.Dependencies),
			})
			continue
		}
		if moduleEqual(fm, tm) {
			continue
		}
		p.Ops = append(p.Ops, &Replace{
			ID:           id,
			Code:         tm.Code,
			Dependencies: slices.Clone(tm.Dependencies),
		})
	}
	if debug.Diff() {
		debug.Logf("diff: %d ops, %d wire bytes\n", len(p.Ops), Size(p))
	}
	return p
}

// moduleEqual compares code text exactly and dependency lists
// elementwise in order.  The module hash is a cheap first check; the
// exact compare is the truth.
func moduleEqual(a, b *bundle.Module) bool {
	if a.Hash != b.Hash {
		return false
	}
	if a.Code != b.Code {
		return false
	}
	return slices.Equal(a.Dependencies, b.Dependencies)
}
