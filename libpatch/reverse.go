package libpatch

import (
	"fmt"
	"slices"

	"github.com/otaforge/bundlekit/bundle"
)

// Reverse computes the patch that undoes p relative to base, the
// bundle p was diffed from.  Applying the result to the patched
// bundle restores base; this is the rollback path.
func Reverse(base *bundle.Bundle, p *Patch) (*Patch, error) {
	rev := &Patch{}
	if p.Prelude != nil {
		prelude := base.Prelude
		rev.Prelude = &prelude
	}
	if p.Postlude != nil {
		postlude := base.Postlude
		rev.Postlude = &postlude
	}
	for _, op := range p.Ops {
		switch x := op.(type) {
		case *Add:
			rev.Ops = append(rev.Ops, &Delete{ID: x.ID})
		case *Replace:
			m, present := base.Modules[x.ID]
			if !present {
				return nil, fmt.Errorf("%w: reverse replace %d", ErrNotFound, x.ID)
			}
			rev.Ops = append(rev.Ops, &Replace{
				ID:           x.ID,
				Code:         m.Code,
				Dependencies: slices.Clone(m.Dependencies),
			})
		case *Delete:
			m, present := base.Modules[x.ID]
			if !present {
				return nil, fmt.Errorf("%w: reverse delete %d", ErrNotFound, x.ID)
			}
			rev.Ops = append(rev.Ops, &Add{
				ID:           x.ID,
				Code:         m.Code,
				Dependencies: slices.Clone(m.Dependencies),
			})
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnknownOp, op)
		}
	}
	return rev, nil
}
