package libpatch

import (
	"fmt"

	"github.com/otaforge/bundlekit/bundle"
	"github.com/otaforge/bundlekit/debug"
	"github.com/otaforge/bundlekit/integrity"
)

// ApplyOp applies a single operation to b in place.  Add fails with
// [ErrExists] if the id is already present; Replace and Delete fail
// with [ErrNotFound] if it is absent.
func ApplyOp(b *bundle.Bundle, op Op) error {
	switch x := op.(type) {
	case *Add:
		if _, present := b.Modules[x.ID]; present {
			return fmt.Errorf("%w: add %d", ErrExists, x.ID)
		}
		b.Modules[x.ID] = bundle.NewModule(x.ID, x.Code, x.Dependencies)
	case *Replace:
		if _, present := b.Modules[x.ID]; !present {
			return fmt.Errorf("%w: replace %d", ErrNotFound, x.ID)
		}
		b.Modules[x.ID] = bundle.NewModule(x.ID, x.Code, x.Dependencies)
	case *Delete:
		if _, present := b.Modules[x.ID]; !present {
			return fmt.Errorf("%w: delete %d", ErrNotFound, x.ID)
		}
		delete(b.Modules, x.ID)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownOp, op)
	}
	return nil
}

// Apply applies p to b all-or-nothing.  b itself is never mutated; on
// any failing operation no partially patched bundle is observable.
func Apply(b *bundle.Bundle, p *Patch) (*bundle.Bundle, error) {
	res := b.Clone()
	if p.Prelude != nil {
		res.Prelude = *p.Prelude
	}
	if p.Postlude != nil {
		res.Postlude = *p.Postlude
	}
	for _, op := range p.Ops {
		if err := ApplyOp(res, op); err != nil {
			return nil, err
		}
		if debug.Patch() {
			debug.Logf("applied %T for module %d\n", op, op.ModuleID())
		}
	}
	return res, nil
}

// ApplyVerified applies p, assembles the result, and checks its
// integrity hash against expectedHash.  On mismatch the result is
// discarded and [ErrHashMismatch] returned; callers fall back to
// fetching a full bundle.
func ApplyVerified(b *bundle.Bundle, p *Patch, expectedHash string) (*bundle.Bundle, error) {
	res, err := Apply(b, p)
	if err != nil {
		return nil, err
	}
	text := bundle.Assemble(res)
	if got := integrity.HashBundle(text); got != expectedHash {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrHashMismatch, got, expectedHash)
	}
	return res, nil
}
