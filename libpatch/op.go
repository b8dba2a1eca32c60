package libpatch

// Op is one patch operation affecting a single module id.  The set of
// implementations is closed: Add, Replace and Delete are the only
// variants, so consumers can switch exhaustively with a default case
// reserved for corruption.
type Op interface {
	ModuleID() int
	isOp()
}

// Add introduces a module id absent from the base bundle.
type Add struct {
	ID           int
	Code         string
	Dependencies []int
}

func (a *Add) ModuleID() int { return a.ID }
func (*Add) isOp()           {}

// Replace overwrites the code and dependencies of an existing module.
type Replace struct {
	ID           int
	Code         string
	Dependencies []int
}

func (r *Replace) ModuleID() int { return r.ID }
func (*Replace) isOp()           {}

// Delete removes an existing module.
type Delete struct {
	ID int
}

func (d *Delete) ModuleID() int { return d.ID }
func (*Delete) isOp()           {}

// Patch is a minimal description of the differences between two
// bundle versions.  Prelude and Postlude are set only when they
// differ from the base; an unmodified module never appears in Ops,
// and each affected id appears exactly once.
type Patch struct {
	Prelude  *string
	Postlude *string
	Ops      []Op
}
