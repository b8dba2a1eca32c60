package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/otaforge/bundlekit/bundle"
	"github.com/otaforge/bundlekit/libpatch"
)

// textDiff renders a patch for human review: one section per
// operation, with character-level diffs of replaced module code.
func textDiff(cfg *DiffConfig, cc *cli.Context, from *bundle.Bundle, p *libpatch.Patch) error {
	w := cc.Out
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if !cfg.colorize(w) {
		ins.DisableColor()
		del.DisableColor()
	}
	if p.Prelude != nil {
		fmt.Fprintf(w, "prelude changed (%d bytes)\n", len(*p.Prelude))
	}
	if p.Postlude != nil {
		fmt.Fprintf(w, "postlude changed (%d bytes)\n", len(*p.Postlude))
	}
	for _, op := range p.Ops {
		switch x := op.(type) {
		case *libpatch.Add:
			fmt.Fprintf(w, "module %d added\n", x.ID)
			ins.Fprintf(w, "+%s\n", x.Code)
		case *libpatch.Delete:
			fmt.Fprintf(w, "module %d deleted\n", x.ID)
			if m := from.Modules[x.ID]; m != nil {
				del.Fprintf(w, "-%s\n", m.Code)
			}
		case *libpatch.Replace:
			fmt.Fprintf(w, "module %d replaced\n", x.ID)
			m := from.Modules[x.ID]
			if m == nil {
				ins.Fprintf(w, "+%s\n", x.Code)
				continue
			}
			dmp := diffmatchpatch.New()
			for _, d := range dmp.DiffMain(m.Code, x.Code, false) {
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					ins.Fprint(w, d.Text)
				case diffmatchpatch.DiffDelete:
					del.Fprint(w, d.Text)
				default:
					fmt.Fprint(w, d.Text)
				}
			}
			fmt.Fprintln(w)
		default:
			return fmt.Errorf("%w: %T", libpatch.ErrUnknownOp, op)
		}
	}
	return nil
}
