package libpatch

import (
	"encoding/json"
	"fmt"
)

// Wire format persisted and shipped to devices:
//
//	{
//	  "prelude": "...",
//	  "postlude": "...",
//	  "operations": [
//	    {"op": "add", "moduleId": 2, "code": "...", "dependencies": [1]},
//	    {"op": "delete", "moduleId": 3}
//	  ]
//	}
type wirePatch struct {
	Prelude    *string  `json:"prelude,omitempty"`
	Postlude   *string  `json:"postlude,omitempty"`
	Operations []wireOp `json:"operations"`
}

type wireOp struct {
	Op           string `json:"op"`
	ModuleID     int    `json:"moduleId"`
	Code         string `json:"code,omitempty"`
	Dependencies []int  `json:"dependencies,omitempty"`
}

func (p *Patch) MarshalJSON() ([]byte, error) {
	w := &wirePatch{
		Prelude:    p.Prelude,
		Postlude:   p.Postlude,
		Operations: make([]wireOp, 0, len(p.Ops)),
	}
	for _, op := range p.Ops {
		switch x := op.(type) {
		case *Add:
			w.Operations = append(w.Operations, wireOp{
				Op: "add", ModuleID: x.ID, Code: x.Code, Dependencies: x.Dependencies,
			})
		case *Replace:
			w.Operations = append(w.Operations, wireOp{
				Op: "replace", ModuleID: x.ID, Code: x.Code, Dependencies: x.Dependencies,
			})
		case *Delete:
			w.Operations = append(w.Operations, wireOp{Op: "delete", ModuleID: x.ID})
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnknownOp, op)
		}
	}
	return json.Marshal(w)
}

func (p *Patch) UnmarshalJSON(d []byte) error {
	w := &wirePatch{}
	if err := json.Unmarshal(d, w); err != nil {
		return err
	}
	p.Prelude = w.Prelude
	p.Postlude = w.Postlude
	p.Ops = nil
	for i := range w.Operations {
		wo := &w.Operations[i]
		switch wo.Op {
		case "add":
			p.Ops = append(p.Ops, &Add{ID: wo.ModuleID, Code: wo.Code, Dependencies: wo.Dependencies})
		case "replace":
			p.Ops = append(p.Ops, &Replace{ID: wo.ModuleID, Code: wo.Code, Dependencies: wo.Dependencies})
		case "delete":
			p.Ops = append(p.Ops, &Delete{ID: wo.ModuleID})
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOp, wo.Op)
		}
	}
	return nil
}
