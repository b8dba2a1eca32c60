package libpatch

// Wire accounting used for bandwidth and cost decisions downstream: a
// fixed 20 byte overhead per operation, plus the code bytes, plus 4
// bytes per dependency id.  These exact values are load bearing.
const (
	opOverhead = 20
	depIDSize  = 4
)

// Size estimates the serialized size of p in bytes.
func Size(p *Patch) int {
	n := 0
	if p.Prelude != nil {
		n += len(*p.Prelude)
	}
	if p.Postlude != nil {
		n += len(*p.Postlude)
	}
	for _, op := range p.Ops {
		n += opOverhead
		switch x := op.(type) {
		case *Add:
			n += len(x.Code) + depIDSize*len(x.Dependencies)
		case *Replace:
			n += len(x.Code) + depIDSize*len(x.Dependencies)
		case *Delete:
		}
	}
	return n
}
