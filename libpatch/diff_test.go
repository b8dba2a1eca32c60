package libpatch

import (
	"testing"

	"github.com/otaforge/bundlekit/bundle"
)

func mk(prelude, postlude string, mods ...*bundle.Module) *bundle.Bundle {
	b := &bundle.Bundle{Prelude: prelude, Modules: map[int]*bundle.Module{}, Postlude: postlude}
	for _, m := range mods {
		b.Modules[m.ID] = m
	}
	return b
}

func mod(id int, code string, deps ...int) *bundle.Module {
	return bundle.NewModule(id, code, deps)
}

func TestDiffNoOp(t *testing.T) {
	a := mk("P", "Q", mod(1, "a"), mod(2, "b", 1))
	p := Diff(a, a.Clone())
	if len(p.Ops) != 0 {
		t.Errorf("ops: got %v, want none", p.Ops)
	}
	if p.Prelude != nil || p.Postlude != nil {
		t.Errorf("prelude/postlude present in no-op diff")
	}
}

func TestDiffAdd(t *testing.T) {
	from := mk("", "", mod(1, "a"))
	to := mk("", "", mod(1, "a"), mod(2, "b"))
	p := Diff(from, to)
	if len(p.Ops) != 1 {
		t.Fatalf("ops: got %d, want 1", len(p.Ops))
	}
	add, ok := p.Ops[0].(*Add)
	if !ok {
		t.Fatalf("op: got %T, want *Add", p.Ops[0])
	}
	if add.ID != 2 || add.Code != "b" {
		t.Errorf("got Add{%d, %q}", add.ID, add.Code)
	}
}

func TestDiffReplace(t *testing.T) {
	from := mk("", "", mod(1, "x"))
	to := mk("", "", mod(1, "y"))
	p := Diff(from, to)
	if len(p.Ops) != 1 {
		t.Fatalf("ops: got %d, want 1", len(p.Ops))
	}
	rep, ok := p.Ops[0].(*Replace)
	if !ok {
		t.Fatalf("op: got %T, want *Replace", p.Ops[0])
	}
	if rep.ID != 1 || rep.Code != "y" {
		t.Errorf("got Replace{%d, %q}", rep.ID, rep.Code)
	}
}

func TestDiffDepsOnlyChange(t *testing.T) {
	from := mk("", "", mod(1, "a", 2, 3))
	to := mk("", "", mod(1, "a", 3, 2))
	p := Diff(from, to)
	if len(p.Ops) != 1 {
		t.Fatalf("ops: got %d, want 1", len(p.Ops))
	}
	if _, ok := p.Ops[0].(*Replace); !ok {
		t.Errorf("op: got %T, want *Replace", p.Ops[0])
	}
}

func TestDiffDelete(t *testing.T) {
	from := mk("", "", mod(1, "a"), mod(2, "b"))
	to := mk("", "", mod(1, "a"))
	p := Diff(from, to)
	if len(p.Ops) != 1 {
		t.Fatalf("ops: got %d, want 1", len(p.Ops))
	}
	del, ok := p.Ops[0].(*Delete)
	if !ok {
		t.Fatalf("op: got %T, want *Delete", p.Ops[0])
	}
	if del.ID != 2 {
		t.Errorf("got Delete{%d}, want Delete{2}", del.ID)
	}
}

func TestDiffPreludePostlude(t *testing.T) {
	from := mk("P1", "Q", mod(1, "a"))
	to := mk("P2", "Q", mod(1, "a"))
	p := Diff(from, to)
	if p.Prelude == nil || *p.Prelude != "P2" {
		t.Errorf("prelude: got %v", p.Prelude)
	}
	if p.Postlude != nil {
		t.Errorf("postlude present but unchanged")
	}
	if len(p.Ops) != 0 {
		t.Errorf("ops: got %v, want none", p.Ops)
	}
}

func TestDiffApplyInverse(t *testing.T) {
	pairs := []struct {
		a, b *bundle.Bundle
	}{
		{
			a: mk("P", "Q", mod(1, "a"), mod(2, "b", 1)),
			b: mk("P", "Q", mod(1, "a"), mod(2, "b", 1)),
		},
		{
			a: mk("P", "Q", mod(1, "a")),
			b: mk("P", "Q", mod(1, "a"), mod(2, "b", 1)),
		},
		{
			a: mk("P", "Q", mod(1, "a"), mod(2, "b"), mod(3, "c")),
			b: mk("P2", "Q2", mod(2, "b2"), mod(3, "c"), mod(4, "d", 3)),
		},
		{
			a: mk("", "", mod(1, "a")),
			b: mk("boot();", "run();", mod(9, "z", 1)),
		},
	}
	for i, pair := range pairs {
		p := Diff(pair.a, pair.b)
		got, err := Apply(pair.a, p)
		if err != nil {
			t.Errorf("pair %d: %v", i, err)
			continue
		}
		if bundle.Assemble(got) != bundle.Assemble(pair.b) {
			t.Errorf("pair %d:\ngot  %s\nwant %s", i, bundle.Assemble(got), bundle.Assemble(pair.b))
		}
	}
}

func TestSize(t *testing.T) {
	pts := []struct {
		p    *Patch
		want int
	}{
		{p: &Patch{}, want: 0},
		{p: &Patch{Ops: []Op{&Delete{ID: 1}}}, want: 20},
		{p: &Patch{Ops: []Op{&Add{ID: 1, Code: "abcde"}}}, want: 25},
		{p: &Patch{Ops: []Op{&Replace{ID: 1, Code: "ab", Dependencies: []int{1, 2, 3}}}}, want: 34},
		{
			p: &Patch{
				Prelude:  strptr("pre"),
				Postlude: strptr("post"),
				Ops:      []Op{&Delete{ID: 1}, &Add{ID: 2, Code: "x", Dependencies: []int{1}}},
			},
			want: 3 + 4 + 20 + 20 + 1 + 4,
		},
	}
	for i, pt := range pts {
		if got := Size(pt.p); got != pt.want {
			t.Errorf("case %d: got %d, want %d", i, got, pt.want)
		}
	}
}

func TestSizeGrowsWithOps(t *testing.T) {
	p := &Patch{}
	last := Size(p)
	for i := 0; i < 5; i++ {
		p.Ops = append(p.Ops, &Add{ID: i, Code: "code"})
		n := Size(p)
		if n <= last {
			t.Fatalf("size did not grow: %d -> %d", last, n)
		}
		last = n
	}
}

func strptr(s string) *string {
	return &s
}
