package integrity

import (
	"strings"
	"testing"
)

func TestHashBundleFormat(t *testing.T) {
	h := HashBundle("__d(function(){},1,[]);")
	if len(h) != BundleHashLen {
		t.Fatalf("length: got %d, want %d", len(h), BundleHashLen)
	}
	if !IsValidHashFormat(h) {
		t.Errorf("own output rejected: %s", h)
	}
	if h != HashBundle("__d(function(){},1,[]);") {
		t.Errorf("hash not deterministic")
	}
	if h == HashBundle("__d(function(){},2,[]);") {
		t.Errorf("distinct inputs collided")
	}
}

func TestIsValidHashFormat(t *testing.T) {
	pts := []struct {
		in string
		ok bool
	}{
		{in: strings.Repeat("a", 64), ok: true},
		{in: strings.Repeat("0", 64), ok: true},
		{in: strings.Repeat("a", 63), ok: false},
		{in: strings.Repeat("a", 65), ok: false},
		{in: strings.Repeat("A", 64), ok: false},
		{in: strings.Repeat("g", 64), ok: false},
		{in: "", ok: false},
	}
	for i := range pts {
		pt := &pts[i]
		if got := IsValidHashFormat(pt.in); got != pt.ok {
			t.Errorf("%q: got %v, want %v", pt.in, got, pt.ok)
		}
	}
}

func TestVerify(t *testing.T) {
	text := "bundle text"
	h := HashBundle(text)
	if !Verify(text, h) {
		t.Errorf("verify rejected correct hash")
	}
	if Verify(text, strings.ToUpper(h)) {
		t.Errorf("verify is not case sensitive")
	}
	if Verify(text+" ", h) {
		t.Errorf("verify accepted modified text")
	}
}

func TestHashModule(t *testing.T) {
	h := HashModule("function(){}")
	if len(h) != ModuleHashLen {
		t.Fatalf("length: got %d, want %d", len(h), ModuleHashLen)
	}
	if h == HashModule("function(x){}") {
		t.Errorf("distinct code collided")
	}
	if IsValidHashFormat(h) {
		t.Errorf("module hash accepted as a bundle hash")
	}
}
