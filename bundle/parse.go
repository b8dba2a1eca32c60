package bundle

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/otaforge/bundlekit/debug"
)

type ParseConfig struct {
	MaxSize int
}

type ParseOption func(*ParseConfig)

// MaxSize bounds the accepted input length in bytes.  Zero means
// unlimited; embedding services are expected to bound inputs
// themselves before calling [Parse].
func MaxSize(n int) ParseOption {
	return func(c *ParseConfig) {
		c.MaxSize = n
	}
}

// Parse splits src into prelude, module registrations, and postlude.
// Each registration has the form
//
//	__d(<function-literal>,<id>,[<dep>,...]);
//
// and is located by the marker, then scanned with the string-aware
// state machine in [scanner] so that delimiters inside literals never
// affect nesting.  The scan is a single linear pass over src.
func Parse(src []byte, opts ...ParseOption) (*Bundle, error) {
	cfg := &ParseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.MaxSize > 0 && len(src) > cfg.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrTooLarge, len(src), cfg.MaxSize)
	}
	doc := &posDoc{d: src}
	first := bytes.Index(src, []byte(Marker))
	if first < 0 {
		return nil, newParseErr(ErrNoModules, doc.pos(0))
	}
	b := &Bundle{
		Prelude: string(src[:first]),
		Modules: map[int]*Module{},
	}
	i := first
	for {
		m, next, err := parseModule(doc, src, i)
		if err != nil {
			return nil, err
		}
		if _, present := b.Modules[m.ID]; present {
			return nil, newParseErr(fmt.Errorf("%w: %d", ErrDuplicateID, m.ID), doc.pos(i))
		}
		b.Modules[m.ID] = m
		if debug.Parse() {
			debug.Logf("module %d: %d deps, %d code bytes, offset %d\n",
				m.ID, len(m.Dependencies), len(m.Code), i)
		}
		j := bytes.Index(src[next:], []byte(Marker))
		if j < 0 {
			b.Postlude = strings.Trim(string(src[next:]), "; \t\r\n")
			return b, nil
		}
		i = next + j
	}
}

// parseModule parses one registration starting at the marker at
// offset at.  It returns the module and the offset just past the
// closing paren of the registration.
func parseModule(doc *posDoc, src []byte, at int) (*Module, int, error) {
	s := newScanner(src, at+len(Marker))

	// The function literal ends at the matching close of its first
	// structural brace, with no parens left open.
	start := s.i
	braces, parens := 0, 0
	seenBrace := false
	for {
		if s.i >= len(src) {
			return nil, 0, newParseErr(ErrUnbalanced, doc.pos(at))
		}
		c, structural := s.step()
		if !structural {
			continue
		}
		switch c {
		case '{':
			braces++
			seenBrace = true
		case '}':
			braces--
			if braces < 0 {
				return nil, 0, newParseErr(ErrUnbalanced, doc.pos(s.i-1))
			}
		case '(':
			parens++
		case ')':
			parens--
			if parens < 0 {
				return nil, 0, newParseErr(ErrUnbalanced, doc.pos(s.i-1))
			}
		}
		if seenBrace && braces == 0 && parens == 0 {
			break
		}
	}
	code := string(src[start:s.i])

	// Trailing metadata: ,<id>,[<dep>,...])
	i := s.i
	skip := func() {
		for i < len(src) {
			switch src[i] {
			case ' ', '\t', '\r', '\n':
				i++
			default:
				return
			}
		}
	}
	expect := func(c byte) error {
		skip()
		if i >= len(src) || src[i] != c {
			return expectedErr(strconv.QuoteRune(rune(c)), doc.pos(i))
		}
		i++
		return nil
	}
	number := func(what string) (int, error) {
		skip()
		ds := i
		for i < len(src) && src[i] >= '0' && src[i] <= '9' {
			i++
		}
		if i == ds {
			return 0, expectedErr(what, doc.pos(i))
		}
		n, err := strconv.Atoi(string(src[ds:i]))
		if err != nil {
			return 0, newParseErr(fmt.Errorf("%w: %v", ErrBadMetadata, err), doc.pos(ds))
		}
		return n, nil
	}

	if err := expect(','); err != nil {
		return nil, 0, err
	}
	id, err := number("module id")
	if err != nil {
		return nil, 0, err
	}
	if err := expect(','); err != nil {
		return nil, 0, err
	}
	if err := expect('['); err != nil {
		return nil, 0, err
	}
	var deps []int
	skip()
	if i < len(src) && src[i] != ']' {
		for {
			dep, err := number("dependency id")
			if err != nil {
				return nil, 0, err
			}
			deps = append(deps, dep)
			skip()
			if i < len(src) && src[i] == ',' {
				i++
				continue
			}
			break
		}
	}
	if err := expect(']'); err != nil {
		return nil, 0, err
	}
	if err := expect(')'); err != nil {
		return nil, 0, err
	}
	return NewModule(id, code, deps), i, nil
}
