package bundle

// scanState tracks whether the scanner is inside a string literal or
// immediately after a backslash.  Module bodies are arbitrary code,
// so any delimiter can appear inside a quoted or backtick-delimited
// literal; bytes seen in those states never affect nesting depth.
type scanState int

const (
	scanNormal scanState = iota
	scanString
	scanEscaped
)

type scanner struct {
	d     []byte
	i     int
	state scanState
	quote byte
	from  scanState // state restored after an escape
}

func newScanner(d []byte, at int) *scanner {
	return &scanner{d: d, i: at}
}

// step consumes one byte and reports whether it is structural: outside
// any string literal and not escaped.
func (s *scanner) step() (byte, bool) {
	c := s.d[s.i]
	s.i++
	switch s.state {
	case scanEscaped:
		s.state = s.from
		return c, false
	case scanString:
		switch c {
		case '\\':
			s.from = scanString
			s.state = scanEscaped
		case s.quote:
			s.state = scanNormal
		}
		return c, false
	default:
		switch c {
		case '\\':
			s.from = scanNormal
			s.state = scanEscaped
			return c, false
		case '\'', '"', '`':
			s.state = scanString
			s.quote = c
			return c, false
		}
		return c, true
	}
}
