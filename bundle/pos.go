package bundle

import (
	"fmt"
	"strconv"
)

type posDoc struct {
	d []byte
}

func (d *posDoc) pos(i int) *Pos {
	return &Pos{I: i, d: d}
}

// Pos is a byte offset into the source being parsed, with enough
// context to render a useful error location.
type Pos struct {
	I int
	d *posDoc
}

func (p *Pos) LineCol() (int, int) {
	line, col := 0, 0
	for i := 0; i < p.I && i < len(p.d.d); i++ {
		if p.d.d[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

func (p Pos) String() string {
	sample := string(p.d.d[max(0, p.I-5):min(p.I+5, len(p.d.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, line, col)
}
