package bundle

import (
	"strconv"
	"strings"
)

// Assemble reconstructs bundle text from b.  Modules are emitted in
// ascending id order; the output never depends on map iteration
// order.  Re-parsing the result yields the same module set and
// content as b.
func Assemble(b *Bundle) string {
	var sb strings.Builder
	sb.WriteString(b.Prelude)
	for _, id := range b.IDs() {
		m := b.Modules[id]
		sb.WriteString(Marker)
		sb.WriteString(m.Code)
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(m.ID))
		sb.WriteString(",[")
		for j, dep := range m.Dependencies {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(dep))
		}
		sb.WriteString("]);\n")
	}
	sb.WriteString(b.Postlude)
	return sb.String()
}
