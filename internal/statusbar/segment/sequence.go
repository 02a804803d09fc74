package segment

import (
	"fmt"
	"strings"

	"github.com/young1lin/tabline/internal/statusbar/render"
)

// Sequence is an ordered run of rendered elements
type Sequence []fmt.Stringer

// String concatenates every element in order
func (q Sequence) String() string {
	var b strings.Builder
	for _, s := range q {
		b.WriteString(s.String())
	}
	return b.String()
}

// Width returns the sum of element widths
func (q Sequence) Width() int {
	total := 0
	for _, s := range q {
		total += render.Measure(s.String())
	}
	return total
}
