package selector

import (
	"sort"
	"strconv"
	"strings"
)

// Selector is an unordered collection of bags, one conceptually chosen
// from each underlying TD, represented as a sorted duplicate-free slice
// of bag bitmasks.
type Selector []int

func newSelector(bags []int) Selector {
	out := append(Selector(nil), bags...)
	sort.Ints(out)
	return out
}

func (s Selector) key() string {
	var sb strings.Builder
	for i, b := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(b))
	}
	return sb.String()
}
