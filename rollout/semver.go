package rollout

import (
	"strconv"
	"strings"
)

// CompareVersions compares dot-separated version strings component by
// component, numerically, never lexicographically.  Missing trailing
// components read as zero, so "1.2" equals "1.2.0".  A non-numeric
// suffix within a component is ignored: "3-beta" reads as 3.
func CompareVersions(a, b string) int {
	as := versionComponents(a)
	bs := versionComponents(b)
	n := max(len(as), len(bs))
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}

func versionComponents(v string) []int {
	parts := strings.Split(v, ".")
	res := make([]int, len(parts))
	for i, part := range parts {
		j := 0
		for j < len(part) && part[j] >= '0' && part[j] <= '9' {
			j++
		}
		if j == 0 {
			continue
		}
		n, err := strconv.Atoi(part[:j])
		if err != nil {
			continue
		}
		res[i] = n
	}
	return res
}
