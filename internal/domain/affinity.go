package domain

import (
	"regexp"
	"strconv"
)

// The tool reports poses as a whitespace-aligned table; the rank-1 line
// carries the best predicted binding affinity in its second column.
var bestAffinityRe = regexp.MustCompile(`(?m)^\s*1\s+(-?[\d.]+)`)

// ExtractBestAffinity scans raw tool output for the rank-1 pose line and
// returns its affinity. The second return is false when no such line exists
// or its value does not parse as a number — the "tool ran but output format
// surprised us" condition.
func ExtractBestAffinity(output string) (float64, bool) {
	m := bestAffinityRe.FindStringSubmatch(output)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
