package version

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

func parse(s string) ([]int, error) {
	fields := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	parts := make([]int, len(fields))

	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q", s)
		}
		parts[i] = n
	}

	return parts, nil
}

// Compare compares dotted numeric versions such as 2025.01.15 or the
// nightly form 2025.01.15.232345. Missing trailing parts count as zero.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for len(av) < len(bv) {
		av = append(av, 0)
	}
	for len(bv) < len(av) {
		bv = append(bv, 0)
	}

	return slices.Compare(av, bv), nil
}
