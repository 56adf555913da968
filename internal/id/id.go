package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a task id argument. Both "3" and "#3" are accepted.
func Parse(arg string) (int, error) {
	s := strings.TrimPrefix(strings.TrimSpace(arg), "#")
	if s == "" {
		return 0, fmt.Errorf("invalid task id %q: empty", arg)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: not a number", arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid task id %q: must be positive", arg)
	}
	return n, nil
}

// Format renders an id the way messages show it.
func Format(n int) string {
	return "#" + strconv.Itoa(n)
}
