package extractors

import "fmt"

// ComplexityClass maps a maximum loop-nesting depth to a time-complexity
// label.
func ComplexityClass(depth int) string {
	switch {
	case depth <= 0:
		return "O(1)"
	case depth == 1:
		return "O(n)"
	case depth == 2:
		return "O(n²)"
	case depth == 3:
		return "O(n³)"
	default:
		return fmt.Sprintf("O(n^%d)", depth)
	}
}
