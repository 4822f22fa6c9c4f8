// Package intutils implements utility functions for ints
package intutils

// Prod returns the product of ints. The product of no ints is 1.
func Prod(ints ...int) int {
	prod := 1
	for _, val := range ints {
		prod *= val
	}
	return prod
}
