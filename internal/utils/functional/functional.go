// Package functional provides small generic slice helpers.
package functional

// Map applies fn to every element of items and returns the results.
func Map[T, U any](items []T, fn func(T) U) []U {
	if items == nil {
		return nil
	}
	result := make([]U, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}

// Filter returns the elements of items for which keep returns true.
func Filter[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}
