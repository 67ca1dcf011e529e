// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

// UniqueBy reduces a slice to one element per distinct key, keeping the
// first occurrence and preserving input order. Elements with unique keys
// are never dropped. The input slice is not modified.
//
// Example:
//
//	orders := UniqueBy(all, func(o Order) int { return o.OrderID })
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	if len(items) == 0 {
		return []T{}
	}
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

// Filter returns the elements of items for which keep returns true,
// preserving order. The input slice is not modified.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
