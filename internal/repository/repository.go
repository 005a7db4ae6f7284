// Package repository holds the persistence contracts. Implementations live
// in subpackages.
package repository

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a page of items plus the total row count.
type PageResult[T any] struct {
	Items []T
	Total int
}
