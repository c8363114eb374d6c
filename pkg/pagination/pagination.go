package pagination

type PageRequest struct {
	First *int
	After *string
}

type Edge[T any] struct {
	Cursor string
	Node   T
}

type PageInfo struct {
	EndCursor   string
	HasNextPage bool
}

// Page is an immutable forward-pagination result: edges in ascending
// cursor order plus the metadata needed to request the next page.
type Page[T any] struct {
	Edges    []Edge[T]
	PageInfo PageInfo
}
