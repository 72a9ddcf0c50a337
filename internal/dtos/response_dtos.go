package dtos

// ListResponse wraps a collection read. Data is never nil.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Count   int  `json:"count"`
}

func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Success: true, Data: items, Count: len(items)}
}

// ItemResponse wraps a single record, optionally with a confirmation message.
type ItemResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// RouteErrorResponse is used outside the resource envelope: unmatched
// routes and recovered panics.
type RouteErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
