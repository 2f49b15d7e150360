package storage

import "context"

// RowStore is the append-only persistence target for accepted leads. One
// accepted lead maps to exactly one AppendRow call; the store determines the
// relative order of rows appended by concurrent requests.
type RowStore interface {
	AppendRow(ctx context.Context, row []string) error
}
