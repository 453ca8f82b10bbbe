package media

import (
	"context"
	"io"
)

// Store is the narrow contract with the external media host: upload a byte
// stream and get back a stable public URL, or destroy an object by the
// identifier derived from that URL.
type Store interface {
	Upload(ctx context.Context, r io.Reader, resourceType, publicID string) (string, error)
	Destroy(ctx context.Context, publicID, resourceType string) error
}
