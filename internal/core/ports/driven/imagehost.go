package driven

import "context"

// ImageHost uploads binary image data and returns a public URL.
// Uploads within a single document are issued strictly sequentially so
// replacement order matches source order.
type ImageHost interface {
	// Upload sends one image and returns its hosted URL.
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}
