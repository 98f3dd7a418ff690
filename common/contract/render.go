package contract

import (
	"context"
	"eticket-invoice/model"
	"io"
)

// ImageFetcher downloads a remote image to a local temp file and returns its
// path. The caller owns the file and removes it after use.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// QRGenerator turns a payload string into a PNG raster of the given pixel size.
type QRGenerator interface {
	Generate(payload string, size int) ([]byte, error)
}

// InvoiceRenderer writes a paginated invoice document for one order to w.
type InvoiceRenderer interface {
	Render(ctx context.Context, order model.Order, w io.Writer) error
}
