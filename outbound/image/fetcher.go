package image

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"eticket-invoice/common"
	"eticket-invoice/common/constant"
	"eticket-invoice/common/otel"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const defaultTimeout = 15 * time.Second

// Fetcher downloads remote images to uuid-named temp files. Only one temp
// file exists per draw call; the caller deletes it after use.
type Fetcher struct {
	Cfg *viper.Viper

	client *http.Client
	dir    string
}

func (out *Fetcher) Init() {
	timeout := out.Cfg.GetDuration("image.timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	out.client = &http.Client{Timeout: timeout}

	out.dir = out.Cfg.GetString("image.temp_dir")
	if out.dir == "" {
		out.dir = os.TempDir()
	}
}

func (out *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, span := otel.Tracer.Start(ctx, "Fetcher.Fetch")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		common.UtilSpanError(span, err)
		return "", fmt.Errorf("build image request: %w", err)
	}

	resp, err := out.client.Do(req)
	if err != nil {
		common.UtilSpanError(span, err)
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("download image: unexpected status %d", resp.StatusCode)
		common.UtilSpanError(span, err)
		return "", err
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(resp.Body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		common.UtilSpanError(span, err)
		return "", fmt.Errorf("read image: %w", err)
	}
	head = head[:n]

	path := filepath.Join(out.dir, "invoice-img-"+uuid.NewString()+extFor(head))

	f, err := os.Create(path)
	if err != nil {
		common.UtilSpanError(span, err)
		return "", fmt.Errorf("create temp image: %w", err)
	}

	if _, err = f.Write(head); err == nil {
		_, err = io.Copy(f, resp.Body)
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		if removeErr := os.Remove(path); removeErr != nil {
			slog.WarnContext(ctx, "failed to remove partial temp image", traceIdAttr, slog.Any(constant.LogFieldErr, removeErr))
		}
		common.UtilSpanError(span, err)
		return "", fmt.Errorf("write temp image: %w", err)
	}

	slog.DebugContext(ctx, "image downloaded", traceIdAttr, slog.String(constant.LogFieldUrl, url))

	return path, nil
}

// extFor picks the temp file extension from sniffed content so the drawing
// surface can infer the image type from the path.
func extFor(head []byte) string {
	switch http.DetectContentType(head) {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
