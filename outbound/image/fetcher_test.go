package image

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type FetcherTestSuite struct {
	suite.Suite

	dir     string
	fetcher *Fetcher
}

func TestFetcherTestSuite(t *testing.T) {
	suite.Run(t, new(FetcherTestSuite))
}

func (s *FetcherTestSuite) SetupTest() {
	s.dir = s.T().TempDir()

	cfg := viper.New()
	cfg.Set("image.timeout", "2s")
	cfg.Set("image.temp_dir", s.dir)

	s.fetcher = &Fetcher{Cfg: cfg}
	s.fetcher.Init()
}

func pngBytes(s *FetcherTestSuite) []byte {
	var buf bytes.Buffer
	s.Require().NoError(png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func (s *FetcherTestSuite) TestFetchWritesTempFile() {
	payload := pngBytes(s)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	path, err := s.fetcher.Fetch(context.Background(), srv.URL+"/event.png")
	s.Require().NoError(err)

	s.Equal(s.dir, filepath.Dir(path))
	s.True(strings.HasSuffix(path, ".png"))

	got, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal(payload, got)
}

func (s *FetcherTestSuite) TestFetchSniffsJpegExtension() {
	// minimal JPEG signature is enough for content sniffing
	payload := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 16)...)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	path, err := s.fetcher.Fetch(context.Background(), srv.URL)
	s.Require().NoError(err)
	s.True(strings.HasSuffix(path, ".jpg"))
}

func (s *FetcherTestSuite) TestFetchNonOKStatus() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := s.fetcher.Fetch(context.Background(), srv.URL)
	s.Require().Error(err)
	s.Contains(err.Error(), "unexpected status 404")
}

func (s *FetcherTestSuite) TestFetchTimeout() {
	cfg := viper.New()
	cfg.Set("image.timeout", "50ms")
	cfg.Set("image.temp_dir", s.dir)

	fetcher := &Fetcher{Cfg: cfg}
	fetcher.Init()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := fetcher.Fetch(context.Background(), srv.URL)
	s.Require().Error(err)
}

func (s *FetcherTestSuite) TestFetchCancelledContext() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.fetcher.Fetch(ctx, srv.URL)
	s.Require().Error(err)
}

func (s *FetcherTestSuite) TestFetchInvalidURL() {
	_, err := s.fetcher.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")
	s.Require().Error(err)
}
