package sheet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxSheetBytes caps how much of a remote response is read.
const maxSheetBytes = 32 << 20

// HTTPSource fetches a sheet from a URL, normally a Google Sheets export.
type HTTPSource struct {
	URL     string
	Format  Format
	Client  *http.Client
	Timeout time.Duration
	// MaxBytes caps the response body; zero means maxSheetBytes.
	MaxBytes int64
}

// NewHTTPSource builds a source with a default client.
func NewHTTPSource(rawURL string, format Format, timeout time.Duration) *HTTPSource {
	return &HTTPSource{URL: rawURL, Format: format, Client: http.DefaultClient, Timeout: timeout}
}

func (s *HTTPSource) Describe() string { return s.URL }

func (s *HTTPSource) Fetch(ctx context.Context) (*Frame, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building sheet request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching sheet: unexpected status %s", resp.Status)
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = maxSheetBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading sheet body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("reading sheet body: %w (over %d bytes)", ErrSheetTooLarge, limit)
	}
	return Parse(bytes.NewReader(data), s.Format)
}

// FileSource reads a local CSV or XLSX file, chosen by extension.
type FileSource struct {
	Path string
}

func (s *FileSource) Describe() string { return s.Path }

func (s *FileSource) Format() Format {
	if strings.EqualFold(filepath.Ext(s.Path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

func (s *FileSource) Fetch(ctx context.Context) (*Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sheet file: %w", err)
	}
	defer f.Close()
	return Parse(f, s.Format())
}

// StaticSource serves a fixed frame. Used offline and in tests.
type StaticSource struct {
	Frame *Frame
	Err   error
}

func (s *StaticSource) Describe() string { return "static" }

func (s *StaticSource) Fetch(ctx context.Context) (*Frame, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Frame == nil {
		return nil, ErrEmptySheet
	}
	return s.Frame, nil
}
