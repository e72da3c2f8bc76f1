// Package utils holds file download helpers used by the command line tools.
package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

var ErrNotFound = errors.New("file not found on server")

const progressStep = 4 << 20

// progressReader logs how much of a download has arrived each time another
// step bytes have been read. size is the expected length, or -1 if unknown.
type progressReader struct {
	r        io.Reader
	name     string
	size     int64
	read     int64
	reported int64
	step     int64
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	pr.read += int64(n)
	if pr.read-pr.reported >= pr.step {
		pr.reported = pr.read
		attrs := []any{"file", pr.name, "bytes", pr.read}
		if pr.size > 0 {
			attrs = append(attrs, "percent", pr.read*100/pr.size)
		}
		slog.Info("Downloading", attrs...)
	}
	return n, err
}

// DownloadFile downloads a URL to path. The body is written to a temporary
// file next to path and renamed into place, so path is either the old content
// or the complete new one.
func DownloadFile(ctx context.Context, client *http.Client, url, path string) (int64, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Debug("Error closing response body", "error", err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return 0, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("bad status: %s", resp.Status)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return 0, err
	}
	tmpName := tmpFile.Name()
	defer func() {
		if err := os.Remove(tmpName); err != nil && !os.IsNotExist(err) {
			slog.Warn("Error removing temp file", "path", tmpName, "error", err)
		}
	}()

	body := &progressReader{r: resp.Body, name: filepath.Base(path), size: resp.ContentLength, step: progressStep}
	n, err := io.Copy(tmpFile, body)
	if err != nil {
		_ = tmpFile.Close()
		return n, err
	}
	if err := tmpFile.Close(); err != nil {
		return n, err
	}
	return n, os.Rename(tmpName, path)
}
