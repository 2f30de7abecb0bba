package updatefeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	// HTTP client timeout for installer downloads.
	downloadTimeout = 5 * time.Minute

	// Maximum installer size (256MB) - prevents unbounded downloads.
	maxInstallerSize = 256 * 1024 * 1024

	// File permission for the staged artifact.
	artifactPerm = 0o644

	// Copy chunk size between progress reports.
	progressChunk = 64 * 1024
)

// Downloader implements port.InstallerDownloader over HTTP.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates an installer downloader.
func NewDownloader() *Downloader {
	return &Downloader{
		client: &http.Client{Timeout: downloadTimeout},
	}
}

// Download streams url into destPath, overwriting any previous
// artifact. progress receives fractions in [0,1]; when the server sends
// no Content-Length the fraction stays at 0 until completion.
func (d *Downloader) Download(ctx context.Context, url, destPath string, progress func(float64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create download request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("download installer: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	total := resp.ContentLength
	if total > maxInstallerSize {
		return fmt.Errorf("installer too large: %d bytes (max %d)", total, maxInstallerSize)
	}

	file, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, artifactPerm)
	if err != nil {
		return fmt.Errorf("create artifact file: %w", err)
	}

	written, err := copyWithProgress(file, io.LimitReader(resp.Body, maxInstallerSize+1), total, progress)
	if closeErr := file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(destPath)
		return fmt.Errorf("write artifact: %w", err)
	}
	if written > maxInstallerSize {
		_ = os.Remove(destPath)
		return fmt.Errorf("installer exceeds maximum size of %d bytes", maxInstallerSize)
	}

	if progress != nil {
		progress(1.0)
	}
	return nil
}

// copyWithProgress copies src to dst in chunks, reporting the completed
// fraction after each chunk when the total size is known.
func copyWithProgress(dst io.Writer, src io.Reader, total int64, progress func(float64)) (int64, error) {
	var written int64
	buf := make([]byte, progressChunk)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				return written, writeErr
			}
			written += int64(n)
			if progress != nil && total > 0 {
				fraction := float64(written) / float64(total)
				if fraction > 1.0 {
					fraction = 1.0
				}
				progress(fraction)
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
