// Package fs writes summaries to the local filesystem.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/urlsum"
)

// URLToPath converts a page URL to a relative summary file path under a
// directory named after the host.
// Example: https://example.com/blog/post → example.com/blog/post.txt
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", urlsum.Errorf(urlsum.EINVALID, "URL has no host: %s", rawURL)
	}

	host := strings.ToLower(u.Hostname())
	path := strings.TrimPrefix(u.Path, "/")

	// Root or trailing slash → index.txt
	if path == "" || strings.HasSuffix(path, "/") {
		return filepath.Join(host, path, "index.txt"), nil
	}

	return filepath.Join(host, path+".txt"), nil
}

// FormatSummaryFile renders a summary with a short header.
func FormatSummaryFile(s *urlsum.Summary) string {
	var b strings.Builder
	b.WriteString("source: ")
	b.WriteString(s.URL)
	if s.Title != "" {
		b.WriteString("\ntitle: ")
		b.WriteString(s.Title)
	}
	b.WriteString("\nsummarized: ")
	b.WriteString(s.CreatedAt.Format("2006-01-02"))
	b.WriteString("\n\n")
	b.WriteString(s.Formatted)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements urlsum.SummaryWriter at compile time.
var _ urlsum.SummaryWriter = (*Writer)(nil)

// Writer writes summaries as text files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteSummary writes a summary to disk and returns the file path.
func (w *Writer) WriteSummary(ctx context.Context, s *urlsum.Summary) (string, error) {
	if strings.TrimSpace(s.Formatted) == "" {
		return "", urlsum.Errorf(urlsum.EINVALID, "summary is empty")
	}

	relPath, err := URLToPath(s.URL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(FormatSummaryFile(s)), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
