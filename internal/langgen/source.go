// Package langgen fetches GitHub linguist's languages.yml and turns it into
// the extension table embedded by the langmap package. It is only used by the
// ef-langgen tool; ef itself never touches the network.
package langgen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MoAI522/embed-files/internal/debug"
	"github.com/MoAI522/embed-files/internal/langmap"
)

// DefaultURL is the upstream linguist language list.
const DefaultURL = "https://raw.githubusercontent.com/github-linguist/linguist/main/lib/linguist/languages.yml"

// maxBodySize bounds how much of a remote response is read.
const maxBodySize = 16 << 20

// Source provides raw linguist languages.yml data.
type Source interface {
	// Name returns the source kind ("http" or "file").
	Name() string
	// Location returns the URL or path the data comes from.
	Location() string
	// Fetch returns the raw document.
	Fetch(ctx context.Context) ([]byte, error)
}

// NewSource returns an HTTPSource for http(s) URLs and a FileSource otherwise.
func NewSource(location string) (Source, error) {
	if location == "" {
		return nil, fmt.Errorf("source URL or path cannot be empty")
	}
	if strings.HasPrefix(location, "https://") || strings.HasPrefix(location, "http://") {
		return NewHTTPSource(location), nil
	}
	return &FileSource{Path: strings.TrimPrefix(location, "file://")}, nil
}

// FileSource reads languages.yml from the local filesystem.
type FileSource struct {
	// Path is the file to read.
	Path string
}

// Name returns the source kind.
func (s *FileSource) Name() string {
	return "file"
}

// Location returns the file path.
func (s *FileSource) Location() string {
	return s.Path
}

// Fetch reads the file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	debug.Debug("[langgen] Reading %s", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, NewFetchError(s.Name(), s.Path, err)
	}
	return data, nil
}

// HTTPSource downloads languages.yml.
type HTTPSource struct {
	// URL is the document URL.
	URL string
	// HTTPClient is the HTTP client for requests.
	HTTPClient *http.Client
	// Token is an optional GitHub token sent as an Authorization header.
	Token string
}

// NewHTTPSource creates an HTTPSource with a 30 second timeout.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL: url,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name returns the source kind.
func (s *HTTPSource) Name() string {
	return "http"
}

// Location returns the URL.
func (s *HTTPSource) Location() string {
	return s.URL
}

// Fetch downloads the document.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	debug.Debug("[langgen] Downloading %s", s.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, NewFetchError(s.Name(), s.URL, err)
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "token "+s.Token)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, NewFetchError(s.Name(), s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewFetchError(s.Name(), s.URL, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, NewFetchError(s.Name(), s.URL, err)
	}
	return data, nil
}

// GitHubTokenFromEnv returns GITHUB_TOKEN, falling back to GH_TOKEN.
func GitHubTokenFromEnv() string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("GH_TOKEN")
}

// Generate fetches src and returns the encoded extension table.
func Generate(ctx context.Context, src Source) ([]byte, int, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, 0, err
	}

	table, err := langmap.FromLinguist(data)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse %s: %w", src.Location(), err)
	}
	debug.Debug("[langgen] Mapped %d extension(s)", len(table))

	out, err := langmap.Encode(table)
	if err != nil {
		return nil, 0, err
	}
	return out, len(table), nil
}
