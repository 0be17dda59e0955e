package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTTPSource serves a corpus published the way the dashboard's own API does:
// GET <base>/api/list-tccs returns {"tccFiles": [...]} and each document is
// fetched from <base>/data/<name>.
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource for the given base URL.
func NewHTTPSource(base string) *HTTPSource {
	return &HTTPSource{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{},
	}
}

func (s *HTTPSource) ID() string {
	return s.base
}

// listResponse is the enumeration endpoint's body. The endpoint may report an
// in-band error alongside (or instead of) the file list.
type listResponse struct {
	TccFiles []string `json:"tccFiles"`
	Error    string   `json:"error"`
}

func (s *HTTPSource) List(ctx context.Context) ([]string, error) {
	body, err := s.get(ctx, s.base+"/api/list-tccs")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: invalid list response: %v", ErrEnumeration, err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: endpoint reported: %s", ErrEnumeration, resp.Error)
	}

	return resp.TccFiles, nil
}

func (s *HTTPSource) Get(ctx context.Context, name string) ([]byte, error) {
	return s.get(ctx, s.base+"/data/"+name)
}

func (s *HTTPSource) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s, status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// IndexSource serves a corpus from a plain directory index (Apache/nginx
// style): enumeration scrapes the anchor tags of <base>/ for hrefs ending in
// .json, and documents are fetched directly from <base>/<name>.
type IndexSource struct {
	base   string
	client *http.Client
}

// NewIndexSource creates an IndexSource for the given index page URL.
func NewIndexSource(base string) *IndexSource {
	return &IndexSource{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{},
	}
}

func (s *IndexSource) ID() string {
	return s.base
}

func (s *IndexSource) List(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: index returned status %d", ErrEnumeration, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse index HTML: %v", ErrEnumeration, err)
	}

	var names []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimPrefix(href, "./")
		if strings.HasSuffix(href, ".json") && !strings.Contains(href, "/") {
			names = append(names, href)
		}
	})

	return names, nil
}

func (s *IndexSource) Get(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"/"+name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s, status code: %d", name, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
