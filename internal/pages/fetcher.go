// Package pages implements the page-lifecycle controller: named page
// states, fragment retrieval over HTTP, and the mount/unmount hooks that
// replace the document-wide listener re-binding of a classic fragment SPA.
package pages

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/brunohmachado/vitrine/internal/common"
)

// Page names known to the storefront.
const (
	Home     = "home"
	Promo    = "promo"
	Product  = "product"
	Account  = "account"
	Login    = "login"
	Register = "register"
	Cart     = "cart"
	Admin    = "admin"
)

// Fetcher retrieves the markup fragment for a named page.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (string, error)
}

// HTTPFetcher loads fragments from <base>/pages/<name>.html. Requests carry
// no client-side timeout and are never retried; a failed fetch is terminal
// for that navigation.
type HTTPFetcher struct {
	base   string
	client *http.Client
}

func NewHTTPFetcher(base string) *HTTPFetcher {
	return &HTTPFetcher{base: strings.TrimRight(base, "/"), client: &http.Client{}}
}

// Fetch returns the fragment markup. Any non-2xx status is reported as
// common.ErrPageNotFound.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/pages/%s.html", f.base, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build fragment request for %q: %w", name, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch fragment %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fragment %q: %w", name, common.ErrPageNotFound)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read fragment %q: %w", name, err)
	}
	return string(body), nil
}
