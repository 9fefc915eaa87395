package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pfrederiksen/enea-outages/internal/config"
	"github.com/pfrederiksen/enea-outages/internal/filter"
	"github.com/pfrederiksen/enea-outages/internal/outage"
)

const (
	BaseURL       = "https://wylaczenia-eneaoperator.pl/index.php"
	UserAgent     = "enea-outages-cli/1.0 (github.com/pfrederiksen/enea-outages)"
	Timeout       = 30 * time.Second
	DefaultRegion = "Poznań"
)

// Scraper handles fetching and parsing Enea Operator outage pages
type Scraper struct {
	client        *http.Client
	baseURL       string
	userAgent     string
	defaultRegion string
}

// New creates a new Scraper instance with default settings
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:       BaseURL,
		userAgent:     UserAgent,
		defaultRegion: DefaultRegion,
	}
}

// NewWithConfig creates a Scraper using the provided configuration
func NewWithConfig(cfg *config.Config) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:       cfg.BaseURL,
		userAgent:     cfg.UserAgent,
		defaultRegion: cfg.DefaultRegion,
	}
}

// FetchOutages fetches and parses all outage notices of the given category
// for a region. Malformed notice blocks are logged and skipped; the returned
// order is document order.
func (s *Scraper) FetchOutages(region string, typ outage.Type) ([]*outage.Outage, error) {
	return s.FetchOutagesContext(context.Background(), region, typ)
}

// FetchOutagesContext is FetchOutages with a caller-supplied context.
// Cancelling the context abandons the in-flight request.
func (s *Scraper) FetchOutagesContext(ctx context.Context, region string, typ outage.Type) ([]*outage.Outage, error) {
	body, err := s.fetch(ctx, typ.PageParam(), region)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return parseOutages(body)
}

// FetchOutagesForAddress fetches outage notices for a region and retains only
// those whose description mentions the address (case-insensitive substring).
// The endpoint has no address-level query, so filtering happens client-side.
func (s *Scraper) FetchOutagesForAddress(address, region string, typ outage.Type) ([]*outage.Outage, error) {
	return s.FetchOutagesForAddressContext(context.Background(), address, region, typ)
}

// FetchOutagesForAddressContext is FetchOutagesForAddress with a
// caller-supplied context.
func (s *Scraper) FetchOutagesForAddressContext(ctx context.Context, address, region string, typ outage.Type) ([]*outage.Outage, error) {
	outages, err := s.FetchOutagesContext(ctx, region, typ)
	if err != nil {
		return nil, err
	}

	f := &filter.Filter{Address: address}
	return f.Apply(outages), nil
}

// FetchRegions fetches the list of regions (oddziały) the operator publishes
// outage pages for. The region list is identical on every page variant, so
// any valid page serves as the source.
func (s *Scraper) FetchRegions() ([]string, error) {
	return s.FetchRegionsContext(context.Background())
}

// FetchRegionsContext is FetchRegions with a caller-supplied context.
func (s *Scraper) FetchRegionsContext(ctx context.Context) ([]string, error) {
	body, err := s.fetch(ctx, outage.TypeUnplanned.PageParam(), s.defaultRegion)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return parseRegions(body)
}

// DefaultRegion returns the region used when the caller does not name one.
func (s *Scraper) DefaultRegion() string {
	return s.defaultRegion
}

// fetch issues a single GET against the outage endpoint and returns the
// response body. Exactly one request per call; no retry, no backoff.
func (s *Scraper) fetch(ctx context.Context, page, region string) (io.ReadCloser, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	q := u.Query()
	q.Set("page", page)
	q.Set("oddzial", region)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &HTTPStatusError{URL: u.String(), StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}
