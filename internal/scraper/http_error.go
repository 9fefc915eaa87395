package scraper

import "fmt"

// HTTPStatusError reports a non-2xx response from the outage endpoint.
// It is returned unmodified to the caller; the scraper never retries.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}
