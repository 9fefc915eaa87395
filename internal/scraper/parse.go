package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/enea-outages/internal/logger"
	"github.com/pfrederiksen/enea-outages/internal/outage"
)

// Structural markers of the outage pages. Each notice lives in a container
// with the "unpl block info" classes; the region form exposes its options in
// a select with id "oddzial".
const (
	outageBlockSelector  = "div.unpl.block.info"
	regionSelectSelector = "select#oddzial"

	regionHeadingSelector = "h4.title_"
	descriptionSelector   = "p.description"
	dateInfoSelector      = "p.bold.subtext"
)

// parseOutages extracts outage records from a fetched page, in document
// order. A block that cannot be parsed is logged and skipped so one bad
// notice never discards the rest of the listing. Zero blocks yields an
// empty slice, not an error.
func parseOutages(r io.Reader) ([]*outage.Outage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	outages := make([]*outage.Outage, 0)
	doc.Find(outageBlockSelector).Each(func(i int, block *goquery.Selection) {
		o, err := parseBlock(block)
		if err != nil {
			logger.Warn("skipping malformed outage block", logger.Fields{"index": i}, err)
			return
		}
		outages = append(outages, o)
	})

	return outages, nil
}

// parseBlock extracts a single outage record from one notice container.
// Missing heading or description fall back to sentinel values; a date line
// that cannot be normalized is an error, left to the caller to handle.
func parseBlock(block *goquery.Selection) (*outage.Outage, error) {
	region := blockText(block, regionHeadingSelector, outage.UnknownRegion)
	description := blockText(block, descriptionSelector, outage.NoDescription)
	dateInfo := blockText(block, dateInfoSelector, "")

	start, end, err := outage.ParseDateInfo(dateInfo)
	if err != nil {
		return nil, err
	}

	return &outage.Outage{
		Region:      region,
		Description: description,
		StartTime:   start,
		EndTime:     end,
	}, nil
}

// parseRegions extracts the non-empty option values of the region selector,
// in document order. An absent selector is reported as an empty list with a
// warning, since every known page variant carries it.
func parseRegions(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	sel := doc.Find(regionSelectSelector)
	if sel.Length() == 0 {
		logger.Warn("region selector not found; page structure may have changed", nil, nil)
		return []string{}, nil
	}

	regions := make([]string, 0)
	sel.First().Find("option").Each(func(_ int, opt *goquery.Selection) {
		if value, ok := opt.Attr("value"); ok && value != "" {
			regions = append(regions, value)
		}
	})

	return regions, nil
}

// blockText returns the trimmed text of the first element matching selector
// inside block, or fallback when no such element exists.
func blockText(block *goquery.Selection, selector, fallback string) string {
	sel := block.Find(selector)
	if sel.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(sel.First().Text())
}
