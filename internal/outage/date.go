package outage

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Errors returned by ParseDateInfo. An unrecognized month name is reported
// separately from text that matches neither pattern, so callers and tests
// can tell a vocabulary problem from a format problem.
var (
	ErrUnknownFormat = errors.New("date text matches no known format")
	ErrUnknownMonth  = errors.New("unknown month name")
)

// monthNames maps Polish genitive month names, as they appear in notice
// date lines, to calendar months.
var monthNames = map[string]time.Month{
	"stycznia":     time.January,
	"lutego":       time.February,
	"marca":        time.March,
	"kwietnia":     time.April,
	"maja":         time.May,
	"czerwca":      time.June,
	"lipca":        time.July,
	"sierpnia":     time.August,
	"września":     time.September,
	"października": time.October,
	"listopada":    time.November,
	"grudnia":      time.December,
}

// dateFormat is one recognized shape of a notice date line. Window formats
// capture two HH:MM pairs (start and end of a same-day window); deadline
// formats capture a single HH:MM (expected restoration time).
type dateFormat struct {
	re     *regexp.Regexp
	window bool
}

// The two formats the operator publishes, tried in order.
// Example window:   "8 grudnia 2025 r. w godz. 08:00 - 16:00"
// Example deadline: "19 listopada 2025 r.  do godziny 12:30"
var dateFormats = []dateFormat{
	{
		re:     regexp.MustCompile(`(\d{1,2})\s+(\p{L}+)\s+(\d{4})\s+r\.\s+w\s+godz\.\s+(\d{1,2}):(\d{1,2})\s*-\s*(\d{1,2}):(\d{1,2})`),
		window: true,
	},
	{
		re:     regexp.MustCompile(`(\d{1,2})\s+(\p{L}+)\s+(\d{4})\s+r\.\s+do\s+godziny\s+(\d{1,2}):(\d{1,2})`),
		window: false,
	},
}

// ParseDateInfo normalizes the free-text date line of a notice into
// timestamps. For the planned-window format both start and end are returned;
// for the unplanned-deadline format start is nil. Timestamps are naive local
// times, as published.
func ParseDateInfo(text string) (start *time.Time, end time.Time, err error) {
	for _, f := range dateFormats {
		m := f.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		month, ok := monthNames[strings.ToLower(m[2])]
		if !ok {
			return nil, time.Time{}, fmt.Errorf("%w: %q", ErrUnknownMonth, m[2])
		}

		day := atoi(m[1])
		year := atoi(m[3])

		if f.window {
			s := time.Date(year, month, day, atoi(m[4]), atoi(m[5]), 0, 0, time.Local)
			e := time.Date(year, month, day, atoi(m[6]), atoi(m[7]), 0, 0, time.Local)
			return &s, e, nil
		}

		e := time.Date(year, month, day, atoi(m[4]), atoi(m[5]), 0, 0, time.Local)
		return nil, e, nil
	}
	return nil, time.Time{}, fmt.Errorf("%w: %q", ErrUnknownFormat, text)
}

// atoi converts digits already validated by the pattern match.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
