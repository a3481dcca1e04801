package gcalendar

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
)

// Availability returns the busy intervals for each attendee within the given
// window, keyed by attendee email. Results are cached briefly so repeated
// recommendation runs for the same window do not hammer the FreeBusy API.
func (c *Client) Availability(ctx context.Context, attendees []string, start, end time.Time) (map[string][]BusyInterval, error) {
	key := busyCacheKey(attendees, start, end)
	if cached, ok := c.busyCache.Get(key); ok {
		return cached, nil
	}

	items := make([]*calendar.FreeBusyRequestItem, 0, len(attendees))
	for _, email := range attendees {
		items = append(items, &calendar.FreeBusyRequestItem{Id: email})
	}

	req := &calendar.FreeBusyRequest{
		TimeMin: start.Format(time.RFC3339),
		TimeMax: end.Format(time.RFC3339),
		Items:   items,
	}

	resp, err := c.service.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	busy := make(map[string][]BusyInterval, len(attendees))
	for email, cal := range resp.Calendars {
		intervals := make([]BusyInterval, 0, len(cal.Busy))
		for _, period := range cal.Busy {
			s, sErr := time.Parse(time.RFC3339, period.Start)
			e, eErr := time.Parse(time.RFC3339, period.End)
			if sErr != nil || eErr != nil {
				continue
			}
			intervals = append(intervals, BusyInterval{Start: s, End: e})
		}
		busy[email] = intervals
	}

	c.busyCache.Add(key, busy)
	return busy, nil
}

func busyCacheKey(attendees []string, start, end time.Time) string {
	sorted := make([]string, len(attendees))
	copy(sorted, attendees)
	sort.Strings(sorted)
	return fmt.Sprintf("%s|%d|%d", strings.Join(sorted, ","), start.Unix(), end.Unix())
}
