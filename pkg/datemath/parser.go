package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date phrases and simple date/clock strings to
// absolute values. All methods take an explicit base time so callers stay
// deterministic under test.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unrecognized relative date: %q", relative)
}

// FindRelativeDate scans free text for the first recognizable relative date
// phrase ("tomorrow", "next monday", "in 3 days") and resolves it against
// baseTime. The bool reports whether anything was found.
func (p *Parser) FindRelativeDate(text string, baseTime time.Time) (time.Time, bool) {
	lowered := strings.ToLower(text)

	for _, word := range []string{"tomorrow", "today"} {
		if strings.Contains(lowered, word) {
			t, _ := p.Parse(word, baseTime)
			return t, true
		}
	}

	if m := regexp.MustCompile(`next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`).FindString(lowered); m != "" {
		if t, err := p.parseNextWeekday(m, baseTime); err == nil {
			return t, true
		}
	}

	if m := inDurationRe.FindString(lowered); m != "" {
		if t, err := p.parseInDuration(m, baseTime); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// ParseDate parses a YYYY-MM-DD string in the parser's timezone.
func (p *Parser) ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// ParseClock parses an HH:MM string into hour and minute.
func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock %q", clock)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", clock)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", clock)
	}

	return hour, minute, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// CalendarDays returns the number of whole calendar days from a to b, each
// interpreted in its own location. Negative when b is before a.
func CalendarDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	dayA := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	dayB := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(dayB.Sub(dayA).Hours() / 24)
}
