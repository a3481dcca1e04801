package gcalendar

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// FindSlots generates conflict-free candidate slots of the given duration
// between start and end. Busy intervals from every attendee are merged, padded
// by bufferMinutes on both sides, and the window is swept at the configured
// step within working-day hours. Each slot gets a fresh opaque ID.
func FindSlots(busy map[string][]BusyInterval, start, end time.Time, durationMinutes, bufferMinutes int, opts SlotOptions) []Slot {
	if opts.DayStartHour == 0 {
		opts.DayStartHour = 8
	}
	if opts.DayEndHour == 0 {
		opts.DayEndHour = 18
	}
	if opts.StepMinutes == 0 {
		opts.StepMinutes = 30
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	merged := mergeBusy(busy, bufferMinutes)
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(opts.StepMinutes) * time.Minute

	var slots []Slot
	for cursor := alignToStep(start.In(opts.Location), opts.StepMinutes); cursor.Before(end); cursor = cursor.Add(step) {
		slotEnd := cursor.Add(duration)
		if slotEnd.After(end) {
			break
		}
		if !withinDayHours(cursor, slotEnd, opts) {
			continue
		}
		if overlapsAny(cursor, slotEnd, merged) {
			continue
		}
		slots = append(slots, Slot{
			ID:              uuid.NewString(),
			StartTime:       cursor,
			EndTime:         slotEnd,
			DurationMinutes: durationMinutes,
		})
	}
	return slots
}

// FindSlots generates candidate slots from a busy map (as returned by
// Availability) using the client's configured working hours and step.
func (c *Client) FindSlots(busy map[string][]BusyInterval, start, end time.Time, durationMinutes, bufferMinutes int) []Slot {
	return FindSlots(busy, start, end, durationMinutes, bufferMinutes, SlotOptions{
		DayStartHour: c.cfg.DayStartHour,
		DayEndHour:   c.cfg.DayEndHour,
		StepMinutes:  c.cfg.StepMinutes,
		Location:     c.location,
	})
}

// mergeBusy flattens all attendees' busy intervals into a sorted,
// non-overlapping list, each interval padded by the buffer on both sides.
func mergeBusy(busy map[string][]BusyInterval, bufferMinutes int) []BusyInterval {
	buffer := time.Duration(bufferMinutes) * time.Minute

	var all []BusyInterval
	for _, intervals := range busy {
		for _, iv := range intervals {
			all = append(all, BusyInterval{
				Start: iv.Start.Add(-buffer),
				End:   iv.End.Add(buffer),
			})
		}
	}
	if len(all) == 0 {
		return nil
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Start.Before(all[j].Start) })

	merged := []BusyInterval{all[0]}
	for _, iv := range all[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

func overlapsAny(start, end time.Time, merged []BusyInterval) bool {
	for _, iv := range merged {
		if start.Before(iv.End) && iv.Start.Before(end) {
			return true
		}
	}
	return false
}

func withinDayHours(start, end time.Time, opts SlotOptions) bool {
	s := start.In(opts.Location)
	if s.Hour() < opts.DayStartHour {
		return false
	}
	e := end.In(opts.Location)
	// A slot ending exactly on the hour boundary is fine.
	if e.Hour() > opts.DayEndHour || (e.Hour() == opts.DayEndHour && e.Minute() > 0) {
		return false
	}
	// Slots must not span midnight.
	return s.Year() == e.Year() && s.YearDay() == e.YearDay()
}

// alignToStep rounds t up to the next multiple of stepMinutes within the hour.
func alignToStep(t time.Time, stepMinutes int) time.Time {
	step := time.Duration(stepMinutes) * time.Minute
	aligned := t.Truncate(step)
	if aligned.Before(t) {
		aligned = aligned.Add(step)
	}
	return aligned
}
