// ================== internal/features/reminders/schedule.go ==================
package reminders

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Time-of-day slot names
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotNight     = "night"
)

// SlotOrder is the display order of the four slots
var SlotOrder = []string{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

type slotRange struct {
	name  string
	start int
	end   int
}

// Checked in declaration order; the night range wraps past midnight
// (start > end means hour >= start || hour <= end).
var slotRanges = []slotRange{
	{SlotMorning, 5, 11},
	{SlotAfternoon, 12, 16},
	{SlotEvening, 17, 20},
	{SlotNight, 21, 4},
}

// TimeSlotFor classifies an HH:MM time-of-day string into a named slot.
// Malformed input falls back to morning.
func TimeSlotFor(t string) string {
	hour, err := strconv.Atoi(strings.SplitN(t, ":", 2)[0])
	if err != nil {
		return SlotMorning
	}

	for _, s := range slotRanges {
		if s.end < s.start {
			if hour >= s.start || hour <= s.end {
				return s.name
			}
		} else if hour >= s.start && hour <= s.end {
			return s.name
		}
	}

	return SlotMorning
}

// GroupByTimeSlot buckets reminders by time-of-day slot. All four slot keys
// are always present, even when empty. Each bucket is sorted ascending by
// the raw time string (zero-padded HH:MM sorts lexicographically in
// chronological order); the sort is stable so equal times keep their
// relative input order.
func GroupByTimeSlot(items []Reminder) map[string][]Reminder {
	grouped := make(map[string][]Reminder, len(SlotOrder))
	for _, slot := range SlotOrder {
		grouped[slot] = []Reminder{}
	}

	for _, r := range items {
		slot := TimeSlotFor(r.Time)
		grouped[slot] = append(grouped[slot], r)
	}

	for slot := range grouped {
		bucket := grouped[slot]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Time < bucket[j].Time
		})
	}

	return grouped
}

// ActiveOn reports whether the reminder's date range contains the given
// ISO calendar date. An unset endDate leaves the range open-ended.
// Lexicographic comparison of YYYY-MM-DD strings is date-correct.
func ActiveOn(r Reminder, date string) bool {
	if r.StartDate > date {
		return false
	}
	return r.EndDate == "" || r.EndDate >= date
}

// FormatTime renders an HH:MM string as a 12-hour clock time. The raw
// input is returned when it does not parse.
func FormatTime(t string) string {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return t
	}
	return parsed.Format("3:04 PM")
}

// FormatDate renders an ISO date as dd.MM.yyyy, falling back to the raw
// input when it does not parse.
func FormatDate(d string) string {
	parsed, err := time.Parse("2006-01-02", d)
	if err != nil {
		return d
	}
	return parsed.Format("02.01.2006")
}
