package reminders

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeSlotForHourRanges(t *testing.T) {
	expected := map[int]string{}
	for h := 5; h <= 11; h++ {
		expected[h] = SlotMorning
	}
	for h := 12; h <= 16; h++ {
		expected[h] = SlotAfternoon
	}
	for h := 17; h <= 20; h++ {
		expected[h] = SlotEvening
	}
	for _, h := range []int{21, 22, 23, 0, 1, 2, 3, 4} {
		expected[h] = SlotNight
	}

	for hour := 0; hour < 24; hour++ {
		got := TimeSlotFor(fmt.Sprintf("%02d:00", hour))
		require.Equal(t, expected[hour], got, "hour %d", hour)
	}
}

func TestTimeSlotForMinutesDoNotMatter(t *testing.T) {
	require.Equal(t, SlotMorning, TimeSlotFor("11:59"))
	require.Equal(t, SlotAfternoon, TimeSlotFor("12:01"))
	require.Equal(t, SlotNight, TimeSlotFor("04:59"))
	require.Equal(t, SlotNight, TimeSlotFor("21:00"))
}

func TestTimeSlotForMalformedInput(t *testing.T) {
	for _, input := range []string{"", "noon", "ab:cd", ":30"} {
		require.Equal(t, SlotMorning, TimeSlotFor(input), "input %q", input)
	}
}

func TestGroupByTimeSlotAlwaysHasFourKeys(t *testing.T) {
	grouped := GroupByTimeSlot(nil)

	require.Len(t, grouped, 4)
	for _, slot := range SlotOrder {
		require.Contains(t, grouped, slot)
		require.Empty(t, grouped[slot])
		require.NotNil(t, grouped[slot])
	}
}

func TestGroupByTimeSlotBucketsAndSorts(t *testing.T) {
	items := []Reminder{
		{ID: "walk", Time: "19:00"},
		{ID: "med", Time: "08:30"},
		{ID: "feed", Time: "07:00"},
		{ID: "lunch", Time: "13:00"},
	}

	grouped := GroupByTimeSlot(items)

	require.Equal(t, []string{"feed", "med"}, ids(grouped[SlotMorning]))
	require.Equal(t, []string{"lunch"}, ids(grouped[SlotAfternoon]))
	require.Equal(t, []string{"walk"}, ids(grouped[SlotEvening]))
	require.Empty(t, grouped[SlotNight])
}

func TestGroupByTimeSlotSortIsStable(t *testing.T) {
	items := []Reminder{
		{ID: "first", Time: "09:00"},
		{ID: "second", Time: "09:00"},
		{ID: "third", Time: "09:00"},
	}

	grouped := GroupByTimeSlot(items)
	require.Equal(t, []string{"first", "second", "third"}, ids(grouped[SlotMorning]))
}

func TestGroupByTimeSlotNightSortsByRawTime(t *testing.T) {
	// Ordering within the night bucket is by the raw time string, not by
	// chronological overnight sequence: 00:15 sorts before 23:30.
	a := Reminder{ID: "a", Time: "23:30", StartDate: "2024-01-01"}
	b := Reminder{ID: "b", Time: "00:15", StartDate: "2024-01-01"}

	grouped := GroupByTimeSlot([]Reminder{a, b})

	require.Equal(t, []string{"b", "a"}, ids(grouped[SlotNight]))
}

func TestActiveOn(t *testing.T) {
	bounded := Reminder{StartDate: "2024-01-01", EndDate: "2024-01-10"}
	require.True(t, ActiveOn(bounded, "2024-01-05"))
	require.True(t, ActiveOn(bounded, "2024-01-01"))
	require.True(t, ActiveOn(bounded, "2024-01-10"))
	require.False(t, ActiveOn(bounded, "2023-12-31"))
	require.False(t, ActiveOn(bounded, "2024-01-11"))

	openEnded := Reminder{StartDate: "2024-01-01"}
	require.True(t, ActiveOn(openEnded, "2024-01-11"))
	require.True(t, ActiveOn(openEnded, "2030-06-15"))
	require.False(t, ActiveOn(openEnded, "2023-12-31"))
}

func TestFormatTime(t *testing.T) {
	require.Equal(t, "7:30 AM", FormatTime("07:30"))
	require.Equal(t, "12:00 AM", FormatTime("00:00"))
	require.Equal(t, "11:45 PM", FormatTime("23:45"))
	require.Equal(t, "bogus", FormatTime("bogus"))
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "05.01.2024", FormatDate("2024-01-05"))
	require.Equal(t, "31.12.2023", FormatDate("2023-12-31"))
	require.Equal(t, "not-a-date", FormatDate("not-a-date"))
}

func ids(items []Reminder) []string {
	var out []string
	for _, r := range items {
		out = append(out, r.ID)
	}
	return out
}
