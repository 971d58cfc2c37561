package reminders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCreateReminder(t *testing.T) {
	base := func() CreateReminderRequest {
		return CreateReminderRequest{
			Title:     "Morning walk",
			PetID:     "1",
			Category:  CategoryLifestyle,
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
			Time:      "07:30",
			Frequency: FrequencyDaily,
		}
	}

	valid := base()
	require.NoError(t, ValidateCreateReminder(&valid))

	noEnd := base()
	noEnd.EndDate = ""
	require.NoError(t, ValidateCreateReminder(&noEnd))

	cases := []struct {
		name   string
		mutate func(*CreateReminderRequest)
	}{
		{"empty title", func(r *CreateReminderRequest) { r.Title = "  " }},
		{"title too long", func(r *CreateReminderRequest) { r.Title = strings.Repeat("x", 101) }},
		{"missing petId", func(r *CreateReminderRequest) { r.PetID = "" }},
		{"bad category", func(r *CreateReminderRequest) { r.Category = "Chores" }},
		{"bad start date", func(r *CreateReminderRequest) { r.StartDate = "01-01-2024" }},
		{"bad end date", func(r *CreateReminderRequest) { r.EndDate = "soon" }},
		{"inverted range", func(r *CreateReminderRequest) { r.EndDate = "2023-12-31" }},
		{"bad time", func(r *CreateReminderRequest) { r.Time = "7:30" }},
		{"bad frequency", func(r *CreateReminderRequest) { r.Frequency = "Hourly" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base()
			tc.mutate(&req)
			require.Error(t, ValidateCreateReminder(&req))
		})
	}
}

func TestValidateCreateReminderMaxLengthTitle(t *testing.T) {
	req := CreateReminderRequest{
		Title:     strings.Repeat("x", 100),
		PetID:     "1",
		Category:  CategoryGeneral,
		StartDate: "2024-01-01",
		Time:      "12:00",
		Frequency: FrequencyOnce,
	}
	require.NoError(t, ValidateCreateReminder(&req))
}

func TestValidateUpdateReminder(t *testing.T) {
	// Empty patch is valid here; the service decides whether there is
	// anything to apply.
	require.NoError(t, ValidateUpdateReminder(&UpdateReminderRequest{}))

	require.NoError(t, ValidateUpdateReminder(&UpdateReminderRequest{Title: "New title"}))
	require.NoError(t, ValidateUpdateReminder(&UpdateReminderRequest{Time: "23:00"}))
	require.NoError(t, ValidateUpdateReminder(&UpdateReminderRequest{
		StartDate: "2024-02-01",
		EndDate:   "2024-02-28",
	}))

	require.Error(t, ValidateUpdateReminder(&UpdateReminderRequest{Title: strings.Repeat("x", 101)}))
	require.Error(t, ValidateUpdateReminder(&UpdateReminderRequest{Category: "Misc"}))
	require.Error(t, ValidateUpdateReminder(&UpdateReminderRequest{Time: "25:00"}))
	require.Error(t, ValidateUpdateReminder(&UpdateReminderRequest{Frequency: "Yearly"}))
	require.Error(t, ValidateUpdateReminder(&UpdateReminderRequest{StartDate: "2024/02/01"}))
	require.Error(t, ValidateUpdateReminder(&UpdateReminderRequest{
		StartDate: "2024-02-28",
		EndDate:   "2024-02-01",
	}))
}
