package reminders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KKaanaakk/pet-reminder/internal/pkg/validator"
)

const maxTitleLength = 100

var validCategories = map[string]bool{
	CategoryGeneral:   true,
	CategoryLifestyle: true,
	CategoryHealth:    true,
}

var validFrequencies = map[string]bool{
	FrequencyOnce:    true,
	FrequencyDaily:   true,
	FrequencyWeekly:  true,
	FrequencyMonthly: true,
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title cannot exceed %d characters", maxTitleLength)
	}
	return nil
}

func validateCategory(category string) error {
	if !validCategories[category] {
		return errors.New("category must be one of General, Lifestyle, Health")
	}
	return nil
}

func validateFrequency(frequency string) error {
	if !validFrequencies[frequency] {
		return errors.New("frequency must be one of Once, Daily, Weekly, Monthly")
	}
	return nil
}

// ValidateCreateReminder validates the full creation form
func ValidateCreateReminder(req *CreateReminderRequest) error {
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if strings.TrimSpace(req.PetID) == "" {
		return errors.New("petId is required")
	}
	if err := validateCategory(req.Category); err != nil {
		return err
	}
	if !validator.IsValidDate(req.StartDate) {
		return errors.New("startDate must be a valid YYYY-MM-DD date")
	}
	if req.EndDate != "" {
		if !validator.IsValidDate(req.EndDate) {
			return errors.New("endDate must be a valid YYYY-MM-DD date")
		}
		if req.EndDate < req.StartDate {
			return errors.New("endDate must not be before startDate")
		}
	}
	if !validator.IsValidTime(req.Time) {
		return errors.New("time must be a 24-hour HH:MM value")
	}
	return validateFrequency(req.Frequency)
}

// ValidateUpdateReminder validates only the fields present in the patch.
// The cross-field date check against the stored record happens in the
// service, which can see the existing range.
func ValidateUpdateReminder(req *UpdateReminderRequest) error {
	if req.Title != "" {
		if err := validateTitle(req.Title); err != nil {
			return err
		}
	}
	if req.Category != "" {
		if err := validateCategory(req.Category); err != nil {
			return err
		}
	}
	if req.StartDate != "" && !validator.IsValidDate(req.StartDate) {
		return errors.New("startDate must be a valid YYYY-MM-DD date")
	}
	if req.EndDate != "" && !validator.IsValidDate(req.EndDate) {
		return errors.New("endDate must be a valid YYYY-MM-DD date")
	}
	if req.StartDate != "" && req.EndDate != "" && req.EndDate < req.StartDate {
		return errors.New("endDate must not be before startDate")
	}
	if req.Time != "" && !validator.IsValidTime(req.Time) {
		return errors.New("time must be a 24-hour HH:MM value")
	}
	if req.Frequency != "" {
		return validateFrequency(req.Frequency)
	}
	return nil
}
