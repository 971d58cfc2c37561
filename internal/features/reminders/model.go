// ================== internal/features/reminders/model.go ==================
package reminders

import "time"

// Reminder categories
const (
	CategoryGeneral   = "General"
	CategoryLifestyle = "Lifestyle"
	CategoryHealth    = "Health"
)

// Recurrence frequencies. Stored and displayed; date matching is the
// [startDate, endDate] containment predicate regardless of frequency.
const (
	FrequencyOnce    = "Once"
	FrequencyDaily   = "Daily"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
)

// Completion lifecycle states
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// PetNameUnknown is the display name used when petId resolves to no pet
const PetNameUnknown = "Unknown Pet"

// FilterAll is the wildcard sentinel for petId/category query filters
const FilterAll = "all"

// Reminder represents a recurring pet-care reminder
// @Description Reminder with its schedule and completion state
type Reminder struct {
	ID        string `bson:"id" json:"id" example:"m1x2y3z4abcdefg"`
	Title     string `bson:"title" json:"title" example:"Morning walk"`
	PetID     string `bson:"petId" json:"petId" example:"1"`
	PetName   string `bson:"petName" json:"petName" example:"Browny"`
	Category  string `bson:"category" json:"category" example:"Lifestyle" enums:"General,Lifestyle,Health"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty" example:"Around the park"`
	StartDate string `bson:"startDate" json:"startDate" example:"2024-01-01"`
	EndDate   string `bson:"endDate,omitempty" json:"endDate,omitempty" example:"2024-01-31"`
	Time      string `bson:"time" json:"time" example:"07:30"`
	TimeSlot  string `bson:"timeSlot" json:"timeSlot" example:"morning" enums:"morning,afternoon,evening,night"`
	Frequency string `bson:"frequency" json:"frequency" example:"Daily" enums:"Once,Daily,Weekly,Monthly"`
	Status    string `bson:"status" json:"status" example:"pending" enums:"pending,completed"`
	// CompletedAt is set exactly when status is completed, null otherwise
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty" example:"2024-01-05T08:00:00Z"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt" example:"2024-01-01T00:00:00Z"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt" example:"2024-01-01T00:00:00Z"`
}

// CreateReminderRequest represents reminder creation data
// @Description Data required to create a new reminder
type CreateReminderRequest struct {
	Title     string `json:"title" binding:"required" example:"Morning walk"`
	PetID     string `json:"petId" binding:"required" example:"1"`
	Category  string `json:"category" binding:"required" example:"Lifestyle" enums:"General,Lifestyle,Health"`
	Notes     string `json:"notes" example:"Around the park"`
	StartDate string `json:"startDate" binding:"required" example:"2024-01-01"`
	EndDate   string `json:"endDate" example:"2024-01-31"`
	Time      string `json:"time" binding:"required" example:"07:30"`
	Frequency string `json:"frequency" binding:"required" example:"Daily" enums:"Once,Daily,Weekly,Monthly"`
}

// UpdateReminderRequest represents reminder update data
// @Description Data for updating an existing reminder; empty fields are left untouched
type UpdateReminderRequest struct {
	Title     string `json:"title" example:"Evening walk"`
	PetID     string `json:"petId" example:"2"`
	Category  string `json:"category" example:"Health" enums:"General,Lifestyle,Health"`
	Notes     string `json:"notes" example:"After dinner"`
	StartDate string `json:"startDate" example:"2024-02-01"`
	EndDate   string `json:"endDate" example:"2024-02-28"`
	Time      string `json:"time" example:"19:00"`
	Frequency string `json:"frequency" example:"Weekly" enums:"Once,Daily,Weekly,Monthly"`
}

// Query holds the conjunctive list filters. PetID and Category treat the
// "all" sentinel (and an empty string) as no constraint; Date keeps only
// reminders active on that calendar date.
type Query struct {
	PetID    string
	Category string
	Date     string
}
