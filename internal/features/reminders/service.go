package reminders

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/KKaanaakk/pet-reminder/internal/features/pets"
	"github.com/KKaanaakk/pet-reminder/internal/pkg/ident"
	"github.com/KKaanaakk/pet-reminder/internal/pkg/retry"
	apperrors "github.com/KKaanaakk/pet-reminder/pkg/errors"
)

// Store is the document-store contract the service consumes. Satisfied by
// *Repository in production and by in-memory fakes in tests.
type Store interface {
	Insert(ctx context.Context, reminder *Reminder) error
	FindByID(ctx context.Context, id string) (*Reminder, error)
	Find(ctx context.Context, q Query) ([]Reminder, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) (*Reminder, error)
	Delete(ctx context.Context, id string) error
}

// PetLookup resolves pet ids for petName denormalization. A nil pet with
// a nil error means the pet does not exist.
type PetLookup interface {
	FindByID(ctx context.Context, id string) (*pets.Pet, error)
}

// Service owns the reminder lifecycle: creation, partial update, the
// pending/completed toggle, deletion, and filtered queries.
type Service struct {
	store Store
	pets  PetLookup
	reads retry.Policy
	now   func() time.Time
	newID func() string
}

func NewService(store Store, petLookup PetLookup, reads retry.Policy) *Service {
	return &Service{
		store: store,
		pets:  petLookup,
		reads: reads,
		now:   time.Now,
		newID: ident.New,
	}
}

// resolvePetName denormalizes the referenced pet's display name. A
// missing pet degrades to the sentinel name rather than failing; only
// store errors propagate.
func (s *Service) resolvePetName(ctx context.Context, petID string) (string, error) {
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return "", err
	}
	if pet == nil {
		return PetNameUnknown, nil
	}
	return pet.Name, nil
}

// Create builds and persists a new reminder: fresh id, derived time slot,
// pending status, both timestamps set to now.
func (s *Service) Create(ctx context.Context, req *CreateReminderRequest) (*Reminder, error) {
	petName, err := s.resolvePetName(ctx, req.PetID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	reminder := &Reminder{
		ID:        s.newID(),
		Title:     req.Title,
		PetID:     req.PetID,
		PetName:   petName,
		Category:  req.Category,
		Notes:     req.Notes,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Time:      req.Time,
		TimeSlot:  TimeSlotFor(req.Time),
		Frequency: req.Frequency,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Insert(ctx, reminder); err != nil {
		return nil, err
	}

	return reminder, nil
}

// Get returns the reminder with the given id. Reads are retried against
// transient store failures.
func (s *Service) Get(ctx context.Context, id string) (*Reminder, error) {
	var reminder *Reminder
	err := s.reads.Do(ctx, func(ctx context.Context) error {
		var err error
		reminder, err = s.store.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, apperrors.ErrNotFound
	}
	return reminder, nil
}

// List runs the filtered query, ordered by time ascending. Reads are
// retried; writes never are.
func (s *Service) List(ctx context.Context, q Query) ([]Reminder, error) {
	var result []Reminder
	err := s.reads.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.store.Find(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListGrouped runs the filtered query and buckets the result by time slot
// for display.
func (s *Service) ListGrouped(ctx context.Context, q Query) (map[string][]Reminder, error) {
	result, err := s.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return GroupByTimeSlot(result), nil
}

// Update merges the non-empty fields of the patch into the stored record.
// A patched petId re-resolves the denormalized petName; a patched time
// re-derives the slot; updatedAt always refreshes.
func (s *Service) Update(ctx context.Context, id string, req *UpdateReminderRequest) (*Reminder, error) {
	fields := bson.M{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.PetID != "" {
		petName, err := s.resolvePetName(ctx, req.PetID)
		if err != nil {
			return nil, err
		}
		fields["petId"] = req.PetID
		fields["petName"] = petName
	}
	if req.Category != "" {
		fields["category"] = req.Category
	}
	if req.Notes != "" {
		fields["notes"] = req.Notes
	}
	if req.StartDate != "" {
		fields["startDate"] = req.StartDate
	}
	if req.EndDate != "" {
		fields["endDate"] = req.EndDate
	}
	if req.Time != "" {
		fields["time"] = req.Time
		fields["timeSlot"] = TimeSlotFor(req.Time)
	}
	if req.Frequency != "" {
		fields["frequency"] = req.Frequency
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}

	if err := s.checkDateRange(ctx, id, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	fields["updatedAt"] = s.now()

	return s.store.UpdateFields(ctx, id, fields)
}

// checkDateRange enforces endDate >= startDate across a partial patch,
// reading the stored record when the patch carries only one side of the
// range.
func (s *Service) checkDateRange(ctx context.Context, id, startDate, endDate string) error {
	if startDate == "" && endDate == "" {
		return nil
	}

	if startDate == "" || endDate == "" {
		existing, err := s.store.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperrors.ErrNotFound
		}
		if startDate == "" {
			startDate = existing.StartDate
		}
		if endDate == "" {
			endDate = existing.EndDate
		}
	}

	if endDate != "" && endDate < startDate {
		return fmt.Errorf("%w: endDate must not be before startDate", apperrors.ErrValidation)
	}
	return nil
}

// Toggle flips the reminder between pending and completed. completedAt is
// stamped on the transition to completed and cleared on the way back;
// applying Toggle twice restores the original state.
func (s *Service) Toggle(ctx context.Context, id string) (*Reminder, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperrors.ErrNotFound
	}

	now := s.now()
	fields := bson.M{"updatedAt": now}
	if current.Status == StatusCompleted {
		fields["status"] = StatusPending
		fields["completedAt"] = nil
	} else {
		fields["status"] = StatusCompleted
		fields["completedAt"] = now
	}

	return s.store.UpdateFields(ctx, id, fields)
}

// Delete removes the reminder, reporting ErrNotFound when nothing matched.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
