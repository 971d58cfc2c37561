package reminders

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/KKaanaakk/pet-reminder/internal/features/pets"
	"github.com/KKaanaakk/pet-reminder/internal/pkg/retry"
	apperrors "github.com/KKaanaakk/pet-reminder/pkg/errors"
)

// -------------------------
// In-memory store fakes
// -------------------------

type memStore struct {
	byID     map[string]*Reminder
	order    []string
	findErrs int // inject this many transient Find failures
}

func newMemStore() *memStore {
	return &memStore{byID: map[string]*Reminder{}}
}

func (m *memStore) Insert(ctx context.Context, r *Reminder) error {
	copied := *r
	m.byID[r.ID] = &copied
	m.order = append(m.order, r.ID)
	return nil
}

func (m *memStore) FindByID(ctx context.Context, id string) (*Reminder, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (m *memStore) Find(ctx context.Context, q Query) ([]Reminder, error) {
	if m.findErrs > 0 {
		m.findErrs--
		return nil, errors.New("store: connection reset")
	}

	result := []Reminder{}
	for _, id := range m.order {
		r, ok := m.byID[id]
		if !ok {
			continue
		}
		if q.PetID != "" && q.PetID != FilterAll && r.PetID != q.PetID {
			continue
		}
		if q.Category != "" && q.Category != FilterAll && r.Category != q.Category {
			continue
		}
		if q.Date != "" && !ActiveOn(*r, q.Date) {
			continue
		}
		result = append(result, *r)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Time < result[j].Time
	})
	return result, nil
}

func (m *memStore) UpdateFields(ctx context.Context, id string, fields bson.M) (*Reminder, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	for key, value := range fields {
		switch key {
		case "title":
			r.Title = value.(string)
		case "petId":
			r.PetID = value.(string)
		case "petName":
			r.PetName = value.(string)
		case "category":
			r.Category = value.(string)
		case "notes":
			r.Notes = value.(string)
		case "startDate":
			r.StartDate = value.(string)
		case "endDate":
			r.EndDate = value.(string)
		case "time":
			r.Time = value.(string)
		case "timeSlot":
			r.TimeSlot = value.(string)
		case "frequency":
			r.Frequency = value.(string)
		case "status":
			r.Status = value.(string)
		case "completedAt":
			if value == nil {
				r.CompletedAt = nil
			} else {
				ts := value.(time.Time)
				r.CompletedAt = &ts
			}
		case "updatedAt":
			r.UpdatedAt = value.(time.Time)
		}
	}

	copied := *r
	return &copied, nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memPets struct {
	byID map[string]pets.Pet
}

func (m *memPets) FindByID(ctx context.Context, id string) (*pets.Pet, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func newTestService(store *memStore) *Service {
	lookup := &memPets{byID: map[string]pets.Pet{
		"1": {ID: "1", Name: "Browny"},
		"2": {ID: "2", Name: "Whiskers"},
	}}
	s := NewService(store, lookup, retry.Policy{Attempts: 3, Delay: time.Millisecond})
	return s
}

func validCreateRequest() *CreateReminderRequest {
	return &CreateReminderRequest{
		Title:     "Morning walk",
		PetID:     "1",
		Category:  CategoryLifestyle,
		StartDate: "2024-01-01",
		Time:      "07:30",
		Frequency: FrequencyDaily,
	}
}

// -------------------------
// Tests
// -------------------------

func TestCreateSetsDefaults(t *testing.T) {
	store := newMemStore()
	s := newTestService(store)

	created, err := s.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NotEmpty(t, created.ID)
	require.Equal(t, "Browny", created.PetName)
	require.Equal(t, SlotMorning, created.TimeSlot)
	require.Equal(t, StatusPending, created.Status)
	require.Nil(t, created.CompletedAt)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	stored, err := store.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateWithUnknownPetStillSucceeds(t *testing.T) {
	s := newTestService(newMemStore())

	req := validCreateRequest()
	req.PetID = "nope"

	created, err := s.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, PetNameUnknown, created.PetName)
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := newTestService(newMemStore())

	created, err := s.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	completed, err := s.Toggle(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	require.False(t, completed.CompletedAt.Before(created.CreatedAt))
	require.False(t, completed.UpdatedAt.Before(created.UpdatedAt))

	pending, err := s.Toggle(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPending, pending.Status)
	require.Nil(t, pending.CompletedAt)
}

func TestToggleMissingReminder(t *testing.T) {
	s := newTestService(newMemStore())

	_, err := s.Toggle(context.Background(), "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateRepointsPetAndRefreshesName(t *testing.T) {
	s := newTestService(newMemStore())

	created, err := s.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), created.ID, &UpdateReminderRequest{PetID: "2"})
	require.NoError(t, err)
	require.Equal(t, "2", updated.PetID)
	require.Equal(t, "Whiskers", updated.PetName)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdateWithUnknownPetDegradesToSentinel(t *testing.T) {
	s := newTestService(newMemStore())

	created, err := s.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), created.ID, &UpdateReminderRequest{PetID: "ghost"})
	require.NoError(t, err)
	require.Equal(t, PetNameUnknown, updated.PetName)
}

func TestUpdateTimeRederivesSlot(t *testing.T) {
	s := newTestService(newMemStore())

	created, err := s.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.Equal(t, SlotMorning, created.TimeSlot)

	updated, err := s.Update(context.Background(), created.ID, &UpdateReminderRequest{Time: "22:00"})
	require.NoError(t, err)
	require.Equal(t, "22:00", updated.Time)
	require.Equal(t, SlotNight, updated.TimeSlot)
}

func TestUpdateRejectsEndDateBeforeStoredStartDate(t *testing.T) {
	s := newTestService(newMemStore())

	created, err := s.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = s.Update(context.Background(), created.ID, &UpdateReminderRequest{EndDate: "2023-12-01"})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	s := newTestService(newMemStore())

	created, err := s.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = s.Update(context.Background(), created.ID, &UpdateReminderRequest{})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateMissingReminder(t *testing.T) {
	s := newTestService(newMemStore())

	_, err := s.Update(context.Background(), "missing", &UpdateReminderRequest{Title: "New title"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	s := newTestService(newMemStore())

	created, err := s.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), created.ID))

	_, err = s.Get(context.Background(), created.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	err = s.Delete(context.Background(), created.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListFiltersAndOrdering(t *testing.T) {
	s := newTestService(newMemStore())
	ctx := context.Background()

	walk := validCreateRequest()
	walk.Title = "Walk"
	walk.Time = "19:00"
	walk.EndDate = "2024-03-15"
	_, err := s.Create(ctx, walk)
	require.NoError(t, err)

	feed := validCreateRequest()
	feed.Title = "Feed"
	feed.PetID = "2"
	feed.Category = CategoryGeneral
	feed.Time = "07:00"
	_, err = s.Create(ctx, feed)
	require.NoError(t, err)

	expired := validCreateRequest()
	expired.Title = "Old medication"
	expired.Category = CategoryHealth
	expired.EndDate = "2024-01-31"
	expired.Time = "12:00"
	_, err = s.Create(ctx, expired)
	require.NoError(t, err)

	// Wildcard pet filter with a date keeps everything still active,
	// ordered by time ascending.
	result, err := s.List(ctx, Query{PetID: FilterAll, Date: "2024-03-01"})
	require.NoError(t, err)
	require.Equal(t, []string{"Feed", "Walk"}, titles(result))

	// Conjunctive pet + category filter.
	result, err = s.List(ctx, Query{PetID: "1", Category: CategoryLifestyle})
	require.NoError(t, err)
	require.Equal(t, []string{"Walk"}, titles(result))

	// No filters returns everything.
	result, err = s.List(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, result, 3)
}

func TestListRetriesTransientFailures(t *testing.T) {
	store := newMemStore()
	store.findErrs = 2
	s := newTestService(store)

	_, err := s.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	result, err := s.List(context.Background(), Query{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Zero(t, store.findErrs)
}

func TestListSurfacesErrorAfterRetryExhaustion(t *testing.T) {
	store := newMemStore()
	store.findErrs = 10
	s := newTestService(store)

	_, err := s.List(context.Background(), Query{})
	require.Error(t, err)
}

func TestListGroupedBucketsResults(t *testing.T) {
	s := newTestService(newMemStore())
	ctx := context.Background()

	late := validCreateRequest()
	late.Title = "Late snack"
	late.Time = "23:30"
	_, err := s.Create(ctx, late)
	require.NoError(t, err)

	early := validCreateRequest()
	early.Title = "Night meds"
	early.Time = "00:15"
	_, err = s.Create(ctx, early)
	require.NoError(t, err)

	grouped, err := s.ListGrouped(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, grouped, 4)
	require.Equal(t, []string{"Night meds", "Late snack"}, titles(grouped[SlotNight]))
	require.Empty(t, grouped[SlotMorning])
}

func titles(items []Reminder) []string {
	var out []string
	for _, r := range items {
		out = append(out, r.Title)
	}
	return out
}
