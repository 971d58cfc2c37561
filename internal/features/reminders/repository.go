package reminders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KKaanaakk/pet-reminder/internal/database"
	apperrors "github.com/KKaanaakk/pet-reminder/pkg/errors"
)

const collectionName = "reminders"

// Repository is the MongoDB-backed reminder store
type Repository struct {
	manager *database.Manager
}

func NewRepository(manager *database.Manager) *Repository {
	r := &Repository{manager: manager}

	// Index creation is best-effort; the store may not be reachable yet.
	if db, err := manager.Acquire(context.Background()); err == nil {
		db.Collection(collectionName).Indexes().CreateMany(context.Background(), []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "petId", Value: 1}}},
			{Keys: bson.D{{Key: "startDate", Value: 1}}},
			{Keys: bson.D{{Key: "time", Value: 1}}},
		})
	}

	return r
}

func (r *Repository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(collectionName), nil
}

func (r *Repository) Insert(ctx context.Context, reminder *Reminder) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	_, err = coll.InsertOne(ctx, reminder)
	return err
}

// FindByID returns the reminder with the given logical id, or nil when no
// document matches.
func (r *Repository) FindByID(ctx context.Context, id string) (*Reminder, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var reminder Reminder
	err = coll.FindOne(ctx, bson.M{"id": id}).Decode(&reminder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &reminder, nil
}

// Find runs the conjunctive filter query, sorted by time ascending. The
// date filter keeps documents whose [startDate, endDate] range contains
// the date, treating a missing or null endDate as open-ended.
func (r *Repository) Find(ctx context.Context, q Query) ([]Reminder, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if q.PetID != "" && q.PetID != FilterAll {
		filter["petId"] = q.PetID
	}
	if q.Category != "" && q.Category != FilterAll {
		filter["category"] = q.Category
	}
	if q.Date != "" {
		filter["startDate"] = bson.M{"$lte": q.Date}
		filter["$or"] = []bson.M{
			{"endDate": bson.M{"$exists": false}},
			{"endDate": nil},
			{"endDate": bson.M{"$gte": q.Date}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Reminder
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []Reminder{}
	}

	return result, nil
}

// UpdateFields merges the given fields into the document and returns the
// post-update record. Returns ErrNotFound when no document matches.
func (r *Repository) UpdateFields(ctx context.Context, id string, fields bson.M) (*Reminder, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	result, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrNotFound
	}

	var reminder Reminder
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// Delete removes the document, distinguishing "nothing deleted" from
// store errors.
func (r *Repository) Delete(ctx context.Context, id string) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
