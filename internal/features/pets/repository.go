package pets

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KKaanaakk/pet-reminder/internal/database"
	apperrors "github.com/KKaanaakk/pet-reminder/pkg/errors"
)

const collectionName = "pets"

type Repository struct {
	manager *database.Manager
}

func NewRepository(manager *database.Manager) *Repository {
	r := &Repository{manager: manager}

	// Index creation is best-effort; the store may not be reachable yet.
	if db, err := manager.Acquire(context.Background()); err == nil {
		db.Collection(collectionName).Indexes().CreateOne(context.Background(), mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
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

// List returns all pets. An empty collection is seeded with the default
// pets first, matching first-run behavior.
func (r *Repository) List(ctx context.Context) ([]Pet, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Pet
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		docs := make([]interface{}, len(DefaultPets))
		for i, p := range DefaultPets {
			docs[i] = p
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return nil, err
		}
		return append([]Pet(nil), DefaultPets...), nil
	}

	return result, nil
}

// FindByID returns the pet with the given logical id, or nil when no pet
// matches. A miss is not an error here; callers decide how to degrade.
func (r *Repository) FindByID(ctx context.Context, id string) (*Pet, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var pet Pet
	err = coll.FindOne(ctx, bson.M{"id": id}).Decode(&pet)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &pet, nil
}

func (r *Repository) Insert(ctx context.Context, pet *Pet) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	_, err = coll.InsertOne(ctx, pet)
	return err
}

// Update merges the given fields into the pet document and returns the
// post-update record. Renaming a pet does not cascade into the petName
// copies on existing reminders; those refresh on their next write.
func (r *Repository) Update(ctx context.Context, id string, fields bson.M) (*Pet, error) {
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

	var pet Pet
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

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
