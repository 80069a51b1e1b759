package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spaceshare/rental-api/internal/core/domain"
	"github.com/spaceshare/rental-api/internal/core/ports"
)

const collectionSpaces = "spaces"

type SpaceRepository struct {
	col *mongo.Collection
}

func NewSpaceRepository(db *mongo.Database) *SpaceRepository {
	return &SpaceRepository{col: db.Collection(collectionSpaces)}
}

// Create inserts a new space document.
func (r *SpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	return err
}

// FindByID retrieves a space by id.
func (r *SpaceRepository) FindByID(ctx context.Context, id string) (*domain.Space, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Space
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSpaceNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns a page of spaces and the total count. A non-empty location
// filters with a case-insensitive partial match.
func (r *SpaceRepository) List(ctx context.Context, filter ports.ListSpacesFilter) ([]*domain.Space, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Location, Options: "i"}}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var spaces []*domain.Space
	if err := cursor.All(ctx, &spaces); err != nil {
		return nil, 0, err
	}
	return spaces, total, nil
}

// Update replaces the writable fields of an existing space.
func (r *SpaceRepository) Update(ctx context.Context, s *domain.Space) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": s.ID}, bson.M{"$set": bson.M{
		"title":         s.Title,
		"description":   s.Description,
		"nightly_price": s.NightlyPrice,
		"location":      s.Location,
		"capacity":      s.Capacity,
		"amenities":     s.Amenities,
		"updated_at":    s.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSpaceNotFound
	}
	return nil
}

// Delete removes a space by id.
func (r *SpaceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSpaceNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the spaces collection.
func (r *SpaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
