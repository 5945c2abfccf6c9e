// Package store persists the tonie catalog in MongoDB.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/raushankrgupta/tonies-catalog/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the Mongo collection holding the catalog.
const CollectionName = "tonies"

// TonieStore reads and writes catalog documents
type TonieStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewTonieStore(coll *mongo.Collection) *TonieStore {
	return &TonieStore{coll: coll, now: time.Now}
}

// List returns every tonie, newest first. Filtering and sorting for the
// catalog view happen in package catalog.
func (s *TonieStore) List(ctx context.Context) ([]models.Tonie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tonies: %w", err)
	}
	defer cursor.Close(ctx)

	tonies := []models.Tonie{}
	if err := cursor.All(ctx, &tonies); err != nil {
		return nil, fmt.Errorf("failed to decode tonies: %w", err)
	}
	return tonies, nil
}

func (s *TonieStore) Get(ctx context.Context, id string) (*models.Tonie, error) {
	var t models.Tonie
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tonie %s: %w", id, err)
	}
	return &t, nil
}

// Create inserts a validated payload under a fresh id.
func (s *TonieStore) Create(ctx context.Context, in models.CreateTonie) (*models.Tonie, error) {
	t := models.NewTonie(uuid.NewString(), in, s.now().UTC())
	if _, err := s.coll.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create: %w", err)
	}
	return &t, nil
}

// Update applies the non-nil fields of a validated partial update and returns the result.
func (s *TonieStore) Update(ctx context.Context, in models.UpdateTonie) (*models.Tonie, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t models.Tonie
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": in.ID}, bson.M{"$set": updateSet(in, s.now().UTC())}, opts).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update: %w", err)
	}
	return &t, nil
}

// Delete removes a tonie and returns what was deleted so its image can be cleaned up.
func (s *TonieStore) Delete(ctx context.Context, id string) (*models.Tonie, error) {
	var t models.Tonie
	err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete: %w", err)
	}
	return &t, nil
}

// ExistsByName reports whether a tonie with this name exists, ignoring case.
func (s *TonieStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, nameFilter(name), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicates: %w", err)
	}
	return n > 0, nil
}

func nameFilter(name string) bson.M {
	return bson.M{"name": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name) + "$",
		Options: "i",
	}}
}

func updateSet(in models.UpdateTonie, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Series != nil {
		set["series"] = *in.Series
	}
	if in.ImageURL != nil {
		set["image_url"] = *in.ImageURL
	}
	if in.PurchaseDate != nil {
		set["purchase_date"] = nullIfEmpty(*in.PurchaseDate)
	}
	if in.Price != nil {
		set["price"] = *in.Price
	}
	if in.Notes != nil {
		set["notes"] = nullIfEmpty(*in.Notes)
	}
	if in.Favorite != nil {
		set["favorite"] = *in.Favorite
	}
	if in.TrackList != nil {
		set["track_list"] = *in.TrackList
	}
	if in.IsCreativeTonie != nil {
		set["is_creative_tonie"] = *in.IsCreativeTonie
	}
	return set
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
