package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-backend/internal/domains/checkout/model"
)

const CollectionName = "abandoned_checkouts"

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) CheckoutRepository {
	return &mongoRepository{
		collection: db.Collection(CollectionName),
	}
}

func (m *mongoRepository) Upsert(ctx context.Context, snap model.Snapshot, now time.Time) error {
	var filter bson.M
	switch {
	case snap.Email != "":
		filter = bson.M{"email": snap.Email}
	case snap.Phone != "":
		filter = bson.M{"phone": snap.Phone}
	default:
		return model.ErrContactRequired
	}

	set := bson.M{
		"name":         snap.Name,
		"cart_items":   snap.CartItems,
		"total_amount": snap.TotalAmount,
		"recovered":    false,
		"updated_at":   now,
	}
	if snap.Email != "" {
		set["email"] = snap.Email
	}
	if snap.Phone != "" {
		set["phone"] = snap.Phone
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"created_at":     now,
			"recovery_count": 0,
		},
	}

	_, err := m.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert abandoned checkout: %w", err)
	}
	return nil
}

func (m *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.AbandonedCheckout, error) {
	var doc model.AbandonedCheckout

	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrCheckoutNotFound
		}
		return nil, fmt.Errorf("failed to get abandoned checkout: %w", err)
	}
	return &doc, nil
}

func (m *mongoRepository) MarkClicked(ctx context.Context, id primitive.ObjectID, at time.Time) (bool, error) {
	// clicked_at: nil khớp cả field không tồn tại
	filter := bson.M{"_id": id, "clicked_at": nil}
	update := bson.M{"$set": bson.M{"clicked_at": at}}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark clicked: %w", err)
	}
	return result.ModifiedCount == 1, nil
}

func recoveryCandidateFilter(from, to time.Time) bson.M {
	return bson.M{
		"updated_at":       bson.M{"$gte": from, "$lte": to},
		"email":            bson.M{"$exists": true, "$nin": bson.A{nil, ""}},
		"recovered":        false,
		"recovery_sent_at": nil,
	}
}

func (m *mongoRepository) FindRecoveryCandidates(ctx context.Context, from, to time.Time, limit int) ([]model.AbandonedCheckout, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := m.collection.Find(ctx, recoveryCandidateFilter(from, to), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query recovery candidates: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]model.AbandonedCheckout, 0, limit)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode recovery candidates: %w", err)
	}
	return docs, nil
}

func (m *mongoRepository) MarkRecoverySent(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	filter := bson.M{"_id": id, "recovery_sent_at": nil}
	update := bson.M{
		"$set": bson.M{"recovery_sent_at": at},
		"$inc": bson.M{"recovery_count": 1},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark recovery sent: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrCheckoutNotFound
	}
	return nil
}

func (m *mongoRepository) MarkRecovered(ctx context.Context, contact string, at time.Time) error {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"email": model.NormalizeEmail(contact)},
			bson.M{"phone": model.NormalizePhone(contact)},
		},
		"recovered": false,
	}
	update := bson.M{"$set": bson.M{"recovered": true, "recovered_at": at}}

	result, err := m.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark recovered: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrCheckoutNotFound
	}
	return nil
}

func statusFilter(status string) bson.M {
	switch status {
	case model.StatusPending:
		return bson.M{"recovered": false, "recovery_sent_at": nil}
	case model.StatusNotified:
		return bson.M{"recovered": false, "recovery_sent_at": bson.M{"$ne": nil}}
	case model.StatusClicked:
		return bson.M{"clicked_at": bson.M{"$ne": nil}}
	case model.StatusRecovered:
		return bson.M{"recovered": true}
	default:
		return bson.M{}
	}
}

func (m *mongoRepository) List(ctx context.Context, status string, offset, limit int) ([]model.AbandonedCheckout, int64, error) {
	filter := statusFilter(status)

	total, err := m.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count abandoned checkouts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list abandoned checkouts: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]model.AbandonedCheckout, 0, limit)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode abandoned checkouts: %w", err)
	}
	return docs, total, nil
}

// EnsureIndexes chạy một lần lúc startup
func (m *mongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetName("idx_phone").SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetName("idx_updated_at"),
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
