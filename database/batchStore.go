package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"unicart/models"
	"unicart/store"
)

// BatchStore is the MongoDB implementation of store.BatchStore over the
// order_batches collection.
type BatchStore struct {
	col *mongo.Collection
}

func NewBatchStore() *BatchStore {
	return &BatchStore{col: OpenCollection(Client, "order_batches")}
}

func (s *BatchStore) LatestBatch(ctx context.Context) (models.OrderBatch, error) {
	var b models.OrderBatch
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := s.col.FindOne(ctx, bson.M{}, opts).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.OrderBatch{}, store.ErrNotFound
	}
	if err != nil {
		return models.OrderBatch{}, err
	}
	return b, nil
}

func (s *BatchStore) BatchByID(ctx context.Context, batchID string) (models.OrderBatch, error) {
	var b models.OrderBatch
	err := s.col.FindOne(ctx, bson.M{"batch_id": batchID}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.OrderBatch{}, store.ErrNotFound
	}
	if err != nil {
		return models.OrderBatch{}, err
	}
	return b, nil
}

func (s *BatchStore) InsertBatch(ctx context.Context, batch models.OrderBatch) error {
	_, err := s.col.InsertOne(ctx, batch)
	return err
}

func (s *BatchStore) UpdateBatch(ctx context.Context, batch models.OrderBatch) error {
	var updateObj bson.D
	updateObj = append(updateObj, bson.E{Key: "slot_label", Value: batch.Slot_label})
	updateObj = append(updateObj, bson.E{Key: "current_step", Value: batch.Current_step})
	updateObj = append(updateObj, bson.E{Key: "status_message", Value: batch.Status_message})
	updateObj = append(updateObj, bson.E{Key: "is_active", Value: batch.Is_active})
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: batch.Updated_at})

	result, err := s.col.UpdateOne(
		ctx,
		bson.M{"batch_id": batch.Batch_id},
		bson.D{{Key: "$set", Value: updateObj}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *BatchStore) DeleteBatch(ctx context.Context, batchID string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"batch_id": batchID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
