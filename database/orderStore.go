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

// OrderStore is the MongoDB implementation of store.OrderStore over the
// orders collection. Orders are insert-only.
type OrderStore struct {
	col *mongo.Collection
}

func NewOrderStore() *OrderStore {
	return &OrderStore{col: OpenCollection(Client, "orders")}
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

func (s *OrderStore) InsertOrder(ctx context.Context, order models.Order) error {
	_, err := s.col.InsertOne(ctx, order)
	return err
}

func (s *OrderStore) OrderByID(ctx context.Context, orderID string) (models.Order, error) {
	var o models.Order
	err := s.col.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, store.ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (s *OrderStore) OrdersByIDs(ctx context.Context, orderIDs []string) ([]models.Order, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	return s.find(ctx, bson.M{"order_id": bson.M{"$in": orderIDs}})
}

func (s *OrderStore) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

func (s *OrderStore) OrdersByBatch(ctx context.Context, batchID string) ([]models.Order, error) {
	return s.find(ctx, bson.M{"batch_id": batchID})
}

func (s *OrderStore) AllOrders(ctx context.Context) ([]models.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *OrderStore) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := s.col.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
