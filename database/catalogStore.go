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

// CatalogStore reads the menu_items, categories and restaurants collections.
// An external admin tool writes them; this service never does.
type CatalogStore struct {
	items       *mongo.Collection
	categories  *mongo.Collection
	restaurants *mongo.Collection
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		items:       OpenCollection(Client, "menu_items"),
		categories:  OpenCollection(Client, "categories"),
		restaurants: OpenCollection(Client, "restaurants"),
	}
}

func (s *CatalogStore) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.items.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CatalogStore) MenuItemByID(ctx context.Context, itemID string) (models.MenuItem, error) {
	var item models.MenuItem
	err := s.items.FindOne(ctx, bson.M{"menu_item_id": itemID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, store.ErrNotFound
	}
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *CatalogStore) Categories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogStore) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	cursor, err := s.restaurants.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}
