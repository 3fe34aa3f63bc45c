package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"unicart/database"
	"unicart/models"
	"unicart/store"
)

var catalogStore store.CatalogStore = database.NewCatalogStore()

// menuItemView decorates a menu item with its restaurant's open state so the
// client can grey out items from closed stalls.
type menuItemView struct {
	models.MenuItem
	Restaurant_name string `json:"restaurant_name"`
	Restaurant_open bool   `json:"restaurant_open"`
}

func GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		items, err := catalogStore.MenuItems(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing the menu items"})
			return
		}
		restaurants, err := catalogStore.Restaurants(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing the menu items"})
			return
		}

		byID := make(map[string]models.Restaurant, len(restaurants))
		for _, r := range restaurants {
			byID[r.Restaurant_id] = r
		}

		views := make([]menuItemView, 0, len(items))
		for _, item := range items {
			r := byID[item.Restaurant_id]
			views = append(views, menuItemView{
				MenuItem:        item,
				Restaurant_name: r.Name,
				Restaurant_open: r.Is_open,
			})
		}
		c.JSON(http.StatusOK, views)
	}
}

func GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		item, err := catalogStore.MenuItemByID(ctx, c.Param("item_id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the menu item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		categories, err := catalogStore.Categories(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func GetRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		restaurants, err := catalogStore.Restaurants(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing restaurants"})
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}
