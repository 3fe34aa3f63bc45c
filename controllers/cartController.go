package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"unicart/cart"
	"unicart/models"
	"unicart/session"
	"unicart/store"
)

var sessionStore session.Store = session.NewFromEnv()

// cartEngine hydrates the calling device's cart from session state. The
// device id cookie is guaranteed by middleware.Device.
func cartEngine(ctx context.Context, c *gin.Context) *cart.Engine {
	return cart.NewEngine(ctx, sessionStore, c.GetString("device_id"))
}

type cartView struct {
	Items        []models.CartLine `json:"items"`
	Total_amount float64           `json:"total_amount"`
	Total_items  int               `json:"total_items"`
}

func viewOf(e *cart.Engine) cartView {
	return cartView{
		Items:        e.Lines(),
		Total_amount: e.TotalAmount(),
		Total_items:  e.TotalItems(),
	}
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		c.JSON(http.StatusOK, viewOf(cartEngine(ctx, c)))
	}
}

func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var body struct {
			Item_id string `json:"item_id" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Price and name always come from the catalog, never the client.
		item, err := catalogStore.MenuItemByID(ctx, body.Item_id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the menu item"})
			return
		}
		if !item.Is_available {
			c.JSON(http.StatusConflict, gin.H{"error": "menu item is currently unavailable"})
			return
		}

		engine := cartEngine(ctx, c)
		if err := engine.AddItem(ctx, item.Menu_item_id, item.Name, item.Price); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart could not be saved"})
			return
		}
		c.JSON(http.StatusOK, viewOf(engine))
	}
}

func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var body struct {
			Quantity int `json:"quantity"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		engine := cartEngine(ctx, c)
		if err := engine.SetQuantity(ctx, c.Param("item_id"), body.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart could not be saved"})
			return
		}
		c.JSON(http.StatusOK, viewOf(engine))
	}
}

func RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		engine := cartEngine(ctx, c)
		if err := engine.Remove(ctx, c.Param("item_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart could not be saved"})
			return
		}
		c.JSON(http.StatusOK, viewOf(engine))
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		engine := cartEngine(ctx, c)
		if err := engine.Clear(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart could not be saved"})
			return
		}
		c.JSON(http.StatusOK, viewOf(engine))
	}
}
