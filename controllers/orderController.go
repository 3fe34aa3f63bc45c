package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/sirupsen/logrus"

	"unicart/config"
	"unicart/database"
	"unicart/order"
	"unicart/store"
	"unicart/tracking"
)

var (
	orderStore store.OrderStore = database.NewOrderStore()
	batchStore store.BatchStore = database.NewBatchStore()
	placement                   = order.NewWorkflow(batchStore, orderStore)
	validate                    = validator.New()
)

// currentUserID reads the identity set by middleware.Identity; nil for guests.
func currentUserID(c *gin.Context) *string {
	uid := c.GetString("uid")
	if uid == "" {
		return nil
	}
	return &uid
}

func PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		var in order.PlacementInput
		if err := c.BindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		in.User_id = currentUserID(c)

		engine := cartEngine(ctx, c)
		placed, err := placement.Place(ctx, engine, in)
		if err != nil {
			var closed *order.OrdersClosedError
			var persistence *order.PersistenceError
			switch {
			case errors.Is(err, order.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			case errors.Is(err, order.ErrMissingContactInfo):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in your name, phone number and delivery address"})
			case errors.Is(err, order.ErrNoActiveSlot):
				c.JSON(http.StatusConflict, gin.H{"error": "No delivery slot is open yet. Please wait for the next slot."})
			case errors.As(err, &closed):
				c.JSON(http.StatusConflict, gin.H{"error": closed.SlotLabel + " is closed for new orders"})
			case errors.As(err, &persistence):
				c.JSON(http.StatusBadGateway, gin.H{"error": "Order could not be saved. Please try again."})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		config.GetLogger().WithFields(logrus.Fields{
			"module":   "order",
			"order_id": placed.Order_id,
			"batch_id": *placed.Batch_id,
			"total":    placed.Total_amount,
		}).Info("order placed")

		NotifyNewOrder(placed)
		c.JSON(http.StatusCreated, placed)
	}
}

// GetOrders returns the tracking history for this device and, when signed
// in, the user: a union keyed by order id so guest orders survive a login.
func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		engine := cartEngine(ctx, c)
		userID := currentUserID(c)

		orders, err := tracking.ResolveHistory(ctx, orderStore, userID, engine.RecentOrderIDs(ctx))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}

		resp := gin.H{"orders": orders, "auto_selected": nil}
		if selected := tracking.AutoSelect(orders, userID != nil); selected != nil {
			resp["auto_selected"] = selected.Order_id
		}
		c.JSON(http.StatusOK, resp)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		o, err := orderStore.OrderByID(ctx, c.Param("order_id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the order"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

type trackedStep struct {
	tracking.Step
	State tracking.StepState `json:"state"`
}

// TrackOrder is the endpoint the tracking view polls every few seconds.
func TrackOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		status, err := tracking.FetchStatus(ctx, orderStore, batchStore, c.Param("order_id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		if errors.Is(err, tracking.ErrTrackingUnavailable) {
			c.JSON(http.StatusGone, gin.H{"error": "This order is no longer trackable"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while tracking the order"})
			return
		}

		steps := make([]trackedStep, 0, len(tracking.Steps))
		for _, step := range tracking.Steps {
			steps = append(steps, trackedStep{
				Step:  step,
				State: tracking.StateOf(step.ID, status.Current_step),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"status":                status,
			"steps":                 steps,
			"poll_interval_seconds": int(tracking.DefaultInterval / time.Second),
		})
	}
}
