package controllers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"unicart/batch"
	"unicart/config"
	"unicart/store"
)

var batchManager = batch.NewManager(batchStore)

func GetCurrentBatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		b, err := batchManager.Current(ctx)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no batch exists yet"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the batch"})
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

func CreateBatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var body struct {
			Slot_label string `json:"slot_label" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		b, err := batchManager.Create(ctx, body.Slot_label)
		if errors.Is(err, batch.ErrSlotLabelRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a slot label"})
			return
		}
		if errors.Is(err, batch.ErrActiveBatchExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "An active batch already exists. Close it before opening a new one."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "batch was not created"})
			return
		}

		config.GetLogger().WithFields(logrus.Fields{
			"module":     "batch",
			"batch_id":   b.Batch_id,
			"slot_label": b.Slot_label,
		}).Info("batch created, orders open")

		NotifyBatchStatus(b)
		c.JSON(http.StatusCreated, b)
	}
}

func ToggleBatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var body struct {
			Is_active *bool `json:"is_active" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil || body.Is_active == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_active is required"})
			return
		}

		b, err := batchManager.SetActive(ctx, c.Param("batch_id"), *body.Is_active)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "batch was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "batch update failed"})
			return
		}

		NotifyBatchStatus(b)
		c.JSON(http.StatusOK, b)
	}
}

func UpdateBatchStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var body struct {
			Current_step   int    `json:"current_step"`
			Status_message string `json:"status_message"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		b, err := batchManager.Advance(ctx, c.Param("batch_id"), body.Current_step, body.Status_message)
		if errors.Is(err, batch.ErrInvalidStep) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "step must be between 1 and 5"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "batch was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "batch update failed"})
			return
		}

		NotifyBatchStatus(b)
		c.JSON(http.StatusOK, b)
	}
}

func ArchiveBatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		batchID := c.Param("batch_id")
		err := batchManager.Archive(ctx, batchID)
		if errors.Is(err, batch.ErrBatchStillOpen) {
			c.JSON(http.StatusConflict, gin.H{"error": "Close the batch before deleting it"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "batch was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "batch delete failed"})
			return
		}

		config.GetLogger().WithFields(logrus.Fields{
			"module":   "batch",
			"batch_id": batchID,
		}).Info("batch archived")
		c.JSON(http.StatusOK, gin.H{"message": "batch archived"})
	}
}

func GetBatchOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		orders, err := orderStore.OrdersByBatch(ctx, c.Param("batch_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing batch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetAllOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		orders, err := orderStore.AllOrders(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// ExportBatchOrders streams the batch's orders as a CSV report. It still
// works after the batch is archived: the orders outlive their batch.
func ExportBatchOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		batchID := c.Param("batch_id")
		label := batchID
		if b, err := batchManager.Store.BatchByID(ctx, batchID); err == nil {
			label = b.Slot_label
		}

		orders, err := orderStore.OrdersByBatch(ctx, batchID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing batch orders"})
			return
		}
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No orders found in this batch"})
			return
		}

		filename := strings.ReplaceAll(label, " ", "_") + "_Orders.csv"
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

		w := csv.NewWriter(c.Writer)
		_ = w.Write([]string{"Order ID", "Name", "Phone", "Items", "Total (Rs)", "Date"})
		for _, o := range orders {
			items := make([]string, 0, len(o.Items))
			for _, line := range o.Items {
				items = append(items, fmt.Sprintf("%dx %s", line.Quantity, line.Name))
			}
			_ = w.Write([]string{
				o.Order_id,
				o.Customer_name,
				o.Phone,
				strings.Join(items, " | "),
				strconv.FormatFloat(o.Total_amount, 'f', 2, 64),
				o.Created_at.Format("2006-01-02"),
			})
		}
		w.Flush()
	}
}
