package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/Jaomarks/eternapdv/internal/menu"
	"github.com/Jaomarks/eternapdv/internal/metrics"
	ord "github.com/Jaomarks/eternapdv/internal/order"
)

// registerRoutes mounts the collaborator-facing operations: the four core
// operations plus the QR ticket used by the totem receipt.
func registerRoutes(r *gin.Engine, store *ord.Store, catalog *menu.Catalog, baseURL string) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/menu", menuHandler(catalog))
	r.POST("/orders", createOrderHandler(store, catalog))
	r.GET("/orders", listOrdersHandler(store))
	r.GET("/orders/:id", getOrderHandler(store))
	r.PATCH("/orders/:id/status", updateStatusHandler(store))
	r.GET("/orders/:id/qrcode", orderQRCodeHandler(store, baseURL))
}

// writeStoreError maps the store's error taxonomy onto HTTP codes.
func writeStoreError(c *gin.Context, err error) {
	var verr *ord.ValidationError
	var nerr *ord.NotFoundError
	var terr *ord.InvalidTransitionError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.As(err, &nerr):
		c.JSON(http.StatusNotFound, gin.H{"error": nerr.Error()})
	case errors.As(err, &terr):
		metrics.RejectedTransitions.Inc()
		c.JSON(http.StatusConflict, gin.H{"error": terr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func orderID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return id, true
}

// menuHandler godoc
// @Summary      Menu grouped by category
// @Tags         menu
// @Produce      json
// @Success      200 {array} menu.Category
// @Router       /menu [get]
func menuHandler(catalog *menu.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.ByCategory())
	}
}

// createOrderHandler godoc
// @Summary      Submit a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order body order.CreateOrderRequest true "order submission"
// @Success      201 {object} order.Order
// @Failure      400 {object} map[string]string
// @Router       /orders [post]
func createOrderHandler(store *ord.Store, catalog *menu.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ord.CreateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
			return
		}

		// Resolve each cart item against the catalog; price and name are
		// captured here so later menu edits never touch this order.
		lines := make([]ord.CreateLine, 0, len(in.Items))
		for _, it := range in.Items {
			mi, ok := catalog.Get(it.MenuItemID)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown menu item %q", it.MenuItemID)})
				return
			}
			if !mi.Available {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("menu item %q is unavailable", mi.Name)})
				return
			}
			lines = append(lines, ord.CreateLine{
				MenuItemID: mi.ID,
				Name:       mi.Name,
				Price:      mi.Price,
				Quantity:   it.Quantity,
				Notes:      it.Notes,
			})
		}

		o, err := store.CreateOrder(ord.CreateRequest{
			Lines:           lines,
			CustomerName:    in.CustomerName,
			CustomerCPF:     in.CustomerCPF,
			IsDelivery:      in.IsDelivery,
			TableNumber:     in.TableNumber,
			DeliveryAddress: in.DeliveryAddress,
		})
		if err != nil {
			writeStoreError(c, err)
			return
		}
		metrics.OrdersCreated.Inc()
		c.JSON(http.StatusCreated, o)
	}
}

// listOrdersHandler godoc
// @Summary      Orders filtered by status (and optionally fulfillment mode)
// @Tags         orders
// @Produce      json
// @Param        status   query string true  "order status" Enums(pending, preparing, ready, delivered, cancelled)
// @Param        delivery query bool   false "delivery orders only (false = dine-in only)"
// @Success      200 {object} order.Snapshot
// @Failure      400 {object} map[string]string
// @Router       /orders [get]
func listOrdersHandler(store *ord.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := ord.Status(c.Query("status"))
		if !st.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown status %q", st)})
			return
		}
		f := ord.Filter{Status: st}
		if v, ok := c.GetQuery("delivery"); ok {
			d, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "delivery must be a boolean"})
				return
			}
			f.Delivery = &d
		}
		snap, err := store.Snapshot(f)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// getOrderHandler godoc
// @Summary      One order by id
// @Tags         orders
// @Produce      json
// @Param        id path int true "order id"
// @Success      200 {object} order.Order
// @Failure      404 {object} map[string]string
// @Router       /orders/{id} [get]
func getOrderHandler(store *ord.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		o, err := store.GetOrder(id)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateStatusHandler godoc
// @Summary      Advance an order through its lifecycle
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id     path int true "order id"
// @Param        status body order.UpdateStatusRequest true "target status"
// @Success      200 {object} order.Order
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string "transition not permitted"
// @Router       /orders/{id}/status [patch]
func updateStatusHandler(store *ord.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		var in ord.UpdateStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
			return
		}
		if !in.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown status %q", in.Status)})
			return
		}
		o, err := store.UpdateStatus(id, in.Status)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		metrics.StatusTransitions.WithLabelValues(string(previousOf(o.Status)), string(o.Status)).Inc()
		c.JSON(http.StatusOK, o)
	}
}

// previousOf inverts the linear transition chain for metric labels.
func previousOf(to ord.Status) ord.Status {
	for _, from := range []ord.Status{ord.StatusPending, ord.StatusPreparing, ord.StatusReady} {
		if ord.CanTransition(from, to) {
			return from
		}
	}
	return ""
}

// orderQRCodeHandler godoc
// @Summary      Pickup ticket QR code (PNG)
// @Tags         orders
// @Produce      png
// @Param        id path int true "order id"
// @Success      200 {string} binary
// @Failure      404 {object} map[string]string
// @Router       /orders/{id}/qrcode [get]
func orderQRCodeHandler(store *ord.Store, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		if _, err := store.GetOrder(id); err != nil {
			writeStoreError(c, err)
			return
		}
		png, err := qrcode.Encode(fmt.Sprintf("%s/orders/%d", baseURL, id), qrcode.Medium, 256)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
			return
		}
		c.Header("Cache-Control", "public, max-age=3600")
		c.Data(http.StatusOK, "image/png", png)
	}
}
