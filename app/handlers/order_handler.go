package handlers

import (
	"log"
	"net/http"

	"github.com/foodhubdev/foodhub/app/middlewares"
	"github.com/foodhubdev/foodhub/app/services"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orders *services.OrderService
	render *render.Render
}

func NewOrderHandler(orders *services.OrderService, render *render.Render) *OrderHandler {
	return &OrderHandler{orders: orders, render: render}
}

// GetOrders lists the signed-in user's order history, newest first.
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	orders, err := h.orders.OrdersForUser(r.Context(), userID)
	if err != nil {
		log.Printf("OrderHandler.GetOrders: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load orders"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}
