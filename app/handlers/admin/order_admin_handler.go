package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/foodhubdev/foodhub/app/repositories"
	"github.com/foodhubdev/foodhub/app/services"
	"github.com/foodhubdev/foodhub/app/utils/format"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type OrderAdminHandler struct {
	orders   *services.OrderService
	userRepo repositories.UserRepositoryImpl
	render   *render.Render
}

func NewOrderAdminHandler(orders *services.OrderService, userRepo repositories.UserRepositoryImpl, render *render.Render) *OrderAdminHandler {
	return &OrderAdminHandler{orders: orders, userRepo: userRepo, render: render}
}

func (h *OrderAdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.AllOrders(r.Context())
	if err != nil {
		log.Printf("OrderAdminHandler.GetOrders: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load orders"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrBadStatus):
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		case errors.Is(err, services.ErrOrderNotFound):
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		default:
			log.Printf("OrderAdminHandler.UpdateStatus: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update order"})
		}
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"id": orderID, "status": req.Status})
}

// GetDashboard summarizes sales and customer counts for the admin landing
// page.
func (h *OrderAdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.orders.SalesSummary(r.Context())
	if err != nil {
		log.Printf("OrderAdminHandler.GetDashboard: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load dashboard"})
		return
	}

	customers, err := h.userRepo.CountCustomers(r.Context())
	if err != nil {
		log.Printf("OrderAdminHandler.GetDashboard: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load dashboard"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"totalOrders":    summary.TotalOrders,
		"pendingOrders":  summary.PendingOrders,
		"totalRevenue":   summary.TotalRevenue,
		"revenueDisplay": format.Rupee(summary.TotalRevenue),
		"customers":      customers,
	})
}
