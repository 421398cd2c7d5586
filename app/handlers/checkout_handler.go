package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/foodhubdev/foodhub/app/helpers"
	"github.com/foodhubdev/foodhub/app/middlewares"
	"github.com/foodhubdev/foodhub/app/services"
	"github.com/foodhubdev/foodhub/app/utils/format"
	"github.com/foodhubdev/foodhub/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	orders   *services.OrderService
	sessions sessions.SessionStore
	render   *render.Render
	validate *validator.Validate
}

func NewCheckoutHandler(orders *services.OrderService, sessionStore sessions.SessionStore, render *render.Render) *CheckoutHandler {
	return &CheckoutHandler{
		orders:   orders,
		sessions: sessionStore,
		render:   render,
		validate: validator.New(),
	}
}

// Checkout places an order from the signed-in user's current cart. The cart
// survives a failed placement so the customer can retry.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var form services.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "validation failed",
				"fields": helpers.FormatValidationErrors(verrs),
			})
			return
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid checkout form"})
		return
	}

	local := h.sessions.CartStore(w, r)
	userID := middlewares.UserIDFromContext(r.Context())

	order, err := h.orders.PlaceOrder(r.Context(), local, userID, form)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "cart is empty"})
			return
		}
		log.Printf("CheckoutHandler.Checkout: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to place order"})
		return
	}

	h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"order":     order,
		"totalPaid": format.Rupee(order.TotalAmount),
		"orderCode": order.OrderCode,
	})
}
