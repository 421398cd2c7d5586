package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/foodhubdev/foodhub/app/cart"
	"github.com/foodhubdev/foodhub/app/middlewares"
	"github.com/foodhubdev/foodhub/app/services"
	"github.com/foodhubdev/foodhub/app/utils/calc"
	"github.com/foodhubdev/foodhub/app/utils/format"
	"github.com/foodhubdev/foodhub/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CartHandler struct {
	carts    *services.CartService
	catalog  *services.CatalogService
	sessions sessions.SessionStore
	render   *render.Render
}

func NewCartHandler(carts *services.CartService, catalog *services.CatalogService, sessionStore sessions.SessionStore, render *render.Render) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog, sessions: sessionStore, render: render}
}

type cartLineView struct {
	LineID        string              `json:"lineId"`
	ItemID        int64               `json:"itemId"`
	Name          string              `json:"name"`
	Image         string              `json:"image"`
	Quantity      int                 `json:"quantity"`
	UnitPrice     string              `json:"unitPrice"`
	Total         string              `json:"total"`
	Customization *cart.Customization `json:"customization,omitempty"`
}

type cartSummaryView struct {
	Subtotal     string `json:"subtotal"`
	DeliveryFee  string `json:"deliveryFee"`
	TaxAmount    string `json:"taxAmount"`
	GrandTotal   string `json:"grandTotal"`
	FreeDelivery bool   `json:"freeDelivery"`
}

type cartView struct {
	Lines     []cartLineView  `json:"lines"`
	ItemCount int             `json:"itemCount"`
	Summary   cartSummaryView `json:"summary"`
}

func buildCartView(c cart.Cart) cartView {
	view := cartView{
		Lines:     make([]cartLineView, 0, len(c.Lines)),
		ItemCount: c.ItemCount(),
	}
	for _, line := range c.Lines {
		view.Lines = append(view.Lines, cartLineView{
			LineID:        line.ID,
			ItemID:        line.Item.ID,
			Name:          line.Item.Name,
			Image:         line.Item.Image,
			Quantity:      line.Quantity,
			UnitPrice:     format.Rupee(line.UnitPrice()),
			Total:         format.Rupee(line.Total()),
			Customization: line.Customization,
		})
	}
	summary := calc.Summarize(c.Total())
	view.Summary = cartSummaryView{
		Subtotal:     format.Rupee(summary.Subtotal),
		DeliveryFee:  format.Rupee(summary.DeliveryFee),
		TaxAmount:    format.Rupee(summary.TaxAmount),
		GrandTotal:   format.Rupee(summary.GrandTotal),
		FreeDelivery: summary.DeliveryFee.IsZero() && summary.Subtotal.IsPositive(),
	}
	return view
}

func (h *CartHandler) loadAndRender(w http.ResponseWriter, r *http.Request) {
	local := h.sessions.CartStore(w, r)
	userID := middlewares.UserIDFromContext(r.Context())

	current, err := h.carts.Load(r.Context(), local, userID)
	if err != nil {
		log.Printf("CartHandler: failed to load cart: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load cart"})
		return
	}
	h.render.JSON(w, http.StatusOK, buildCartView(current))
}

// GetCart returns the owner's reconciled cart with priced lines and totals.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.loadAndRender(w, r)
}

// GetCount returns only the cart's item count, for the navbar badge.
func (h *CartHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	local := h.sessions.CartStore(w, r)
	userID := middlewares.UserIDFromContext(r.Context())

	current, err := h.carts.Load(r.Context(), local, userID)
	if err != nil {
		log.Printf("CartHandler.GetCount: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load cart"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]int{"count": current.ItemCount()})
}

type addItemRequest struct {
	ItemID        int64                        `json:"itemId"`
	Quantity      int                          `json:"quantity"`
	Customization *services.CustomizationInput `json:"customization,omitempty"`
}

// AddItem adds one line to the cart. The customization payload, if present, is
// validated against the item's category before the line is priced.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Quantity < 1 {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "quantity must be at least 1"})
		return
	}

	item, err := h.catalog.ItemByID(r.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
			return
		}
		log.Printf("CartHandler.AddItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load menu item"})
		return
	}

	customization, err := h.catalog.ResolveCustomization(r.Context(), item.Category, req.Customization)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCustomization) {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("CartHandler.AddItem: resolve customization: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve customization"})
		return
	}

	local := h.sessions.CartStore(w, r)
	userID := middlewares.UserIDFromContext(r.Context())

	engineItem := cart.Item{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Category:    item.Category,
		Rating:      item.Rating,
		Popular:     item.Popular,
	}

	updated, err := h.carts.AddItem(r.Context(), local, userID, engineItem, req.Quantity, customization)
	if err != nil {
		log.Printf("CartHandler.AddItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save cart"})
		return
	}
	h.render.JSON(w, http.StatusOK, buildCartView(updated))
}

type updateLineRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateLine sets the quantity of one line; zero removes it.
func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	lineID := mux.Vars(r)["lineId"]

	var req updateLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	local := h.sessions.CartStore(w, r)
	userID := middlewares.UserIDFromContext(r.Context())

	updated, err := h.carts.SetQuantity(r.Context(), local, userID, lineID, req.Quantity)
	if err != nil {
		log.Printf("CartHandler.UpdateLine: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save cart"})
		return
	}
	h.render.JSON(w, http.StatusOK, buildCartView(updated))
}

// RemoveLine deletes one line by its id.
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	lineID := mux.Vars(r)["lineId"]

	local := h.sessions.CartStore(w, r)
	userID := middlewares.UserIDFromContext(r.Context())

	updated, err := h.carts.RemoveLine(r.Context(), local, userID, lineID)
	if err != nil {
		log.Printf("CartHandler.RemoveLine: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save cart"})
		return
	}
	h.render.JSON(w, http.StatusOK, buildCartView(updated))
}

// ClearCart empties the cart in both stores.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	local := h.sessions.CartStore(w, r)
	userID := middlewares.UserIDFromContext(r.Context())

	if err := h.carts.Clear(r.Context(), local, userID); err != nil {
		log.Printf("CartHandler.ClearCart: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear cart"})
		return
	}
	h.render.JSON(w, http.StatusOK, buildCartView(cart.Cart{}))
}
