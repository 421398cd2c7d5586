package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/foodhubdev/foodhub/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type MenuHandler struct {
	catalog *services.CatalogService
	render  *render.Render
}

func NewMenuHandler(catalog *services.CatalogService, render *render.Render) *MenuHandler {
	return &MenuHandler{catalog: catalog, render: render}
}

// GetMenu lists active menu items, optionally filtered by ?category=.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	var (
		items interface{}
		err   error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		items, err = h.catalog.ItemsByCategory(r.Context(), category)
	} else {
		items, err = h.catalog.Items(r.Context())
	}
	if err != nil {
		log.Printf("MenuHandler.GetMenu: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load menu"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *MenuHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		log.Printf("MenuHandler.GetCategories: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load categories"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *MenuHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	limit := 6
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	items, err := h.catalog.PopularItems(r.Context(), limit)
	if err != nil {
		log.Printf("MenuHandler.GetPopular: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load popular items"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// GetItem returns one menu item together with the customization groups
// configured for its category, so the item page can render its options.
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item id"})
		return
	}

	item, err := h.catalog.ItemByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
			return
		}
		log.Printf("MenuHandler.GetItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load menu item"})
		return
	}

	customizations, err := h.catalog.CustomizationsForCategory(r.Context(), item.Category)
	if err != nil {
		log.Printf("MenuHandler.GetItem: customizations for %q: %v", item.Category, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load customizations"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"item":           item,
		"customizations": customizations,
	})
}
