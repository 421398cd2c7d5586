package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/foodhubdev/foodhub/app/helpers"
	"github.com/foodhubdev/foodhub/app/models"
	"github.com/foodhubdev/foodhub/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type MenuAdminHandler struct {
	itemRepo repositories.MenuItemRepositoryImpl
	render   *render.Render
	validate *validator.Validate
}

func NewMenuAdminHandler(itemRepo repositories.MenuItemRepositoryImpl, render *render.Render) *MenuAdminHandler {
	return &MenuAdminHandler{itemRepo: itemRepo, render: render, validate: validator.New()}
}

type menuItemForm struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Description string  `json:"description"`
	Price       string  `json:"price" validate:"required"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required,min=2,max=100"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Popular     bool    `json:"popular"`
}

func (h *MenuAdminHandler) decodeForm(w http.ResponseWriter, r *http.Request) (*menuItemForm, decimal.Decimal, bool) {
	var form menuItemForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return nil, decimal.Zero, false
	}
	if err := h.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "validation failed",
				"fields": helpers.FormatValidationErrors(verrs),
			})
			return nil, decimal.Zero, false
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item form"})
		return nil, decimal.Zero, false
	}
	price, err := decimal.NewFromString(form.Price)
	if err != nil || price.IsNegative() {
		h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "price must be a non-negative decimal"})
		return nil, decimal.Zero, false
	}
	return &form, price, true
}

func (h *MenuAdminHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	form, price, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	item := &models.MenuItem{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		Image:       form.Image,
		Category:    form.Category,
		Rating:      form.Rating,
		Popular:     form.Popular,
		IsActive:    true,
	}
	if err := h.itemRepo.Create(r.Context(), item); err != nil {
		log.Printf("MenuAdminHandler.CreateItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create menu item"})
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"item": item})
}

func (h *MenuAdminHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item id"})
		return
	}

	form, price, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	item, err := h.itemRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
			return
		}
		log.Printf("MenuAdminHandler.UpdateItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load menu item"})
		return
	}

	item.Name = form.Name
	item.Description = form.Description
	item.Price = price
	item.Image = form.Image
	item.Category = form.Category
	item.Rating = form.Rating
	item.Popular = form.Popular

	if err := h.itemRepo.Update(r.Context(), item); err != nil {
		log.Printf("MenuAdminHandler.UpdateItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update menu item"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": item})
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// SetItemActive hides or restores an item. Hidden items drop out of catalog
// snapshots, so carts holding them lose those lines on the next load.
func (h *MenuAdminHandler) SetItemActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item id"})
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.itemRepo.SetActive(r.Context(), id, req.Active); err != nil {
		log.Printf("MenuAdminHandler.SetItemActive: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update menu item"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"id": id, "active": req.Active})
}
