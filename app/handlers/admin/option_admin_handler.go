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

type OptionAdminHandler struct {
	custRepo repositories.CustomizationRepositoryImpl
	render   *render.Render
	validate *validator.Validate
}

func NewOptionAdminHandler(custRepo repositories.CustomizationRepositoryImpl, render *render.Render) *OptionAdminHandler {
	return &OptionAdminHandler{custRepo: custRepo, render: render, validate: validator.New()}
}

type optionForm struct {
	CategoryID      int64  `json:"categoryId" validate:"required,gt=0"`
	Name            string `json:"name" validate:"required,min=1,max=100"`
	DisplayName     string `json:"displayName" validate:"required,min=1,max=255"`
	PriceAdjustment string `json:"priceAdjustment" validate:"required"`
	IsDefault       bool   `json:"isDefault"`
	SortOrder       int    `json:"sortOrder" validate:"gte=0"`
}

func (h *OptionAdminHandler) decodeForm(w http.ResponseWriter, r *http.Request) (*optionForm, decimal.Decimal, bool) {
	var form optionForm
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
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid option form"})
		return nil, decimal.Zero, false
	}
	adjustment, err := decimal.NewFromString(form.PriceAdjustment)
	if err != nil {
		h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "priceAdjustment must be a decimal"})
		return nil, decimal.Zero, false
	}
	return &form, adjustment, true
}

// CreateOption adds an option to a customization group. New adjustments apply
// to existing cart lines the next time they are reconciled.
func (h *OptionAdminHandler) CreateOption(w http.ResponseWriter, r *http.Request) {
	form, adjustment, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	option := &models.CustomizationOption{
		CategoryID:      form.CategoryID,
		Name:            form.Name,
		DisplayName:     form.DisplayName,
		PriceAdjustment: adjustment,
		IsDefault:       form.IsDefault,
		IsActive:        true,
		SortOrder:       form.SortOrder,
	}
	if err := h.custRepo.CreateOption(r.Context(), option); err != nil {
		log.Printf("OptionAdminHandler.CreateOption: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create option"})
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"option": option})
}

func (h *OptionAdminHandler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid option id"})
		return
	}

	form, adjustment, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	option, err := h.custRepo.GetOptionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "option not found"})
			return
		}
		log.Printf("OptionAdminHandler.UpdateOption: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load option"})
		return
	}

	option.CategoryID = form.CategoryID
	option.Name = form.Name
	option.DisplayName = form.DisplayName
	option.PriceAdjustment = adjustment
	option.IsDefault = form.IsDefault
	option.SortOrder = form.SortOrder

	if err := h.custRepo.UpdateOption(r.Context(), option); err != nil {
		log.Printf("OptionAdminHandler.UpdateOption: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update option"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"option": option})
}

// ToggleOption flips an option's availability. Deactivated options stay on
// existing cart lines by name but contribute a zero adjustment after the next
// reconcile.
func (h *OptionAdminHandler) ToggleOption(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid option id"})
		return
	}

	option, err := h.custRepo.ToggleOption(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "option not found"})
			return
		}
		log.Printf("OptionAdminHandler.ToggleOption: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to toggle option"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"option": option})
}
