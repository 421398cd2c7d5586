package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/foodhubdev/foodhub/app/helpers"
	"github.com/foodhubdev/foodhub/app/models"
	"github.com/foodhubdev/foodhub/app/repositories"
	"github.com/foodhubdev/foodhub/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type AuthHandler struct {
	userRepo repositories.UserRepositoryImpl
	sessions sessions.SessionStore
	render   *render.Render
	validate *validator.Validate
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, render *render.Render) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		sessions: sessionStore,
		render:   render,
		validate: validator.New(),
	}
}

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Phone     string `json:"phone" validate:"omitempty,min=8,max=20"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) validationFailed(w http.ResponseWriter, err error) bool {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.FormatValidationErrors(verrs),
		})
		return true
	}
	return false
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		if h.validationFailed(w, err) {
			return
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid registration form"})
		return
	}

	if _, err := h.userRepo.GetByEmail(r.Context(), req.Email); err == nil {
		h.render.JSON(w, http.StatusConflict, map[string]string{"error": "email already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("AuthHandler.Register: lookup %s: %v", req.Email, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to register"})
		return
	}

	hashed := helpers.HashPassword(req.Password)
	if hashed == "" {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to register"})
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashed,
		Phone:     req.Phone,
		Role:      models.RoleCustomer,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("AuthHandler.Register: create %s: %v", req.Email, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to register"})
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.Register: session for %s: %v", user.ID, err)
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

// Login verifies credentials and starts the session. The next cart load sees
// the user id and runs local-to-remote promotion if needed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		if h.validationFailed(w, err) {
			return
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid login form"})
		return
	}

	user, err := h.userRepo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}
	if !helpers.PasswordCompare(user.Password, []byte(req.Password)) {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.Login: session for %s: %v", user.ID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to start session"})
		return
	}
	if err := h.userRepo.UpdateLastLogin(r.Context(), user.ID); err != nil {
		log.Printf("AuthHandler.Login: last login for %s: %v", user.ID, err)
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearUserID(w, r); err != nil {
		log.Printf("AuthHandler.Logout: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to end session"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok || user == nil {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
