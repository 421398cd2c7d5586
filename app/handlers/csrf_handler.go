package handlers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

type CSRFHandler struct {
	render *render.Render
}

func NewCSRFHandler(render *render.Render) *CSRFHandler {
	return &CSRFHandler{render: render}
}

// GetToken hands the client its CSRF token. Every state-changing request must
// echo it back in the X-CSRF-Token header alongside the csrf cookie.
func (h *CSRFHandler) GetToken(w http.ResponseWriter, r *http.Request) {
	token := csrf.Token(r)
	w.Header().Set("X-CSRF-Token", token)
	h.render.JSON(w, http.StatusOK, map[string]string{"csrfToken": token})
}
