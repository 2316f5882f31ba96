package users

import (
	"net/http"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/apperror"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/request"
)

// Handler holds user-related HTTP handlers.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/users.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := request.Values(w, r)
	if err != nil {
		apperror.Write(w, apperror.NewValidationError("invalid request body", err), "Error creating user")
		return
	}

	user, err := h.service.Create(r.Context(), form.Get("username"))
	if err != nil {
		apperror.Write(w, err, "Error creating user")
		return
	}
	apperror.WriteJSON(w, http.StatusOK, user)
}

// List handles GET /api/users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		apperror.Write(w, err, "Failed to fetch users")
		return
	}
	apperror.WriteJSON(w, http.StatusOK, users)
}
