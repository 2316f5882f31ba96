package exercises

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/apperror"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/request"
)

// ExerciseResponse is the body returned by POST /api/users/{_id}/exercises.
type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// LogEntry is one element of LogResponse.Log.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the body returned by GET /api/users/{_id}/logs.
type LogResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// Handler holds exercise HTTP handlers.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create records an exercise for the user in the path.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := request.Values(w, r)
	if err != nil {
		apperror.Write(w, apperror.NewValidationError("invalid request body", err), "Error adding exercise")
		return
	}

	logged, err := h.service.Add(r.Context(), AddInput{
		UserID:      chi.URLParam(r, "_id"),
		Description: form.Get("description"),
		Duration:    form.Get("duration"),
		Date:        form.Get("date"),
	})
	if err != nil {
		apperror.Write(w, err, "Error adding exercise")
		return
	}

	apperror.WriteJSON(w, http.StatusOK, ExerciseResponse{
		ID:          logged.User.ID,
		Username:    logged.User.Username,
		Date:        FormatDate(logged.Exercise.Date),
		Duration:    logged.Exercise.Duration,
		Description: logged.Exercise.Description,
	})
}

// Logs returns the user's exercise log filtered by from, to and limit.
func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result, err := h.service.Logs(r.Context(), LogInput{
		UserID: chi.URLParam(r, "_id"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	})
	if err != nil {
		apperror.Write(w, err, "Error fetching exercise logs")
		return
	}

	entries := make([]LogEntry, 0, len(result.Exercises))
	for _, e := range result.Exercises {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        FormatDate(e.Date),
		})
	}
	apperror.WriteJSON(w, http.StatusOK, LogResponse{
		ID:       result.User.ID,
		Username: result.User.Username,
		Count:    len(entries),
		Log:      entries,
	})
}
