package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brujula-viajes/brujula/internal/domain"
	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
	"github.com/brujula-viajes/brujula/internal/logger"
)

type contactRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Country   string `json:"pais"`
	Message   string `json:"mensaje"`
}

type contactResponse struct {
	ID string `json:"id"`
}

// SubmitContact validates a contact form and stores accepted submissions
// in the Redis inbox.
func SubmitContact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_body")
			return
		}

		form := domain.ContactForm{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Country:   req.Country,
			Message:   req.Message,
		}

		if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:  "validation_failed",
				Fields: fieldErrs,
			})
			return
		}

		id, err := d.Contacts.SaveContact(r.Context(), form)
		if err != nil {
			d.Logger.Error("failed to save contact submission", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "storage_unavailable")
			return
		}

		d.Logger.Info("contact submission stored",
			logger.String("id", id))

		writeJSON(w, http.StatusCreated, contactResponse{ID: id})
	}
}
