package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brujula-viajes/brujula/internal/domain"
)

// ContactMessage is a validated contact submission as stored in the inbox.
type ContactMessage struct {
	ID         string `json:"id"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Email      string `json:"email"`
	Pais       string `json:"pais"`
	Mensaje    string `json:"mensaje,omitempty"`
	ReceivedAt string `json:"received_at"`
}

// SaveContact appends a validated contact form to the inbox list and
// returns the message id. Callers must only pass forms that already passed
// domain validation.
func (s *Store) SaveContact(ctx context.Context, form domain.ContactForm) (string, error) {
	msg := ContactMessage{
		ID:         uuid.NewString(),
		Nombre:     form.FirstName,
		Apellido:   form.LastName,
		Email:      form.Email,
		Pais:       form.Country,
		Mensaje:    form.Message,
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal contact message: %w", err)
	}

	if err := s.client.RPush(ctx, KeyContactInbox, data).Err(); err != nil {
		return "", fmt.Errorf("failed to save contact message: %w", err)
	}

	return msg.ID, nil
}
