package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brujula-viajes/brujula/internal/domain"
)

type stubContactStore struct {
	saved []domain.ContactForm
	err   error
}

func (s *stubContactStore) SaveContact(_ context.Context, form domain.ContactForm) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, form)
	return "msg-1", nil
}

func TestSubmitContact_Valid(t *testing.T) {
	store := &stubContactStore{}
	d := testDeps(nil)
	d.Contacts = store

	body := `{"nombre":"Ana","apellido":"García","email":"ana@example.com","pais":"argentina","mensaje":"hola"}`
	req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(body))
	rec := httptest.NewRecorder()
	SubmitContact(d).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp contactResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.ID != "msg-1" {
		t.Errorf("id = %q, want %q", resp.ID, "msg-1")
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(store.saved))
	}
	if store.saved[0].FirstName != "Ana" {
		t.Errorf("saved first name = %q, want %q", store.saved[0].FirstName, "Ana")
	}
}

func TestSubmitContact_ValidationFailed(t *testing.T) {
	store := &stubContactStore{}
	d := testDeps(nil)
	d.Contacts = store

	// Empty form: every required field fails.
	req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	SubmitContact(d).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp struct {
		Error  string              `json:"error"`
		Fields []domain.FieldError `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error response: %v", err)
	}
	if resp.Error != "validation_failed" {
		t.Errorf("error = %q, want %q", resp.Error, "validation_failed")
	}
	if len(resp.Fields) != 4 {
		t.Fatalf("fields = %d, want 4", len(resp.Fields))
	}
	wantOrder := []string{"nombre", "apellido", "email", "pais"}
	for i, want := range wantOrder {
		if resp.Fields[i].Field != want {
			t.Errorf("fields[%d] = %q, want %q", i, resp.Fields[i].Field, want)
		}
	}
	if len(store.saved) != 0 {
		t.Errorf("invalid submission must not be stored")
	}
}

func TestSubmitContact_MalformedBody(t *testing.T) {
	d := testDeps(nil)
	d.Contacts = &stubContactStore{}

	req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	SubmitContact(d).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
