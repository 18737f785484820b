package domain

import "testing"

func TestContactFormValidate(t *testing.T) {
	valid := ContactForm{
		FirstName: "Ana",
		LastName:  "Núñez",
		Email:     "ana@example.com",
		Country:   "Argentina",
	}

	t.Run("valid form", func(t *testing.T) {
		if errs := valid.Validate(); len(errs) != 0 {
			t.Errorf("Validate() = %v, want no errors", errs)
		}
	})

	tests := []struct {
		name       string
		mutate     func(*ContactForm)
		wantField  string
		wantReason string
	}{
		{
			name:       "missing first name",
			mutate:     func(f *ContactForm) { f.FirstName = "  " },
			wantField:  "nombre",
			wantReason: ReasonRequired,
		},
		{
			name:       "first name with digits",
			mutate:     func(f *ContactForm) { f.FirstName = "Ana2" },
			wantField:  "nombre",
			wantReason: ReasonOnlyLetters,
		},
		{
			name:       "last name too short",
			mutate:     func(f *ContactForm) { f.LastName = "N" },
			wantField:  "apellido",
			wantReason: ReasonOnlyLetters,
		},
		{
			name:       "missing email",
			mutate:     func(f *ContactForm) { f.Email = "" },
			wantField:  "email",
			wantReason: ReasonRequired,
		},
		{
			name:       "bad email",
			mutate:     func(f *ContactForm) { f.Email = "ana@example" },
			wantField:  "email",
			wantReason: ReasonInvalidEmail,
		},
		{
			name:       "missing country",
			mutate:     func(f *ContactForm) { f.Country = "" },
			wantField:  "pais",
			wantReason: ReasonRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			errs := form.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() = %v, want exactly one error", errs)
			}
			if errs[0].Field != tt.wantField || errs[0].Reason != tt.wantReason {
				t.Errorf("Validate() = %+v, want field %q reason %q",
					errs[0], tt.wantField, tt.wantReason)
			}
		})
	}
}

func TestContactFormValidateCollectsAllFields(t *testing.T) {
	form := ContactForm{}

	errs := form.Validate()
	if len(errs) != 4 {
		t.Fatalf("Validate() on empty form = %v, want 4 errors", errs)
	}

	wantOrder := []string{"nombre", "apellido", "email", "pais"}
	for i, f := range wantOrder {
		if errs[i].Field != f {
			t.Errorf("error %d field = %q, want %q", i, errs[i].Field, f)
		}
		if errs[i].Reason != ReasonRequired {
			t.Errorf("error %d reason = %q, want %q", i, errs[i].Reason, ReasonRequired)
		}
	}
}
