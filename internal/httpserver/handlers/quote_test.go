package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateQuote(t *testing.T) {
	d := testDeps(testCatalog())
	h := CreateQuote(d)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
		wantTotal  float64
	}{
		{
			name:       "valid quote",
			body:       `{"destino_id":"bariloche","fecha":"2030-05-10","dias":5}`,
			wantStatus: http.StatusOK,
			wantTotal:  600,
		},
		{
			name:       "malformed body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_body",
		},
		{
			name:       "unknown destination",
			body:       `{"destino_id":"nope","fecha":"2030-05-10","dias":5}`,
			wantStatus: http.StatusNotFound,
			wantError:  "not_found",
		},
		{
			name:       "past date",
			body:       `{"destino_id":"bariloche","fecha":"2020-05-10","dias":5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "invalid_date",
		},
		{
			name:       "malformed date",
			body:       `{"destino_id":"bariloche","fecha":"10/05/2030","dias":5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "invalid_date",
		},
		{
			name:       "zero days",
			body:       `{"destino_id":"bariloche","fecha":"2030-05-10","dias":0}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "invalid_day_count",
		},
		{
			name:       "too many days",
			body:       `{"destino_id":"bariloche","fecha":"2030-05-10","dias":61}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "invalid_day_count",
		},
		{
			name:       "destination without price",
			body:       `{"destino_id":"machu-picchu","fecha":"2030-05-10","dias":5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "no_price_available",
		},
		{
			name:       "date checked before day count",
			body:       `{"destino_id":"bariloche","fecha":"bad","dias":0}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "invalid_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cotizar", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantError != "" {
				var resp errorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal error response: %v", err)
				}
				if resp.Error != tt.wantError {
					t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
				}
				return
			}

			var resp quoteResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Total != tt.wantTotal {
				t.Errorf("total = %v, want %v", resp.Total, tt.wantTotal)
			}
			if resp.Destination != "Bariloche" {
				t.Errorf("destino = %q, want %q", resp.Destination, "Bariloche")
			}
			if resp.TotalText != "600" {
				t.Errorf("totalTexto = %q, want %q", resp.TotalText, "600")
			}
		})
	}
}
