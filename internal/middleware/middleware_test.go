package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(r.Header.Get(RequestIDHeader)))
})

func TestRequestID_GeneratesID(t *testing.T) {
	rr := httptest.NewRecorder()
	RequestID(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rr.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a UUID request ID, got %q", id)
	}
	if rr.Body.String() != id {
		t.Fatalf("handler saw %q, response carries %q", rr.Body.String(), id)
	}
}

func TestRequestID_KeepsInboundID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	RequestID(okHandler).ServeHTTP(rr, req)

	if got := rr.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected inbound ID to be kept, got %q", got)
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{"wildcard echoes origin", "*", "http://localhost:5173", http.MethodPost, "http://localhost:5173", http.StatusOK},
		{"listed origin", "http://a.test, http://b.test", "http://b.test", http.MethodPost, "http://b.test", http.StatusOK},
		{"unlisted origin", "http://a.test", "http://evil.test", http.MethodPost, "", http.StatusOK},
		{"preflight", "*", "http://a.test", http.MethodOptions, "http://a.test", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/debate", nil)
			req.Header.Set("Origin", tc.origin)
			rr := httptest.NewRecorder()
			CORS(tc.allowed)(okHandler).ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Errorf("Expected allow-origin %q, got %q", tc.wantOrigin, got)
			}
		})
	}
}
