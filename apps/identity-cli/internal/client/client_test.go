package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/config"
	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func newTestClient(url string) *Client {
	return NewClient(&config.Config{APIURL: url + "/"})
}

func ctxWithTrace() context.Context {
	return WithTraceID(context.Background(), "test-trace-id-001")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set(HeaderContentType, "application/problem+json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"type":   "about:blank",
		"title":  title,
		"status": status,
		"detail": detail,
	})
}

func TestGenerateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/generate/IMEI" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get(HeaderTraceID); got != "test-trace-id-001" {
			t.Errorf("X-Trace-ID = %q", got)
		}
		if got := r.URL.Query().Get("manufacturer"); got != "Samsung" {
			t.Errorf("manufacturer = %q, want Samsung", got)
		}
		if r.URL.Query().Has("carrier") {
			t.Error("empty carrier must not be sent")
		}
		writeJSON(w, http.StatusOK, GenerateResponse{Type: "IMEI", Group: "DEVICE_HARDWARE", Value: "353325101234563"})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	resp, err := c.Generate(ctxWithTrace(), "IMEI", &Reference{Manufacturer: "Samsung"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Value != "353325101234563" || resp.Group != "DEVICE_HARDWARE" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestBundleSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/bundles/SIM_CARD" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("carrier"); got != "44010" {
			t.Errorf("carrier = %q, want 44010", got)
		}
		writeJSON(w, http.StatusOK, BundleResponse{
			Group:  "SIM_CARD",
			Values: map[string]string{"CARRIER_MCC_MNC": "44010", "SIM_COUNTRY_ISO": "jp"},
		})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	resp, err := c.Bundle(ctxWithTrace(), "SIM_CARD", &Reference{Carrier: "44010"})
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}
	if resp.Values["CARRIER_MCC_MNC"] != "44010" {
		t.Errorf("CARRIER_MCC_MNC = %q", resp.Values["CARRIER_MCC_MNC"])
	}
}

func TestCreateProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/profiles" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get(HeaderContentType); got != ContentTypeJSON {
			t.Errorf("Content-Type = %q", got)
		}
		var req CreateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Name != "work phone" || req.Reference == nil || req.Reference.Country != "JP" {
			t.Errorf("unexpected request body: %+v", req)
		}
		writeJSON(w, http.StatusCreated, Profile{
			ID:     "p1",
			Name:   req.Name,
			Groups: []Group{{Group: "SIM_CARD", Anchor: "44010", State: "synced", Synced: true}},
		})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	p, err := c.CreateProfile(ctxWithTrace(), &CreateProfileRequest{
		Name:      "work phone",
		Reference: &Reference{Country: "JP"},
	})
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if p.ID != "p1" || len(p.Groups) != 1 || !p.Groups[0].Synced {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestProfileOperations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /api/v1/profiles":
			writeJSON(w, http.StatusOK, map[string][]string{"ids": {"p1", "p2"}})
		case "GET /api/v1/profiles/p1":
			writeJSON(w, http.StatusOK, Profile{ID: "p1"})
		case "DELETE /api/v1/profiles/p1":
			w.WriteHeader(http.StatusNoContent)
		case "POST /api/v1/profiles/p1/regenerate/PHONE_NUMBER":
			writeJSON(w, http.StatusOK, Profile{ID: "p1", Name: "field"})
		case "PUT /api/v1/profiles/p1/identifiers/IMEI/enabled":
			var req map[string]bool
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req["enabled"] {
				t.Errorf("unexpected enabled body: %v %v", req, err)
			}
			writeJSON(w, http.StatusOK, Profile{ID: "p1", Name: "enabled"})
		case "GET /api/v1/profiles/p1/values":
			writeJSON(w, http.StatusOK, map[string]any{"id": "p1", "values": map[string]string{"IMSI": "440101234567890"}})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	ctx := ctxWithTrace()

	ids, err := c.ListProfiles(ctx)
	if err != nil || len(ids) != 2 {
		t.Errorf("ListProfiles() = %v, %v", ids, err)
	}
	if p, err := c.GetProfile(ctx, "p1"); err != nil || p.ID != "p1" {
		t.Errorf("GetProfile() = %+v, %v", p, err)
	}
	if err := c.DeleteProfile(ctx, "p1"); err != nil {
		t.Errorf("DeleteProfile() error = %v", err)
	}
	if p, err := c.RegenerateField(ctx, "p1", "PHONE_NUMBER"); err != nil || p.Name != "field" {
		t.Errorf("RegenerateField() = %+v, %v", p, err)
	}
	if p, err := c.SetEnabled(ctx, "p1", "IMEI", false); err != nil || p.Name != "enabled" {
		t.Errorf("SetEnabled() = %+v, %v", p, err)
	}
	values, err := c.Values(ctx, "p1")
	if err != nil || values["IMSI"] != "440101234567890" {
		t.Errorf("Values() = %v, %v", values, err)
	}
}

func TestRegenerateGroupBody(t *testing.T) {
	tests := []struct {
		name     string
		ref      *Reference
		wantBody bool
	}{
		{"without reference", nil, false},
		{"empty reference", &Reference{}, false},
		{"explicit carrier", &Reference{Carrier: "44020"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/v1/profiles/p1/groups/SIM_CARD/regenerate" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				body, _ := io.ReadAll(r.Body)
				if got := len(body) > 0; got != tt.wantBody {
					t.Errorf("body present = %v, want %v (%s)", got, tt.wantBody, body)
				}
				if tt.wantBody {
					var ref Reference
					if err := json.Unmarshal(body, &ref); err != nil || ref.Carrier != "44020" {
						t.Errorf("unexpected body %s", body)
					}
				}
				writeJSON(w, http.StatusOK, Profile{ID: "p1"})
			}))
			defer server.Close()

			c := newTestClient(server.URL)
			if _, err := c.RegenerateGroup(ctxWithTrace(), "p1", "SIM_CARD", tt.ref); err != nil {
				t.Fatalf("RegenerateGroup failed: %v", err)
			}
		})
	}
}

func TestAPIErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		problem    bool
		check      func(*APIError) bool
		wantDetail bool
	}{
		{"not found", http.StatusNotFound, true, (*APIError).IsNotFound, true},
		{"conflict", http.StatusConflict, true, (*APIError).IsConflict, true},
		{"bad request plain text", http.StatusBadRequest, false, func(e *APIError) bool { return e.StatusCode == 400 }, false},
		{"unprocessable", http.StatusUnprocessableEntity, true, func(e *APIError) bool { return !e.IsServerError() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.problem {
					writeProblem(w, tt.status, http.StatusText(tt.status), "profile p1")
					return
				}
				w.WriteHeader(tt.status)
				io.WriteString(w, "bad input\n")
			}))
			defer server.Close()

			c := newTestClient(server.URL)
			_, err := c.GetProfile(ctxWithTrace(), "p1")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %T: %v", err, err)
			}
			if !errors.Is(err, apperr.ErrIdentityAPI) {
				t.Error("APIError should unwrap to ErrIdentityAPI")
			}
			if !tt.check(apiErr) {
				t.Errorf("unexpected classification for %d", apiErr.StatusCode)
			}
			if got := apiErr.Details != nil; got != tt.wantDetail {
				t.Errorf("Details present = %v, want %v", got, tt.wantDetail)
			}
			if !tt.wantDetail && apiErr.Message != "bad input" {
				t.Errorf("Message = %q, want %q", apiErr.Message, "bad input")
			}
		})
	}
}

func TestCircuitBreakerOpen(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "valkey down")
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	// CBFailureThreshold回連続失敗させてCircuit BreakerをOpenにする
	for i := 0; i < config.CBFailureThreshold; i++ {
		_, err := c.GetProfile(ctxWithTrace(), "p1")
		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.IsServerError() {
			t.Fatalf("iteration %d: expected server APIError, got %v", i, err)
		}
	}

	_, err := c.GetProfile(ctxWithTrace(), "p1")
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if got := calls.Load(); got != config.CBFailureThreshold {
		t.Errorf("server called %d times, want %d", got, config.CBFailureThreshold)
	}
}

func TestClientErrorsNotCountedByCB(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, http.StatusConflict, "Profile is being modified by another request", "")
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	for i := 0; i < config.CBFailureThreshold+1; i++ {
		_, err := c.GetProfile(ctxWithTrace(), "p1")
		if errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("409 should not trigger circuit breaker open (iteration %d)", i)
		}
	}
}

func TestConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := newTestClient(url)
	_, err := c.GetProfile(ctxWithTrace(), "p1")

	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectionError, got %T: %v", err, err)
	}
	if connErr.Unwrap() == nil {
		t.Error("ConnectionError should carry its cause")
	}
}

func TestInvalidResponseJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		io.WriteString(w, "{not json")
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Bundle(ctxWithTrace(), "LOCATION", nil)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestTraceIDFrom(t *testing.T) {
	if got := TraceIDFrom(ctxWithTrace()); got != "test-trace-id-001" {
		t.Errorf("TraceIDFrom() = %q", got)
	}

	a := TraceIDFrom(context.Background())
	b := TraceIDFrom(context.Background())
	if a == "" || a == b {
		t.Errorf("expected distinct generated trace ids, got %q and %q", a, b)
	}
}

func TestReferenceQuery(t *testing.T) {
	var nilRef *Reference
	if nilRef.query() != nil {
		t.Error("nil reference should produce no query")
	}

	q := (&Reference{Carrier: "44010", Country: "JP"}).query()
	if q.Get("carrier") != "44010" || q.Get("country") != "JP" {
		t.Errorf("unexpected query %v", q)
	}
	if q.Has("preset") || q.Has("manufacturer") {
		t.Errorf("empty keys must be omitted: %v", q)
	}
}
