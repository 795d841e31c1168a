// ABOUTME: Tests for the session orchestrator
// ABOUTME: Uses httptest to mock the PetRadar API across login, identity and register flows

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petradar/internal/api"
	"petradar/internal/store"
)

// newOrchestrator wires an orchestrator against the given mock server
func newOrchestrator(t *testing.T, serverURL string) (*Orchestrator, *store.Credentials) {
	t.Helper()
	creds := store.NewCredentials(t.TempDir())
	client := api.New(serverURL, 0, creds)
	return New(client, creds), creds
}

func TestLogin_ResolvesIdentity(t *testing.T) {
	var listAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/gate/Login":
			json.NewEncoder(w).Encode(api.LoginResponse{Token: "T1", RefreshToken: "R1"})
		case "/api/Users":
			listAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]api.UserProfile{
				{ID: 9, Email: "other@b.com", Name: "Otto"},
				{ID: 42, Email: "A@B.COM", Name: "Ana"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	o, creds := newOrchestrator(t, server.URL)
	s, err := o.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Token != "T1" || s.UserID != 42 || s.Email != "A@B.COM" || s.DisplayName != "Ana" {
		t.Errorf("unexpected session: %+v", s)
	}
	if !s.IdentityResolved() {
		t.Error("expected identity resolved")
	}
	if !creds.IsAuthenticated() {
		t.Error("expected authenticated store")
	}
	// The identity scan must already carry the freshly saved token
	if listAuth != "Bearer T1" {
		t.Errorf("expected identity scan to send Bearer T1, got %q", listAuth)
	}
}

func TestLogin_TrimsCombinedDisplayName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/gate/Login":
			json.NewEncoder(w).Encode(api.LoginResponse{Token: "T1"})
		case "/api/Users":
			json.NewEncoder(w).Encode([]api.UserProfile{
				{ID: 42, Email: "a@b.com", Name: "Ana", LastName: "Lima"},
			})
		}
	}))
	defer server.Close()

	o, _ := newOrchestrator(t, server.URL)
	s, err := o.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.DisplayName != "Ana Lima" {
		t.Errorf("expected display name Ana Lima, got %q", s.DisplayName)
	}
}

func TestLogin_NoMatchDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/gate/Login":
			json.NewEncoder(w).Encode(api.LoginResponse{Token: "T1"})
		case "/api/Users":
			json.NewEncoder(w).Encode([]api.UserProfile{{ID: 9, Email: "other@b.com", Name: "Otto"}})
		}
	}))
	defer server.Close()

	o, creds := newOrchestrator(t, server.URL)
	s, err := o.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("expected degraded success, got error: %v", err)
	}
	if s.UserID != 0 || s.Email != "a@b.com" || s.DisplayName != "" {
		t.Errorf("expected degraded session, got %+v", s)
	}
	if !creds.IsAuthenticated() {
		t.Error("degraded session must still be authenticated")
	}
}

func TestLogin_ScanTransportFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/gate/Login":
			json.NewEncoder(w).Encode(api.LoginResponse{Token: "T1"})
		case "/api/Users":
			// Drop the connection mid-request to simulate a transport failure
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("server does not support hijacking")
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Fatalf("hijack failed: %v", err)
			}
			conn.Close()
		}
	}))
	defer server.Close()

	o, creds := newOrchestrator(t, server.URL)
	s, err := o.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("identity-scan failure must not fail login: %v", err)
	}
	if s.Token != "T1" || s.UserID != 0 || s.Email != "a@b.com" || s.DisplayName != "" {
		t.Errorf("expected degraded session with token, got %+v", s)
	}
	if !creds.IsAuthenticated() {
		t.Error("expected authenticated despite failed scan")
	}
}

func TestLogin_ScanStatusFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/gate/Login":
			json.NewEncoder(w).Encode(api.LoginResponse{Token: "T1"})
		case "/api/Users":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	o, _ := newOrchestrator(t, server.URL)
	s, err := o.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("identity-scan failure must not fail login: %v", err)
	}
	if s.UserID != 0 {
		t.Errorf("expected unresolved sentinel, got %d", s.UserID)
	}
}

func TestLogin_UnauthorizedLeavesStoreUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	o, creds := newOrchestrator(t, server.URL)
	_, err := o.Login(context.Background(), "a@b.com", "wrong")
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if err.Error() != "incorrect email or password" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if creds.IsAuthenticated() {
		t.Error("failed login must not persist a token")
	}
}

func TestLogin_StatusMessages(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{400, "invalid login details"},
		{404, "user not found"},
		{500, "server error, try again later"},
		{418, "login failed (status 418)"},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		o, _ := newOrchestrator(t, server.URL)
		_, err := o.Login(context.Background(), "a@b.com", "secret1")
		server.Close()
		if err == nil || err.Error() != tc.want {
			t.Errorf("status %d: expected %q, got %v", tc.status, tc.want, err)
		}
	}
}

func TestLogin_ConnectionError(t *testing.T) {
	o, _ := newOrchestrator(t, "http://127.0.0.1:1")
	_, err := o.Login(context.Background(), "a@b.com", "secret1")
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !strings.HasPrefix(err.Error(), "connection error") {
		t.Errorf("expected connection error prefix, got %q", err.Error())
	}
}

func TestLogin_EmptyTokenIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.LoginResponse{})
	}))
	defer server.Close()

	o, creds := newOrchestrator(t, server.URL)
	if _, err := o.Login(context.Background(), "a@b.com", "secret1"); err == nil {
		t.Fatal("expected error when login returns no token")
	}
	if creds.IsAuthenticated() {
		t.Error("token-less login must not persist anything")
	}
}

func TestRegister_StatusMessages(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{400, "invalid registration details"},
		{401, "registration requires administrator access in this environment"},
		{409, "email is already registered"},
		{500, "server error, try again later"},
		{422, "registration failed (status 422)"},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		o, _ := newOrchestrator(t, server.URL)
		err := o.Register(context.Background(), RegisterInput{Name: "Ana", Email: "a@b.com", Password: "secret1"})
		server.Close()
		if err == nil || err.Error() != tc.want {
			t.Errorf("status %d: expected %q, got %v", tc.status, tc.want, err)
		}
	}
}

func TestRegisterAndLogin_RoundTrip(t *testing.T) {
	registered := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/Users" && r.Method == http.MethodPost:
			var req api.RegisterRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Role != "User" {
				t.Errorf("expected role User, got %q", req.Role)
			}
			registered = true
			w.WriteHeader(http.StatusCreated)
		case r.URL.Path == "/api/gate/Login":
			if !registered {
				t.Error("login attempted before registration completed")
			}
			json.NewEncoder(w).Encode(api.LoginResponse{Token: "T1"})
		case r.URL.Path == "/api/Users" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]api.UserProfile{{ID: 77, Email: "new@b.com", Name: "Nia"}})
		}
	}))
	defer server.Close()

	o, _ := newOrchestrator(t, server.URL)
	s, err := o.RegisterAndLogin(context.Background(), RegisterInput{
		Name:     "Nia",
		Email:    "new@b.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.UserID != 77 || s.DisplayName != "Nia" {
		t.Errorf("expected resolved new account, got %+v", s)
	}
}

func TestRefresh_SavesNewTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/gate/Login/refresh" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req api.RefreshRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.RefreshToken != "R1" {
			t.Errorf("expected refresh token R1, got %q", req.RefreshToken)
		}
		json.NewEncoder(w).Encode(api.LoginResponse{Token: "T2", RefreshToken: "R2"})
	}))
	defer server.Close()

	o, creds := newOrchestrator(t, server.URL)
	if err := creds.SaveToken("T1", "R1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := o.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Token != "T2" || s.RefreshToken != "R2" {
		t.Errorf("expected rotated tokens, got %+v", s)
	}
}

func TestRefresh_WithoutStoredToken(t *testing.T) {
	o, _ := newOrchestrator(t, "http://127.0.0.1:1")
	if _, err := o.Refresh(context.Background()); err == nil {
		t.Error("expected error when no refresh token stored")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	o, creds := newOrchestrator(t, "http://127.0.0.1:1")
	if err := creds.SaveToken("T1", "R1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := o.Logout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := o.Logout(); err != nil {
		t.Fatalf("second logout should not error: %v", err)
	}
	if creds.IsAuthenticated() {
		t.Error("expected unauthenticated after logout")
	}
	if s := o.Current(); s.Token != "" || s.UserID != 0 {
		t.Errorf("expected empty session, got %+v", s)
	}
}

func TestRequireUserID(t *testing.T) {
	o, creds := newOrchestrator(t, "http://127.0.0.1:1")

	if _, err := o.RequireUserID(); err == nil {
		t.Error("expected error when not logged in")
	}

	creds.SaveToken("T1", "")
	creds.SaveIdentity(0, "a@b.com", "")
	if _, err := o.RequireUserID(); err == nil {
		t.Error("expected error for unresolved sentinel id")
	}

	creds.SaveIdentity(42, "a@b.com", "Ana")
	id, err := o.RequireUserID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("expected 42, got %d", id)
	}
}
