package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/trainpartner/tpx/internal/models"
	"github.com/trainpartner/tpx/internal/shared"
	"golang.org/x/oauth2"
)

func TestAPIService(t *testing.T) {
	ctx := context.Background()

	t.Run("New", func(t *testing.T) {
		t.Run("with empty base URL uses default", func(t *testing.T) {
			srv := NewAPIService("", nil)
			if srv.baseURL != "http://localhost:8080/api" {
				t.Errorf("unexpected default baseURL: %s", srv.baseURL)
			}
			if srv.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})
	})

	t.Run("Login", func(t *testing.T) {
		t.Run("returns the access token", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/authentication/login" {
					t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				var req LoginRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if req.Username != "alice" || req.Password != "secret" {
					t.Errorf("unexpected credentials: %+v", req)
				}
				json.NewEncoder(w).Encode(LoginResponse{AccessToken: "tok-123", TokenType: "Bearer"})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			resp, err := srv.Login(ctx, LoginRequest{Username: "alice", Password: "secret"})
			if err != nil {
				t.Fatalf("login failed: %v", err)
			}
			if resp.AccessToken != "tok-123" {
				t.Errorf("unexpected token: %s", resp.AccessToken)
			}
		})

		t.Run("401 maps to bad credentials", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			_, err := srv.Login(ctx, LoginRequest{Username: "alice", Password: "wrong"})
			if !errors.Is(err, shared.ErrBadCredentials) {
				t.Errorf("expected ErrBadCredentials, got %v", err)
			}
		})

		t.Run("other failures map to API error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			_, err := srv.Login(ctx, LoginRequest{})
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})

	t.Run("bearer header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
				t.Errorf("expected bearer header, got %q", got)
			}
			json.NewEncoder(w).Encode(models.User{ID: 1, Username: "alice"})
		}))
		defer server.Close()

		srv := NewAPIService(server.URL, nil)
		srv.SetToken(&oauth2.Token{AccessToken: "tok-123"})

		user, err := srv.CurrentUser(ctx)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if user.Username != "alice" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("CurrentUser without token", func(t *testing.T) {
		srv := NewAPIService("http://example.com", nil)
		if _, err := srv.CurrentUser(ctx); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}

		srv.SetToken(&oauth2.Token{AccessToken: "tok"})
		srv.ClearToken()
		if srv.Authenticated() {
			t.Error("expected cleared token")
		}
	})

	t.Run("availability checks", func(t *testing.T) {
		t.Run("username query is escaped", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/user/checkUsernameAvailability" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				if got := r.URL.Query().Get("username"); got != "a b" {
					t.Errorf("unexpected username: %q", got)
				}
				json.NewEncoder(w).Encode(map[string]bool{"available": true})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			available, err := srv.CheckUsernameAvailability(ctx, "a b")
			if err != nil {
				t.Fatalf("check failed: %v", err)
			}
			if !available {
				t.Error("expected available")
			}
		})

		t.Run("program title carries the scope id", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("programTitle") != "My Program" || q.Get("programId") != "7" {
					t.Errorf("unexpected query: %v", q)
				}
				json.NewEncoder(w).Encode(map[string]bool{"available": false})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			available, err := srv.CheckProgramTitleAvailability(ctx, "My Program", 7)
			if err != nil {
				t.Fatalf("check failed: %v", err)
			}
			if available {
				t.Error("expected unavailable")
			}
		})
	})

	t.Run("Program round trip", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/programs/5":
				json.NewEncoder(w).Encode(models.Program{
					ID:    5,
					Title: "Leg day",
					Exercises: []models.Exercise{
						{ID: 21, Day: 1, Name: "Squat", Series: 3, RepeatsPerSeries: 10},
					},
				})
			case r.Method == http.MethodPost && r.URL.Path == "/programs":
				var program models.Program
				if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
					t.Fatalf("failed to decode program: %v", err)
				}
				program.ID = 5
				json.NewEncoder(w).Encode(program)
			default:
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
		}))
		defer server.Close()

		srv := NewAPIService(server.URL, nil)

		program, err := srv.Program(ctx, 5)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if program.Title != "Leg day" || len(program.Exercises) != 1 {
			t.Errorf("unexpected program: %+v", program)
		}
		if program.Exercises[0].Name != "Squat" {
			t.Errorf("unexpected exercise: %+v", program.Exercises[0])
		}

		saved, err := srv.SaveProgram(ctx, models.Program{Title: "Leg day"})
		if err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if saved.ID != 5 {
			t.Errorf("expected server-assigned id, got %d", saved.ID)
		}
	})
}
