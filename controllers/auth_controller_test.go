package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRegisterLoginMe(t *testing.T) {
	r := setupRouter(t)

	register := `{"name": "Ana García", "email": "ana@example.com", "password": "secret1"}`
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", register)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: code = %d, body = %s", w.Code, w.Body.String())
	}

	var reg struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reg.Token == "" || reg.User.Email != "ana@example.com" {
		t.Fatalf("unexpected register response: %s", w.Body.String())
	}

	// duplicate email
	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", register); w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: code = %d, want 409", w.Code)
	}

	// wrong password
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email": "ana@example.com", "password": "wrong1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: code = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email": "ana@example.com", "password": "secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: code = %d, body = %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &login)
	if login.Token == "" {
		t.Fatal("login returned no token")
	}

	// /me without a token
	if w := doJSON(t, r, http.MethodGet, "/api/auth/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("me without token: code = %d, want 401", w.Code)
	}

	// /me with the token
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var me struct {
		Email string `json:"email"`
	}
	json.Unmarshal(rec.Body.Bytes(), &me)
	if me.Email != "ana@example.com" {
		t.Fatalf("me returned %q", me.Email)
	}
}

func TestRegisterValidation(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"short name", `{"name": "A", "email": "a@b.com", "password": "secret1"}`},
		{"bad email", `{"name": "Ana", "email": "nope", "password": "secret1"}`},
		{"short password", `{"name": "Ana", "email": "a@b.com", "password": "12345"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doJSON(t, r, http.MethodPost, "/api/auth/register", tt.body); w.Code != http.StatusBadRequest {
				t.Fatalf("code = %d, want 400", w.Code)
			}
		})
	}
}
