// ABOUTME: Tests for the login, logout, and recipe commands
// ABOUTME: Drives the two-step login flow against an httptest backend

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pratiksef/pratiksef/internal/session"
)

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/request-code":
			respondJSON(t, w, http.StatusOK, map[string]any{"ok": true})
		case "/api/auth/verify-code":
			respondJSON(t, w, http.StatusOK, map[string]any{
				"token": "tok-new",
				"user":  map[string]string{"id": "u1", "email": "user@example.com"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestRunLogin_PromptedFlow(t *testing.T) {
	server := authServer(t)
	defer server.Close()

	useAPIURL(t, server.URL)
	path := useSessionFile(t)

	in := strings.NewReader("user@example.com\n123456\n")
	var buf bytes.Buffer
	if code := runLogin(context.Background(), in, &buf); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "Doğrulama kodu user@example.com adresine gönderildi.") {
		t.Errorf("expected code-sent message, got %q", out)
	}
	if !strings.Contains(out, "Giriş yapıldı: user@example.com") {
		t.Errorf("expected signed-in message, got %q", out)
	}

	// The session survived to disk for the next command.
	sess := session.NewManager(path)
	sess.Restore()
	if sess.Token() != "tok-new" {
		t.Errorf("expected persisted token, got %q", sess.Token())
	}
}

func TestRunLogin_EmailFlag(t *testing.T) {
	server := authServer(t)
	defer server.Close()

	useAPIURL(t, server.URL)
	useSessionFile(t)
	prev := loginEmail
	loginEmail = "user@example.com"
	defer func() { loginEmail = prev }()

	in := strings.NewReader("123456\n")
	var buf bytes.Buffer
	if code := runLogin(context.Background(), in, &buf); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if strings.Contains(buf.String(), "E-posta adresiniz:") {
		t.Error("expected no email prompt with --email")
	}
}

func TestRunLogin_WrongCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/request-code":
			respondJSON(t, w, http.StatusOK, map[string]any{"ok": true})
		case "/api/auth/verify-code":
			respondJSON(t, w, http.StatusUnauthorized, map[string]any{"error": "Kod hatalı"})
		}
	}))
	defer server.Close()

	useAPIURL(t, server.URL)
	useSessionFile(t)

	in := strings.NewReader("user@example.com\n000000\n")
	var buf bytes.Buffer
	if code := runLogin(context.Background(), in, &buf); code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Kod hatalı") {
		t.Errorf("expected server message, got %q", buf.String())
	}
}

func TestRunLogout(t *testing.T) {
	path := useSessionFile(t)
	seedSession(t, path)

	var buf bytes.Buffer
	runLogout(&buf)

	if !strings.Contains(buf.String(), "Oturum kapatıldı.") {
		t.Errorf("unexpected output %q", buf.String())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected session file removed")
	}
}

func TestRunRecipeDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/recipe/db-9" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		respondJSON(t, w, http.StatusOK, map[string]any{"ok": true})
	}))
	defer server.Close()

	useAPIURL(t, server.URL)
	seedSession(t, useSessionFile(t))

	var buf bytes.Buffer
	if code := runRecipeDelete(context.Background(), &buf, "db-9"); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Tarif silindi.") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRunRecipeSave_FromFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/save-recipe" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		respondJSON(t, w, http.StatusOK, map[string]any{"ok": true, "recipeId": "db-9"})
	}))
	defer server.Close()

	useAPIURL(t, server.URL)
	seedSession(t, useSessionFile(t))

	file := filepath.Join(t.TempDir(), "recipe.json")
	payload := `{"title":"Menemen","ingredients":["yumurta"],"steps":["Pişir"],"mealType":"Kahvaltı"}`
	if err := os.WriteFile(file, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if code := runRecipeSave(context.Background(), strings.NewReader(""), &buf, file); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Kaydedildi: db-9") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRunRecipeSave_FromStdin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusOK, map[string]any{"ok": true, "recipeId": "db-9"})
	}))
	defer server.Close()

	useAPIURL(t, server.URL)
	seedSession(t, useSessionFile(t))

	in := strings.NewReader(`{"title":"Menemen"}`)
	var buf bytes.Buffer
	if code := runRecipeSave(context.Background(), in, &buf, "-"); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
}

func TestRunRecipeSave_BadPayload(t *testing.T) {
	useSessionFile(t)

	in := strings.NewReader("{not json")
	var buf bytes.Buffer
	if code := runRecipeSave(context.Background(), in, &buf, "-"); code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}
