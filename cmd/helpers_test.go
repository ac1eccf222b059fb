// ABOUTME: Shared test helpers for the cmd package
// ABOUTME: Seeds session files and points the client at httptest servers

package cmd

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/pratiksef/pratiksef/internal/session"
)

// useSessionFile points the --session-file flag at a temp path and restores
// it afterwards.
func useSessionFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	prev := sessionFile
	sessionFile = path
	t.Cleanup(func() { sessionFile = prev })
	return path
}

// seedSession writes a logged-in session to the active session file.
func seedSession(t *testing.T, path string) {
	t.Helper()
	sess := session.NewManager(path)
	sess.Set("tok-1", session.User{ID: "u1", Email: "user@example.com", Name: "Ayşe"})
}

// useAPIURL points the --api-url flag at url and restores it afterwards.
func useAPIURL(t *testing.T, url string) {
	t.Helper()
	prev := apiURL
	apiURL = url
	t.Cleanup(func() { apiURL = prev })
}

func respondJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestMain(m *testing.M) {
	// Keep the environment out of GetAPIURL so tests control configuration
	// through the flag variables alone.
	os.Unsetenv("PRATIKSEF_API_URL")
	os.Exit(m.Run())
}
