// ABOUTME: Tests for the recipes listing command
// ABOUTME: Covers single-page and --all listings and the formatters

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/pratiksef/pratiksef/internal/recipe"
)

func listingServer(t *testing.T, total int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		items := []map[string]string{}
		for i := skip; i < total && i < skip+limit; i++ {
			items = append(items, map[string]string{
				"_id":   fmt.Sprintf("r%02d", i),
				"title": fmt.Sprintf("Tarif %d", i),
			})
		}
		respondJSON(t, w, http.StatusOK, map[string]any{
			"items":   items,
			"hasMore": skip+limit < total,
		})
	}))
}

func TestRunRecipes_FirstPage(t *testing.T) {
	server := listingServer(t, 15)
	defer server.Close()

	useAPIURL(t, server.URL)
	seedSession(t, useSessionFile(t))

	var buf bytes.Buffer
	if code := runRecipes(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "Tarif 0") || !strings.Contains(out, "Tarif 9") {
		t.Errorf("expected first page entries, got %q", out)
	}
	if strings.Contains(out, "Tarif 10") {
		t.Errorf("expected only one page, got %q", out)
	}
	if !strings.Contains(out, "devamı var") {
		t.Errorf("expected more-pages hint, got %q", out)
	}
}

func TestRunRecipes_All(t *testing.T) {
	server := listingServer(t, 15)
	defer server.Close()

	useAPIURL(t, server.URL)
	seedSession(t, useSessionFile(t))
	prev := recipesAll
	recipesAll = true
	defer func() { recipesAll = prev }()

	var buf bytes.Buffer
	if code := runRecipes(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "Tarif 14") {
		t.Errorf("expected every entry, got %q", out)
	}
	if strings.Contains(out, "devamı var") {
		t.Errorf("expected no more-pages hint, got %q", out)
	}
}

func TestRunRecipes_SessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
	}))
	defer server.Close()

	useAPIURL(t, server.URL)
	seedSession(t, useSessionFile(t))

	var buf bytes.Buffer
	if code := runRecipes(context.Background(), &buf); code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Oturum süresi doldu") {
		t.Errorf("expected session expiry message, got %q", buf.String())
	}
}

func TestFormatRecipesHuman_Empty(t *testing.T) {
	if got := formatRecipesHuman(nil, false); got != "Henüz kayıtlı tarif yok." {
		t.Errorf("unexpected empty listing output %q", got)
	}
}

func TestFormatRecipesHuman_Dates(t *testing.T) {
	items := []recipe.Summary{{ID: "a", Title: "A"}}
	out := formatRecipesHuman(items, false)
	if !strings.Contains(out, "A") {
		t.Errorf("expected title, got %q", out)
	}
}
