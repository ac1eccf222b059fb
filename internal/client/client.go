// ABOUTME: HTTP client for the Pratik Şef recipe API
// ABOUTME: Owns request validation, bearer auth, and the exchange error taxonomy

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pratiksef/pratiksef/internal/recipe"
	"github.com/pratiksef/pratiksef/internal/session"
)

// LoginTimeout bounds each exchange of the login flow.
const LoginTimeout = 60 * time.Second

// maxResponseBytes caps response reads; recipe payloads are small.
const maxResponseBytes = 1 << 20

// Client is the API client for the Pratik Şef backend. Every authenticated
// exchange reads the bearer token from the session manager at call time, so
// a login or logout is reflected in the next exchange issued.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Manager
}

// New creates a new API client with the given base URL. An empty base URL is
// allowed here; each exchange reports it as a configuration error instead of
// attempting a call.
func New(baseURL string, sess *session.Manager) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		session: sess,
	}
}

// reqOpts carries per-exchange behavior for do.
type reqOpts struct {
	authed      bool
	rateLimited bool   // 429 is a rate-limit condition (recipe generation)
	fallback    string // generic message when the server supplies none
}

// okResponse is the minimal success envelope for flag-style endpoints.
type okResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RequestCode asks the backend to email a one-time login code.
func (c *Client) RequestCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return newError(KindValidation, "Lütfen geçerli bir e-posta adresi girin.")
	}

	body := map[string]string{"email": email}
	data, err := c.do(ctx, http.MethodPost, "/api/auth/request-code", body, reqOpts{
		fallback: "Kod gönderilemedi.",
	})
	if err != nil {
		return err
	}

	var resp okResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return wrapError(KindTransport, "Sunucudan geçersiz yanıt geldi.", err)
	}
	if !resp.OK {
		return newError(KindLogical, messageOrFallback(resp.Error, resp.Message, "Kod gönderilemedi."))
	}
	return nil
}

// verifyResponse is the verify-code success envelope.
type verifyResponse struct {
	Token   string       `json:"token"`
	User    session.User `json:"user"`
	Error   string       `json:"error"`
	Message string       `json:"message"`
}

// VerifyCode exchanges the emailed code for a session. On success the session
// manager is updated and the caller can leave the login flow.
func (c *Client) VerifyCode(ctx context.Context, email, code string) error {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" {
		return newError(KindValidation, "Lütfen geçerli bir e-posta adresi girin.")
	}
	if code == "" {
		return newError(KindValidation, "Lütfen gelen kodu girin.")
	}

	body := map[string]string{"email": email, "code": code}
	data, err := c.do(ctx, http.MethodPost, "/api/auth/verify-code", body, reqOpts{
		fallback: "Doğrulama başarısız.",
	})
	if err != nil {
		return err
	}

	var resp verifyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return wrapError(KindTransport, "Sunucudan geçersiz yanıt geldi.", err)
	}
	if resp.Token == "" {
		return newError(KindLogical, "Token alınamadı, lütfen tekrar deneyin.")
	}

	c.session.Set(resp.Token, resp.User)
	return nil
}

// GenerateRecipe requests a recipe for the given ingredients and meal type.
// The result is not persisted; SaveRecipe does that explicitly.
func (c *Client) GenerateRecipe(ctx context.Context, ingredients, mealTypeID string, alternative bool) (*recipe.Recipe, error) {
	if strings.TrimSpace(ingredients) == "" {
		return nil, newError(KindValidation, "Lütfen malzemeleri girin.")
	}
	if mealTypeID == "" {
		return nil, newError(KindValidation, "Lütfen bir öğün türü seçin.")
	}

	body := map[string]any{
		"ingredients":   ingredients,
		"mealTypeId":    mealTypeID,
		"isAlternative": alternative,
	}
	data, err := c.do(ctx, http.MethodPost, "/api/generate-recipe", body, reqOpts{
		authed:      true,
		rateLimited: true,
		fallback:    "Tarif üretilemedi.",
	})
	if err != nil {
		return nil, err
	}

	var r recipe.Recipe
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, wrapError(KindTransport, "Sunucudan geçersiz yanıt geldi.", err)
	}
	return &r, nil
}

// saveResponse is the save-recipe success envelope.
type saveResponse struct {
	OK       bool   `json:"ok"`
	RecipeID string `json:"recipeId"`
	Error    string `json:"error"`
	Message  string `json:"message"`
}

// SaveRecipe persists a recipe. Identifier fields are stripped from the
// payload; the backend is the sole source of identifiers. On success the
// assigned id is merged into r and returned.
func (c *Client) SaveRecipe(ctx context.Context, r *recipe.Recipe) (string, error) {
	payload := *r
	payload.SavedID = ""
	payload.GeneratedID = ""

	data, err := c.do(ctx, http.MethodPost, "/api/save-recipe", payload, reqOpts{
		authed:   true,
		fallback: "Kayıt hatası",
	})
	if err != nil {
		return "", err
	}

	var resp saveResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", wrapError(KindTransport, "Sunucudan geçersiz yanıt geldi.", err)
	}
	if !resp.OK || resp.RecipeID == "" {
		return "", newError(KindLogical, messageOrFallback(resp.Error, resp.Message, "Kayıt hatası"))
	}

	r.SavedID = resp.RecipeID
	return resp.RecipeID, nil
}

// DeleteRecipe removes a saved recipe by id.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return newError(KindValidation, "Tarif kimliği eksik.")
	}

	data, err := c.do(ctx, http.MethodDelete, "/api/recipe/"+id, nil, reqOpts{
		authed:   true,
		fallback: "Silme hatası",
	})
	if err != nil {
		return err
	}

	var resp okResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return wrapError(KindTransport, "Sunucudan geçersiz yanıt geldi.", err)
	}
	if !resp.OK {
		return newError(KindLogical, messageOrFallback(resp.Error, resp.Message, "Silme hatası"))
	}
	return nil
}

// GetRecipe fetches a recipe's full payload by id, the hydration path used
// when a recipe arrives without inline data.
func (c *Client) GetRecipe(ctx context.Context, id string) (*recipe.Recipe, error) {
	if strings.TrimSpace(id) == "" {
		return nil, newError(KindValidation, "Tarif kimliği eksik.")
	}

	data, err := c.do(ctx, http.MethodGet, "/api/recipe/"+id, nil, reqOpts{
		authed:   true,
		fallback: "Tarif yüklenemedi.",
	})
	if err != nil {
		return nil, err
	}

	// The detail endpoint can answer 200 with an error field.
	var probe okResponse
	if err := json.Unmarshal(data, &probe); err == nil && probe.Error != "" {
		return nil, newError(KindLogical, probe.Error)
	}

	var r recipe.Recipe
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, wrapError(KindTransport, "Sunucudan geçersiz yanıt geldi.", err)
	}
	return &r, nil
}

// listResponse is the paginated my-recipes envelope. Older backends answer
// with a bare array instead, which implies there are no further pages.
type listResponse struct {
	Items   []recipe.Summary `json:"items"`
	HasMore bool             `json:"hasMore"`
}

// ListSavedRecipes fetches one page of the user's saved recipes. The second
// return value reports whether more pages exist.
func (c *Client) ListSavedRecipes(ctx context.Context, skip, limit int) ([]recipe.Summary, bool, error) {
	path := fmt.Sprintf("/api/my-recipes?limit=%d&skip=%d", limit, skip)
	data, err := c.do(ctx, http.MethodGet, path, nil, reqOpts{
		authed:   true,
		fallback: "Tarifler yüklenemedi.",
	})
	if err != nil {
		return nil, false, err
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []recipe.Summary
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, false, wrapError(KindTransport, "Sunucudan geçersiz yanıt geldi.", err)
		}
		return items, false, nil
	}

	var resp listResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false, wrapError(KindTransport, "Sunucudan geçersiz yanıt geldi.", err)
	}
	return resp.Items, resp.HasMore, nil
}

// do issues one exchange and returns the raw JSON body on success. It owns
// the shared failure rules: base URL validation, bearer attachment, the
// JSON content-type requirement, 401 logout, and 429 classification.
func (c *Client) do(ctx context.Context, method, path string, body any, opts reqOpts) ([]byte, error) {
	if c.baseURL == "" {
		return nil, newError(KindConfiguration, "API adresi (PRATIKSEF_API_URL) bulunamadı.")
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, wrapError(KindTransport, "İstek hazırlanamadı.", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, wrapError(KindTransport, "İstek hazırlanamadı.", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.authed {
		// Read the token at call time, never a cached copy.
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.Canceled {
			return nil, wrapError(KindTransport, "İstek iptal edildi.", err)
		}
		if ctx.Err() == context.DeadlineExceeded {
			return nil, wrapError(KindTransport, "İstek zaman aşımına uğradı.", err)
		}
		return nil, wrapError(KindTransport, "Bağlantı hatası: Sunucuya ulaşılamıyor.", err)
	}
	defer resp.Body.Close()

	// A non-JSON response is a protocol violation regardless of status;
	// never attempt to parse it.
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil, httpError(KindTransport, "Sunucudan geçersiz yanıt geldi (HTML hatası olabilir).", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, wrapError(KindTransport, "Sunucudan geçersiz yanıt geldi.", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !isAuthPath(path) {
		// Session rejected outside the auth endpoints: force logout so the
		// caller can redirect to the login flow.
		c.session.Logout()
		return nil, httpError(KindAuthentication, "Oturum süresi doldu, lütfen tekrar giriş yapın.", resp.StatusCode)
	}

	if resp.StatusCode == http.StatusTooManyRequests && opts.rateLimited {
		msg := serverMessage(data)
		if msg == "" {
			msg = "Günlük öneri limitine ulaşıldı."
		}
		return nil, httpError(KindRateLimit, msg, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(data)
		if msg == "" {
			msg = opts.fallback
		}
		return nil, httpError(KindLogical, msg, resp.StatusCode)
	}

	return data, nil
}

// isAuthPath reports whether the path belongs to the passwordless login
// endpoints, where a 401 means a wrong code rather than an expired session.
func isAuthPath(path string) bool {
	return strings.HasPrefix(path, "/api/auth/")
}

// serverMessage extracts the server-supplied error message, if any.
func serverMessage(data []byte) string {
	var resp okResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return ""
	}
	return messageOrFallback(resp.Error, resp.Message, "")
}

func messageOrFallback(errMsg, message, fallback string) string {
	if errMsg != "" {
		return errMsg
	}
	if message != "" {
		return message
	}
	return fallback
}
