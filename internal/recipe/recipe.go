// ABOUTME: Recipe data model shared by the API client, CLI and TUI
// ABOUTME: Handles the two wire shapes the backend emits for ids and timestamps

package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Recipe is a generated or saved recipe.
//
// The backend assigns two different identifiers depending on where a recipe
// came from: a generation response carries "id", while a recipe persisted by
// save-recipe carries the database identifier "_id". Only "_id" marks a recipe
// as saved.
type Recipe struct {
	SavedID     string    `json:"_id,omitempty"`
	GeneratedID string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	MealType    string    `json:"mealType"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   Timestamp `json:"createdAt,omitempty"`
}

// Saved reports whether the recipe has been persisted by the backend.
func (r *Recipe) Saved() bool {
	return r.SavedID != ""
}

// ID returns the identifier most useful for addressing the recipe:
// the saved id when present, otherwise the generation id.
func (r *Recipe) ID() string {
	if r.SavedID != "" {
		return r.SavedID
	}
	return r.GeneratedID
}

// IngredientsLine joins the ingredient list back into the comma-separated
// form the generate endpoint accepts, used when requesting an alternative.
func (r *Recipe) IngredientsLine() string {
	return strings.Join(r.Ingredients, ", ")
}

// Summary is a saved-recipe listing entry as returned by my-recipes.
type Summary struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   Timestamp `json:"createdAt,omitempty"`
}

// Timestamp tolerates both creation-time encodings the backend uses:
// epoch milliseconds on generated recipes, RFC 3339 strings on saved ones.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", str, err)
		}
		t.Time = parsed
		return nil
	}

	var millis int64
	if err := json.Unmarshal(data, &millis); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", s, err)
	}
	t.Time = time.UnixMilli(millis).UTC()
	return nil
}

// MarshalJSON implements json.Marshaler. Zero timestamps are encoded as null
// so omitted creation times round-trip cleanly.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}
