// ABOUTME: Tests for the recipe data model
// ABOUTME: Covers the two id shapes and the dual timestamp encoding

package recipe

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSavedAndID(t *testing.T) {
	generated := Recipe{GeneratedID: "gen-1", Title: "Menemen"}
	if generated.Saved() {
		t.Error("expected generated recipe not saved")
	}
	if got := generated.ID(); got != "gen-1" {
		t.Errorf("expected id gen-1, got %q", got)
	}

	saved := Recipe{SavedID: "db-1", GeneratedID: "gen-1", Title: "Menemen"}
	if !saved.Saved() {
		t.Error("expected recipe with _id saved")
	}
	if got := saved.ID(); got != "db-1" {
		t.Errorf("expected saved id to win, got %q", got)
	}
}

func TestIngredientsLine(t *testing.T) {
	r := Recipe{Ingredients: []string{"tavuk", "domates", "soğan"}}
	if got := r.IngredientsLine(); got != "tavuk, domates, soğan" {
		t.Errorf("unexpected ingredients line %q", got)
	}
}

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"epoch millis", `1700000000000`, time.UnixMilli(1700000000000).UTC()},
		{"rfc3339", `"2024-03-01T10:30:00Z"`, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty string", `""`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if !ts.Time.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, ts.Time)
			}
		})
	}
}

func TestTimestampUnmarshalInvalid(t *testing.T) {
	for _, in := range []string{`"yesterday"`, `true`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}

func TestTimestampMarshal(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "null" {
		t.Errorf("expected null for zero timestamp, got %s", data)
	}

	ts := Timestamp{Time: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)}
	data, err = json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-03-01T10:30:00Z"` {
		t.Errorf("unexpected encoding %s", data)
	}
}

func TestRecipeWireShapes(t *testing.T) {
	generated := `{"id":"gen-1","title":"Menemen","ingredients":["yumurta"],"steps":["pişir"],"mealType":"Kahvaltılıklar","createdAt":1700000000000}`
	var g Recipe
	if err := json.Unmarshal([]byte(generated), &g); err != nil {
		t.Fatal(err)
	}
	if g.Saved() {
		t.Error("generated payload should not be saved")
	}
	if g.CreatedAt.IsZero() {
		t.Error("expected createdAt from epoch millis")
	}

	saved := `{"_id":"db-1","title":"Menemen","ingredients":["yumurta"],"steps":["pişir"],"mealType":"Kahvaltılıklar","createdAt":"2024-03-01T10:30:00Z"}`
	var s Recipe
	if err := json.Unmarshal([]byte(saved), &s); err != nil {
		t.Fatal(err)
	}
	if !s.Saved() {
		t.Error("saved payload should be saved")
	}
	if s.CreatedAt.IsZero() {
		t.Error("expected createdAt from RFC 3339 string")
	}
}
