// ABOUTME: Tests for the ingredient wizard screen
// ABOUTME: Covers the error banner and form rearm behavior

package wizard

import (
	"strings"
	"testing"
)

func TestViewShowsPrompt(t *testing.T) {
	w := New()
	view := w.View()
	if !strings.Contains(view, "Pratik Şef") {
		t.Error("expected title in view")
	}
	if !strings.Contains(view, "Elinizdeki malzemeleri yazın") {
		t.Error("expected tagline in view")
	}
}

func TestSetErrorShowsBanner(t *testing.T) {
	w := New()
	if cmd := w.SetError("Tarif üretilemedi."); cmd == nil {
		t.Error("expected form init command")
	}
	if !strings.Contains(w.View(), "Tarif üretilemedi.") {
		t.Error("expected banner in view")
	}
}

func TestResetClearsBanner(t *testing.T) {
	w := New()
	w.SetError("Tarif üretilemedi.")
	if cmd := w.Reset(); cmd == nil {
		t.Error("expected form init command")
	}
	if strings.Contains(w.View(), "Tarif üretilemedi.") {
		t.Error("expected banner cleared after reset")
	}
}
