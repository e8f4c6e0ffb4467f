package api

import (
	"testing"

	"github.com/rs/zerolog"

	"preset-tracker/internal/config"
)

func TestParseItemNames(t *testing.T) {
	body := []byte(`{
		"501": {"name": "Crimson Staff", "description": "A staff."},
		"100": {"name": "Hydra Card"},
		"not-an-id": {"name": "ignored"}
	}`)

	names, err := parseItemNames(body)
	if err != nil {
		t.Fatalf("parseItemNames: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2", len(names))
	}
	if names[501] != "Crimson Staff" || names[100] != "Hydra Card" {
		t.Errorf("names = %v", names)
	}
}

func TestParseItemNamesRejectsInvalidJSON(t *testing.T) {
	if _, err := parseItemNames([]byte("[]")); err == nil {
		t.Error("array payload must be rejected")
	}
	if _, err := parseItemNames([]byte("{broken")); err == nil {
		t.Error("broken payload must be rejected")
	}
}

func TestNamesWithoutURLConfigured(t *testing.T) {
	client := NewItemDataClient(&config.Config{}, zerolog.Nop())
	if names := client.Names(); names != nil {
		t.Errorf("got %v, want nil when no item data URL is set", names)
	}
}
