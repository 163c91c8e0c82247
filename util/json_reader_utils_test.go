package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rental-server/models"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadCatalogFromJSON(t *testing.T) {
	tempFile := createTempFile(t, `[
		{"id": "1", "title": "Villa luxueuse à Bonanjo", "location": "Douala, Cameroun", "price": 150000,
		 "rating": 4.9, "type": "Villa", "coordinates": [9.6942, 4.0411], "image": "villa.jpg",
		 "amenities": ["Wi-Fi"], "unavailable_dates": ["2025-05-15"]}
	]`)

	listings, err := ReadCatalogFromJSON(tempFile)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("Expected 1 listing, got %d", len(listings))
	}
	l := listings[0]
	if l.Coordinates.Lat() != 4.0411 || l.Coordinates.Lon() != 9.6942 {
		t.Errorf("Unexpected coordinates %v", l.Coordinates)
	}
	if !l.IsBlocked(models.NewDate(2025, time.May, 15)) {
		t.Errorf("Expected 2025-05-15 to be blocked")
	}
}

func TestReadCatalogFromJSON_Errors(t *testing.T) {
	if _, err := ReadCatalogFromJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
	if _, err := ReadCatalogFromJSON(createTempFile(t, `{"id": "1"}`)); err == nil {
		t.Error("Expected an error for a non-array catalog")
	}
}

func TestReadInboxFromJSON(t *testing.T) {
	tempFile := createTempFile(t, `{
		"conversations": [{"id": "c1", "with": {"id": "u1", "name": "Marie Ngo"}, "unread": true}],
		"messages": [{"id": "m1", "conversation_id": "c1", "text": "Bonjour", "time": "2025-05-10T14:30:00Z"}]
	}`)

	inbox, err := ReadInboxFromJSON(tempFile)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(inbox.Conversations) != 1 || inbox.Conversations[0].With.Name != "Marie Ngo" {
		t.Errorf("Unexpected conversations %+v", inbox.Conversations)
	}
	if len(inbox.Messages) != 1 || inbox.Messages[0].ConversationID != "c1" {
		t.Errorf("Unexpected messages %+v", inbox.Messages)
	}
}

func TestReadDashboardSeedFromJSON(t *testing.T) {
	tempFile := createTempFile(t, `{
		"profile": {"name": "Jean Dupont", "email": "jean@example.com", "joined": "2023", "completeness": 85},
		"bookings": [{"id": "b1", "property": {"id": "1", "name": "Villa"}, "check_in": "2025-06-15", "check_out": "2025-06-20", "guests": 2, "total_price": 750000, "status": "confirmed"}]
	}`)

	seed, err := ReadDashboardSeedFromJSON(tempFile)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if seed.Profile.Completeness != 85 {
		t.Errorf("Expected completeness 85, got %d", seed.Profile.Completeness)
	}
	if len(seed.Bookings) != 1 || seed.Bookings[0].CheckOut != models.NewDate(2025, time.June, 20) {
		t.Errorf("Unexpected bookings %+v", seed.Bookings)
	}
}

func TestPrintListingsTable(t *testing.T) {
	var buf bytes.Buffer

	PrintListingsTable(&buf, []models.Listing{{ID: "4", Title: "Studio équipé à Deido", Location: "Douala, Cameroun", Type: "Studio", Price: 45000, Rating: 4.5}}, "FCFA")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and one row, got %q", buf.String())
	}
	if lines[1] != "4\tStudio équipé à Deido\tDouala, Cameroun\tStudio\t45000 FCFA\t4.5" {
		t.Errorf("Unexpected row %q", lines[1])
	}
}

func TestRenderListingsMap(t *testing.T) {
	var buf bytes.Buffer
	listings := []models.Listing{
		{ID: "1", Title: "Villa luxueuse à Bonanjo", Price: 150000, Coordinates: models.Coordinates{9.6942, 4.0411}},
	}

	err := RenderListingsMap(&buf, listings, MapOptions{Title: "Cameroun", Center: models.Coordinates{12.3547, 5.4755}, Currency: "FCFA"})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "<html") {
		t.Errorf("Expected an HTML document")
	}
	if !strings.Contains(html, "9.6942") {
		t.Errorf("Expected listing coordinates in the chart options")
	}
}
