package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"rental-server/models"
)

func readJSONFile(filePath string, v interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", filePath, err)
	}
	return nil
}

// ReadCatalogFromJSON loads a listing catalog from JSON on disk.
func ReadCatalogFromJSON(filePath string) ([]models.Listing, error) {
	var listings []models.Listing
	if err := readJSONFile(filePath, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// ReadInboxFromJSON loads the seed conversations and messages.
func ReadInboxFromJSON(filePath string) (*models.Inbox, error) {
	var inbox models.Inbox
	if err := readJSONFile(filePath, &inbox); err != nil {
		return nil, err
	}
	return &inbox, nil
}

// ReadDashboardSeedFromJSON loads the profile and booking history.
func ReadDashboardSeedFromJSON(filePath string) (*models.DashboardSeed, error) {
	var seed models.DashboardSeed
	if err := readJSONFile(filePath, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

// PrintListingsTable writes one line per listing, tab aligned by the caller.
func PrintListingsTable(w io.Writer, listings []models.Listing, currency string) {
	fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tTYPE\tPRICE\tRATING")
	for _, l := range listings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f %s\t%.1f\n", l.ID, l.Title, l.Location, l.Type, l.Price, currency, l.Rating)
	}
}
