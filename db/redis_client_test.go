package db_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"rental-server/db"
)

// Test the Set and Get methods against the in-memory client
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.client.Set("test-key", "test-value"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get("test-key")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if retrieved != "test-value" {
				t.Errorf("Expected test-value, got %s", retrieved)
			}

			if _, err := test.client.Get("missing"); !errors.Is(err, db.ErrKeyNotFound) {
				t.Errorf("Expected ErrKeyNotFound, got %v", err)
			}
		})
	}
}

func TestMockRedisClient_GetLocationsWithinRadius(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	ctx := context.Background()

	// Bonanjo and Akwa are a couple of km apart, Bastos (Yaoundé) ~200km away.
	points := []struct {
		id       string
		lat, lon float64
	}{
		{"bastos", 3.8880, 11.5130},
		{"akwa", 4.0500, 9.7000},
		{"bonanjo", 4.0411, 9.6942},
	}
	for _, p := range points {
		if err := client.AddLocationWithJSON(ctx, "places", p.id, p.lat, p.lon, map[string]string{"id": p.id}); err != nil {
			t.Fatalf("AddLocationWithJSON failed: %v", err)
		}
	}

	results, err := client.GetLocationsWithinRadius("places", 4.0411, 9.6942, 10)
	if err != nil {
		t.Fatalf("GetLocationsWithinRadius failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	var nearest map[string]string
	if err := json.Unmarshal([]byte(results[0]), &nearest); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if nearest["id"] != "bonanjo" {
		t.Errorf("Expected bonanjo first, got %s", nearest["id"])
	}

	all, _ := client.GetLocationsWithinRadius("places", 4.0411, 9.6942, 500)
	if len(all) != 3 {
		t.Errorf("Expected 3 results within 500km, got %d", len(all))
	}
}

func TestMockRedisClient_RemoveLocations(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	_ = client.AddLocationWithJSON(context.Background(), "places", "a", 4.05, 9.7, "a")
	_ = client.AddLocationWithJSON(context.Background(), "places", "b", 4.05, 9.7, "b")

	if err := client.RemoveLocations("places", "a"); err != nil {
		t.Fatalf("RemoveLocations failed: %v", err)
	}

	results, _ := client.GetLocationsWithinRadius("places", 4.05, 9.7, 1)
	if len(results) != 1 || results[0] != `"b"` {
		t.Errorf("Expected only b to remain, got %v", results)
	}
	if _, err := client.Get("a"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("Expected member data to be deleted, got %v", err)
	}
}

func TestMockRedisClient_KeysAndDel(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	_ = client.Set("inbox_messages_v1:c2", "[]")
	_ = client.Set("inbox_messages_v1:c1", "[]")
	_ = client.Set("inbox_conversations_v1", "[]")

	keys, err := client.Keys("inbox_messages_v1:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "inbox_messages_v1:c1" {
		t.Errorf("Unexpected keys: %v", keys)
	}

	_ = client.Del("inbox_messages_v1:c1")
	keys, _ = client.Keys("inbox_messages_v1:*")
	if len(keys) != 1 {
		t.Errorf("Expected 1 key after Del, got %v", keys)
	}
}

func TestHaversineKm(t *testing.T) {
	// Douala to Yaoundé is roughly 200km as the crow flies.
	d := db.HaversineKm(4.0511, 9.7679, 3.8480, 11.5021)
	if d < 185 || d > 205 {
		t.Errorf("Unexpected distance %.1f", d)
	}
	if db.HaversineKm(4.0511, 9.7679, 4.0511, 9.7679) != 0 {
		t.Error("Expected zero distance for identical points")
	}
}

func TestRedisClient_Ping(t *testing.T) {
	if err := db.NewMockRedisClient(context.Background()).Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
