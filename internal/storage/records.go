package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/crema/internal/logger"
)

// SaveRecords serializes the full collection as a JSON array and writes it
// under key.
func SaveRecords[T any](p Provider, key string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	if err := p.Set(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

// LoadRecords reads the collection stored under key. A missing key or
// malformed data yields an empty collection, never an error: losing a store
// beats refusing to start. Malformed data is logged so it is at least
// diagnosable.
func LoadRecords[T any](p Provider, key string) []T {
	raw, ok := p.Get(key)
	if !ok {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Warn("discarding malformed collection", "key", key, "error", err)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}

	return records
}
