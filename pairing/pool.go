package pairing

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// poolRecord is the on-disk shape of one candidate-pool entry.
// The pool file is an ordered JSON array of these records; pairing IDs
// are not persisted (downstream consumers key on duty sequences).
type poolRecord struct {
	Base   string   `json:"base"`
	Duties []string `json:"duties"`
	Cost   float64  `json:"cost"`
}

// WritePool encodes pool as an indented JSON array of {base, duties, cost}
// records, preserving order.
//
// Complexity: O(total duties).
func WritePool(w io.Writer, pool []Pairing) error {
	records := make([]poolRecord, len(pool))
	for i, p := range pool {
		records[i] = poolRecord{Base: p.Base, Duties: p.Duties, Cost: p.Cost}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("pairing: encode pool: %w", err)
	}

	return nil
}

// ReadPool decodes a candidate-pool JSON array written by WritePool.
// Returned pairings carry empty IDs.
func ReadPool(r io.Reader) ([]Pairing, error) {
	var records []poolRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("pairing: decode pool: %w", err)
	}

	pool := make([]Pairing, len(records))
	for i, rec := range records {
		pool[i] = Pairing{Base: rec.Base, Duties: rec.Duties, Cost: rec.Cost}
	}

	return pool, nil
}

// SavePool writes pool to path, creating or truncating the file.
func SavePool(path string, pool []Pairing) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pairing: create pool file: %w", err)
	}
	defer f.Close()

	return WritePool(f, pool)
}

// LoadPool reads a candidate pool from path.
func LoadPool(path string) ([]Pairing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pairing: open pool file: %w", err)
	}
	defer f.Close()

	return ReadPool(f)
}
