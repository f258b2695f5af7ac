package storage

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/maskins/ticketwatch/internal/performance"
)

// Snapshot is the record set of one completed check.
type Snapshot struct {
	EventURL  string                        `json:"event_url"`
	Records   map[string]performance.Record `json:"records"` // keyed by Record.PerformanceKey
	UpdatedAt string                        `json:"updated_at"`
}

// NewSnapshot builds a snapshot from a record list. Later records win when
// two share a performance key, which cannot happen on deduplicated input.
func NewSnapshot(eventURL string, records []performance.Record) *Snapshot {
	snap := &Snapshot{
		EventURL:  eventURL,
		Records:   make(map[string]performance.Record, len(records)),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, rec := range records {
		snap.Records[rec.PerformanceKey()] = rec
	}
	return snap
}

// NewlyBookable returns the current records whose performance slot was
// absent from the previous snapshot or was previously in a non-bookable
// status, and is bookable now. Input order is preserved. A nil previous
// snapshot means every bookable record is new.
func NewlyBookable(previous *Snapshot, current []performance.Record) []performance.Record {
	var fresh []performance.Record
	for _, rec := range current {
		if !rec.Status.Bookable() {
			continue
		}
		if previous != nil {
			if before, exists := previous.Records[rec.PerformanceKey()]; exists && before.Status.Bookable() {
				continue
			}
		}
		fresh = append(fresh, rec)
	}
	return fresh
}

// Storage reads and writes snapshots under a data directory.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating the directory if
// needed. A leading "~/" is expanded to the user's home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// snapshotPath derives a stable file name from the event URL so multiple
// watched pages can share a data directory.
func (s *Storage) snapshotPath(eventURL string) string {
	sum := sha1.Sum([]byte(eventURL))
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%x.json", sum[:8]))
}

// Load reads the previous snapshot for an event URL. A missing file is not
// an error; it returns nil, meaning "no previous run".
func (s *Storage) Load(eventURL string) (*Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(eventURL))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snapshot.Records == nil {
		snapshot.Records = make(map[string]performance.Record)
	}
	return &snapshot, nil
}

// Save writes a snapshot to disk.
func (s *Storage) Save(snapshot *Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(s.snapshotPath(snapshot.EventURL), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
