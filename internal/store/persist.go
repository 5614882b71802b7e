// Persisted client state stores.
//
// Each store owns one JSON snapshot file under the data directory and is
// its sole writer. Reads that fail (missing file, corrupt payload)
// degrade to defaults and never block startup; writes that fail are
// logged and the in-memory state stays authoritative for the session.
package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
)

type persister struct {
	path string
}

func newPersister(dir, name string) persister {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Failed to create data dir %s: %v", dir, err)
	}
	return persister{path: filepath.Join(dir, name)}
}

// load reads the snapshot into v, reporting whether anything usable was
// found. A corrupt payload is logged and treated as absent.
func (p persister) load(v any) bool {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Failed to read %s: %v", p.path, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Corrupt snapshot %s, starting fresh: %v", p.path, err)
		return false
	}
	return true
}

// save writes the snapshot. Failures are logged, never propagated.
func (p persister) save(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Failed to encode %s: %v", p.path, err)
		return
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		log.Printf("Failed to write %s: %v", p.path, err)
	}
}

// remove deletes the snapshot file, used by the total reset.
func (p persister) remove() {
	if err := os.Remove(p.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to remove %s: %v", p.path, err)
	}
}
