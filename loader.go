package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultFile is the conventional inventory file name.
const DefaultFile = "inventory.json"

// LoadInventory reads the inventory file at path.
//
// A missing file is not an error: it yields a fresh empty ledger. Any other
// read or decode failure also yields an empty ledger, together with the error
// so callers can log it and carry on.
func LoadInventory(path string) (*Ledger, []string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("load: inventory file %q not found; using empty inventory", path)
		return NewLedger(), nil, nil
	}
	if err != nil {
		return NewLedger(), nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	ledger, skipped, err := DecodeInventory(f)
	if err != nil {
		return NewLedger(), nil, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	return ledger, skipped, nil
}

// SaveInventory writes the ledger to path, overwriting any previous content.
// The directory for the file is created if needed.
func SaveInventory(path string, l *Ledger) error {
	if path == "" {
		return fmt.Errorf("cannot save inventory to an empty path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for inventory %q: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening inventory file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeInventory(f, l)
}
