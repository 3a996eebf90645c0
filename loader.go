package kirana

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadInventory reads the inventory file at path.
//
// A missing file is not an error: it yields an empty inventory. Any other
// failure, including a malformed file, is reported as ErrStorageUnavailable.
func LoadInventory(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewInventory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w: %w", path, ErrStorageUnavailable, err)
	}
	defer f.Close()

	inv, err := DecodeInventory(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w: %w", path, ErrStorageUnavailable, err)
	}
	return inv, nil
}

// SaveInventory overwrites the inventory file at path with inv.
//
// The content is first written to a temporary file in the same folder, then
// renamed over path, so that a failure never leaves a truncated file behind.
func SaveInventory(path string, inv *Inventory) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for inventory file %q: %w: %w", path, ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w: %w", path, ErrStorageUnavailable, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = EncodeInventory(tmp, inv); err != nil {
		return fmt.Errorf("could not encode inventory file %q: %w: %w", path, ErrStorageUnavailable, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("could not write inventory file %q: %w: %w", path, ErrStorageUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("could not write inventory file %q: %w: %w", path, ErrStorageUnavailable, err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("could not write inventory file %q: %w: %w", path, ErrStorageUnavailable, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace inventory file %q: %w: %w", path, ErrStorageUnavailable, err)
	}
	return nil
}
