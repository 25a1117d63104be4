package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileManager provides JSON file persistence rooted at a state directory.
type FileManager struct {
	rootDir string
}

// NewFileManager creates a new FileManager with the given root directory.
func NewFileManager(rootDir string) *FileManager {
	return &FileManager{rootDir: rootDir}
}

// GetPath returns the full path of a file or directory under the root.
func (fm *FileManager) GetPath(path string) string {
	return filepath.Join(fm.rootDir, path)
}

// PathExists returns true if the path exists, false otherwise.
func (fm *FileManager) PathExists(path string) bool {
	_, err := os.Stat(fm.GetPath(path))
	return !os.IsNotExist(err)
}

// LoadJSONFile loads a JSON file and unmarshals it into the provided interface.
func (fm *FileManager) LoadJSONFile(path string, v interface{}) error {
	if !fm.PathExists(path) {
		return os.ErrNotExist
	}
	data, err := os.ReadFile(fm.GetPath(path))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode JSON from %s: %w", path, err)
	}
	return nil
}

// SaveJSONFile marshals the provided interface and saves it to a JSON file.
func (fm *FileManager) SaveJSONFile(data interface{}, path string) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data to JSON for %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(fm.GetPath(path)), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	return os.WriteFile(fm.GetPath(path), jsonData, 0600)
}
