//go:build !android && !js

package scoreboard

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type fileStorage struct {
	path string
}

// NewStorage returns a JSON file store at path.
func NewStorage(path string) Storage {
	return &fileStorage{path: path}
}

func (s *fileStorage) Save(entries []Entry) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	return enc.Encode(entries)
}

func (s *fileStorage) Load() ([]Entry, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		// first run
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var loaded []Entry
	if err := json.NewDecoder(file).Decode(&loaded); err != nil {
		return nil, err
	}
	return loaded, nil
}
