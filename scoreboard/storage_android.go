//go:build android

package scoreboard

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type androidStorage struct {
	name string
}

// NewStorage stores the board under the directory given to SetDir, falling
// back to the user config dir. Only the base name of path is used. The
// directory is resolved on every access since the host may call SetDir after
// the game is built.
func NewStorage(path string) Storage {
	return &androidStorage{name: filepath.Base(path)}
}

func (s *androidStorage) filePath() string {
	dir := customDir
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			dir = "."
		}
	}
	return filepath.Join(dir, s.name)
}

func (s *androidStorage) Save(entries []Entry) error {
	file, err := os.Create(s.filePath())
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewEncoder(file).Encode(entries)
}

func (s *androidStorage) Load() ([]Entry, error) {
	file, err := os.Open(s.filePath())
	if err != nil {
		return nil, nil
	}
	defer file.Close()
	var loaded []Entry
	if err := json.NewDecoder(file).Decode(&loaded); err != nil {
		return nil, err
	}
	return loaded, nil
}
