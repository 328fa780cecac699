//go:build js && wasm

package scoreboard

import (
	"encoding/json"
	"syscall/js"
)

type localStorage struct {
	key string
}

// NewStorage keeps the board in the browser's localStorage. The path only
// namespaces the key.
func NewStorage(path string) Storage {
	return &localStorage{key: "getaway:" + path}
}

func (s *localStorage) Save(entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	js.Global().Get("localStorage").Call("setItem", s.key, string(data))
	return nil
}

func (s *localStorage) Load() ([]Entry, error) {
	item := js.Global().Get("localStorage").Call("getItem", s.key)
	if item.IsNull() || item.IsUndefined() {
		return nil, nil
	}
	var loaded []Entry
	if err := json.Unmarshal([]byte(item.String()), &loaded); err != nil {
		return nil, err
	}
	return loaded, nil
}
