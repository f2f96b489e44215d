// Package watchlist persists the set of followed players to a small
// JSON file under the user config dir. Mutations are written through
// immediately so the list survives a crash mid-session.
package watchlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Watchlist is a file-backed set of player names.
type Watchlist struct {
	mu      sync.Mutex
	path    string
	players map[string]struct{}
}

// DefaultPath returns the conventional watch-list location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "nba-score-cli", "watchlist.json"), nil
}

// Load reads the watch list at path, or starts an empty one when the
// file does not exist yet.
func Load(path string) (*Watchlist, error) {
	w := &Watchlist{path: path, players: make(map[string]struct{})}

	body, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return w, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}

	var names []string
	if err := json.Unmarshal(body, &names); err != nil {
		return nil, fmt.Errorf("parse watchlist: %w", err)
	}
	for _, n := range names {
		w.players[n] = struct{}{}
	}
	return w, nil
}

// Add follows a player and persists the change.
func (w *Watchlist) Add(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.players[name]; ok {
		return nil
	}
	w.players[name] = struct{}{}
	return w.save()
}

// Remove unfollows a player and persists the change.
func (w *Watchlist) Remove(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.players[name]; !ok {
		return nil
	}
	delete(w.players, name)
	return w.save()
}

// Contains reports whether the player is followed.
func (w *Watchlist) Contains(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.players[name]
	return ok
}

// Players returns the followed players in sorted order.
func (w *Watchlist) Players() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	names := make([]string, 0, len(w.players))
	for n := range w.players {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// save writes the list; callers hold the mutex.
func (w *Watchlist) save() error {
	names := make([]string, 0, len(w.players))
	for n := range w.players {
		names = append(names, n)
	}
	sort.Strings(names)

	body, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return fmt.Errorf("encode watchlist: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(w.path), dirMode); err != nil {
		return fmt.Errorf("create watchlist dir: %w", err)
	}
	if err := os.WriteFile(w.path, body, fileMode); err != nil {
		return fmt.Errorf("write watchlist: %w", err)
	}
	return nil
}
