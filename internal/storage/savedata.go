package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/lava-escape/internal/leaderboard"
)

// Save-data keys. The board is kept as one JSON value, the same shape the
// browser build wrote to local storage.
const (
	saveObject   = "leaderboard"
	saveProperty = "lavaEscapeLeaderboard"
)

// SaveData stores the board through the platform's save-data directory.
// A nil manager keeps nothing between sessions.
type SaveData struct {
	manager *gdata.Manager
}

var _ leaderboard.Store = (*SaveData)(nil)

// OpenSaveData opens the save-data location for appName.
func OpenSaveData(appName string) (*SaveData, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return NewSaveData(m), nil
}

// NewSaveData wraps an existing manager.
func NewSaveData(m *gdata.Manager) *SaveData {
	return &SaveData{manager: m}
}

// Load returns the stored board. A missing value is an empty board.
func (s *SaveData) Load() ([]leaderboard.Entry, error) {
	if s.manager == nil {
		return nil, nil
	}
	if !s.manager.ObjectPropExists(saveObject, saveProperty) {
		return nil, nil
	}

	data, err := s.manager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read save data: %w", err)
	}
	return leaderboard.Decode(data)
}

// Save writes the board.
func (s *SaveData) Save(entries []leaderboard.Entry) error {
	if s.manager == nil {
		return nil
	}

	data, err := leaderboard.Encode(entries)
	if err != nil {
		return err
	}
	if err := s.manager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("storage: cannot write save data: %w", err)
	}
	return nil
}

// ClearScores empties the stored board.
func (s *SaveData) ClearScores() error {
	return s.Save(nil)
}
