package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lava-escape/internal/config"
	"github.com/vovakirdan/lava-escape/internal/games/lava"
	"github.com/vovakirdan/lava-escape/internal/leaderboard"
	"github.com/vovakirdan/lava-escape/internal/logging"
	"github.com/vovakirdan/lava-escape/internal/storage"
)

// Leaderboard backends.
const (
	storeSQLite = "sqlite"
	storeGData  = "gdata"
)

// saveDataApp names the save-data directory for the gdata backend.
const saveDataApp = "lavaescape"

// scoreStore is a leaderboard backend the CLI can also wipe.
type scoreStore interface {
	leaderboard.Store
	ClearScores() error
}

// openStore opens the backend selected by --store.
// The closer is never nil.
func openStore() (scoreStore, io.Closer, error) {
	switch flagStore {
	case storeSQLite:
		s, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return s, s, nil
	case storeGData:
		s, err := storage.OpenSaveData(saveDataApp)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return s, nopCloser{}, nil
	default:
		return nil, nopCloser{}, fmt.Errorf("unknown store %q (want %s or %s)", flagStore, storeSQLite, storeGData)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// session bundles what every play mode needs.
type session struct {
	game    *lava.Game
	logger  *log.Logger
	closers []io.Closer
}

// newSession loads config, opens the logger and the leaderboard, and builds the game.
// A store that cannot be opened is logged; the game then keeps scores in memory.
func newSession() (*session, error) {
	logger, logCloser, err := logging.New(logging.Options{
		Path:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: "lavaescape",
	})
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, closers: []io.Closer{logCloser}}

	cfg, err := loadGameConfig()
	if err != nil {
		s.Close()
		return nil, err
	}

	store, storeCloser, err := openStore()
	s.closers = append(s.closers, storeCloser)
	var board *leaderboard.Board
	if err != nil {
		logger.Warn("could not open leaderboard store, scores will not be saved", "store", flagStore, "error", err)
		board = leaderboard.NewBoard(nil, logger)
	} else {
		board = leaderboard.NewBoard(store, logger)
	}

	s.game = lava.New(cfg, lava.WithBoard(board), lava.WithLogger(logger))
	return s, nil
}

// loadGameConfig applies --config and --difficulty.
func loadGameConfig() (config.LavaConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.LavaConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// Close releases the store and then the log file.
func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
