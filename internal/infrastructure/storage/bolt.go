package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/game"
)

var (
	bucketIndex = []byte("index") // id -> difficulty bucket name
	bucketGame  = []byte("game")
	keyGame     = []byte("current")
)

// Bolt stores puzzles in a bbolt database: one bucket per difficulty plus
// an index bucket resolving IDs to their bucket, and a game bucket holding
// the single savegame.
type Bolt struct{ db *bbolt.DB }

// OpenBolt opens (or creates) the database at path. The open times out
// after a second if another process holds the file lock.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o666, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, d := range domain.Difficulties {
			if _, err := tx.CreateBucketIfNotExists([]byte(d.String())); err != nil {
				return err
			}
		}
		if _, err := tx.CreateBucketIfNotExists(bucketIndex); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketGame)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (s *Bolt) Close() error { return s.db.Close() }

func (s *Bolt) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("puzzle is missing an ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	name := []byte(p.Difficulty.String())
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(name).Put([]byte(p.ID), data); err != nil {
			return err
		}
		return tx.Bucket(bucketIndex).Put([]byte(p.ID), name)
	})
}

func (s *Bolt) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	var p domain.Puzzle
	err := s.db.View(func(tx *bbolt.Tx) error {
		name := tx.Bucket(bucketIndex).Get([]byte(id))
		if name == nil {
			return fmt.Errorf("puzzle %q: %w", id, domain.ErrNotFound)
		}
		data := tx.Bucket(name).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("puzzle %q: %w", id, domain.ErrNotFound)
		}
		return json.Unmarshal(data, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Bolt) ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	err := s.db.View(func(tx *bbolt.Tx) error {
		for _, d := range domain.Difficulties {
			b := tx.Bucket([]byte(d.String()))
			err := b.ForEach(func(_, data []byte) error {
				var p domain.Puzzle
				if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
					return nil // skip unreadable entries
				}
				out = append(out, domain.PuzzleMeta{
					ID:         p.ID,
					Name:       p.Name,
					Difficulty: d,
					Clues:      p.Clues,
					CreatedAt:  p.CreatedAt,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Bolt) SaveGame(ctx context.Context, st *game.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGame).Put(keyGame, data)
	})
}

func (s *Bolt) LoadGame(ctx context.Context) (*game.State, error) {
	var st game.State
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketGame).Get(keyGame)
		if data == nil {
			return fmt.Errorf("saved game: %w", domain.ErrNotFound)
		}
		return json.Unmarshal(data, &st)
	})
	if err != nil {
		return nil, err
	}
	return &st, nil
}
